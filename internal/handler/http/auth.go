package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dicerhq/dicer-admin/internal/logger"
	"github.com/dicerhq/dicer-admin/internal/utils"
	"github.com/dicerhq/dicer-admin/models"
)

// health reports process liveness. No dependency checks are performed.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	h.writeSuccess(w, http.StatusOK, map[string]string{
		"service": "dicer-admin",
		"status":  "ok",
	})
}

// adminLogin authenticates the administrator and returns a console token in
// the envelope payload and in the Authorization response header.
func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var loginRequest models.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&loginRequest); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeFailure(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	token, err := h.services.SessionService.AdminLogin(ctx, loginRequest.Email, loginRequest.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	h.writeSuccess(w, http.StatusOK, map[string]string{"token": token.SignedString})
}

// userLogin authenticates an end user from a device and returns a session
// token together with the account details.
func (h *Handler) userLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var loginRequest models.UserLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&loginRequest); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeFailure(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	token, account, err := h.services.SessionService.UserLogin(ctx, loginRequest)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", account.UserID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	h.writeSuccess(w, http.StatusOK, map[string]any{
		"token": token.SignedString,
		"user":  account,
	})
}

// verifyAdmin confirms that the presented console token is still valid. The
// token itself is checked by the adminAuth middleware; by the time this
// handler runs the administrator identity is already in the context.
func (h *Handler) verifyAdmin(w http.ResponseWriter, r *http.Request) {
	email, _ := utils.GetAdminEmailFromContext(r.Context())
	h.writeSuccess(w, http.StatusOK, map[string]string{"email": email})
}

// validate checks an end-user session presented either as a token or as the
// full credential triple. Every rejection maps to the same 401 response.
func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var validateRequest models.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&validateRequest); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeFailure(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	account, err := h.services.SessionService.ValidateSession(ctx, validateRequest)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, account)
}
