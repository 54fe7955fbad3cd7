package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dicerhq/dicer-admin/internal/logger"
	"github.com/dicerhq/dicer-admin/models"
)

// signup creates a new account with system-issued credentials. The response
// includes the generated password and secret code so the operator can hand
// them to the user.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var signupRequest models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&signupRequest); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeFailure(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	account, err := h.services.ActivationService.Signup(ctx, signupRequest.Name, signupRequest.Phone)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", account.UserID).Msg("account created")
	h.writeSuccess(w, http.StatusCreated, account)
}

// listUsers returns a page of accounts ordered by user id, together with the
// total account count. Query params: limit, offset.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accounts, total, err := h.services.ActivationService.ListAccounts(ctx, uint64Query(r, "limit"), uint64Query(r, "offset"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, map[string]any{
		"accounts": accounts,
		"total":    total,
	})
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := userIDFromURL(r)
	if err != nil {
		h.writeFailure(w, http.StatusBadRequest, "invalid user id")
		return
	}

	account, err := h.services.ActivationService.GetAccount(ctx, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, account)
}

// getDetailsByDeviceID resolves the account a device identifier is registered
// to, matching case-insensitively. Query param: device_id.
func (h *Handler) getDetailsByDeviceID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	account, err := h.services.ActivationService.FindAccountByDeviceID(ctx, r.URL.Query().Get("device_id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, account)
}

// countUsers returns the total number of accounts.
func (h *Handler) countUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	total, err := h.services.ActivationService.CountAccounts(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, map[string]int64{"count": total})
}

// setStatus toggles the account between Active and Inactive. Query params:
// status (required), device_id (required on activation; registered when the
// account does not already hold it, compared case-insensitively).
func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := userIDFromURL(r)
	if err != nil {
		h.writeFailure(w, http.StatusBadRequest, "invalid user id")
		return
	}

	status := r.URL.Query().Get("status")
	deviceID := r.URL.Query().Get("device_id")

	account, err := h.services.ActivationService.SetStatus(ctx, userID, status, deviceID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, account)
}

func (h *Handler) addDeviceID(w http.ResponseWriter, r *http.Request) {
	h.mutateDeviceID(w, r, h.services.ActivationService.AddDeviceID)
}

func (h *Handler) removeDeviceID(w http.ResponseWriter, r *http.Request) {
	h.mutateDeviceID(w, r, h.services.ActivationService.RemoveDeviceID)
}

func (h *Handler) addBleID(w http.ResponseWriter, r *http.Request) {
	h.mutateBleID(w, r, h.services.ActivationService.AddBleID)
}

func (h *Handler) removeBleID(w http.ResponseWriter, r *http.Request) {
	h.mutateBleID(w, r, h.services.ActivationService.RemoveBleID)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	h.resetCredential(w, r, h.services.ActivationService.ResetPassword)
}

func (h *Handler) resetSecretCode(w http.ResponseWriter, r *http.Request) {
	h.resetCredential(w, r, h.services.ActivationService.ResetSecretCode)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromURL(r)
	if err != nil {
		h.writeFailure(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.services.ActivationService.DeleteAccount(ctx, userID); err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", userID).Msg("account deleted")
	h.writeSuccess(w, http.StatusOK, nil)
}

// mutateDeviceID is the shared body of the device-id add/remove endpoints.
func (h *Handler) mutateDeviceID(w http.ResponseWriter, r *http.Request, mutate func(ctx context.Context, userID int64, deviceID string) (models.Account, error)) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromURL(r)
	if err != nil {
		h.writeFailure(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var deviceRequest models.DeviceIDRequest
	if err := json.NewDecoder(r.Body).Decode(&deviceRequest); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeFailure(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	account, err := mutate(ctx, userID, deviceRequest.DeviceID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, account)
}

// mutateBleID is the shared body of the ble-id add/remove endpoints.
func (h *Handler) mutateBleID(w http.ResponseWriter, r *http.Request, mutate func(ctx context.Context, userID int64, bleID string) (models.Account, error)) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := userIDFromURL(r)
	if err != nil {
		h.writeFailure(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var bleRequest models.BleIDRequest
	if err := json.NewDecoder(r.Body).Decode(&bleRequest); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeFailure(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	account, err := mutate(ctx, userID, bleRequest.BleID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, account)
}

// resetCredential is the shared body of the reset-password and
// reset-secret-code endpoints. The refreshed account, including the new
// credential, goes back to the console.
func (h *Handler) resetCredential(w http.ResponseWriter, r *http.Request, reset func(ctx context.Context, userID int64) (models.Account, error)) {
	ctx := r.Context()

	userID, err := userIDFromURL(r)
	if err != nil {
		h.writeFailure(w, http.StatusBadRequest, "invalid user id")
		return
	}

	account, err := reset(ctx, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, account)
}
