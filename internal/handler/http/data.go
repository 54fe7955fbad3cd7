package http

import (
	"net/http"
	"strconv"

	"github.com/dicerhq/dicer-admin/internal/logger"
	"github.com/dicerhq/dicer-admin/internal/utils"
	"github.com/dicerhq/dicer-admin/models"
	"github.com/go-chi/chi/v5"
)

// writeSuccess sends a success envelope: {code, status: "success", data}.
func (h *Handler) writeSuccess(w http.ResponseWriter, statusCode int, data any) {
	utils.WriteJSON(w, models.Envelope{
		Code:   statusCode,
		Status: models.EnvelopeSuccess,
		Data:   data,
	}, statusCode)
}

// writeFailure sends a failure envelope: {code, status: "failure", data: {message}}.
func (h *Handler) writeFailure(w http.ResponseWriter, statusCode int, message string) {
	utils.WriteJSON(w, models.Envelope{
		Code:   statusCode,
		Status: models.EnvelopeFailure,
		Data:   models.FailureData{Message: message},
	}, statusCode)
}

// writeError maps a service or store error to its HTTP status and sends the
// failure envelope. Unmapped errors are logged and masked behind a generic
// 500 message so internals never leak to the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	statusCode := statusFromError(err)
	if statusCode == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error occurred during request handling")
		h.writeFailure(w, statusCode, http.StatusText(statusCode))
		return
	}

	log.Err(err).Send()
	h.writeFailure(w, statusCode, err.Error())
}

// userIDFromURL parses the {userID} URL parameter.
func userIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
}

// int64Query parses an optional integer query parameter; absent or malformed
// values yield zero.
func int64Query(r *http.Request, name string) int64 {
	value, err := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	if err != nil {
		return 0
	}
	return value
}

// uint64Query parses an optional unsigned integer query parameter; absent or
// malformed values yield zero.
func uint64Query(r *http.Request, name string) uint64 {
	value, err := strconv.ParseUint(r.URL.Query().Get(name), 10, 64)
	if err != nil {
		return 0
	}
	return value
}
