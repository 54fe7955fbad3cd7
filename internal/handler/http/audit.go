package http

import (
	"net/http"

	"github.com/dicerhq/dicer-admin/models"
)

// listDeviceBindings returns the flattened device → account view, one row per
// registered device identifier.
func (h *Handler) listDeviceBindings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bindings, err := h.services.AuditService.ListDeviceBindings(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, bindings)
}

// listBleUsage returns ledger rows for BLE beacons, most recently updated
// first. Query params: ble_id, user_id, phone, limit.
func (h *Handler) listBleUsage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := models.BleUsageFilter{
		BleID:  r.URL.Query().Get("ble_id"),
		UserID: int64Query(r, "user_id"),
		Phone:  r.URL.Query().Get("phone"),
		Limit:  uint64Query(r, "limit"),
	}

	usages, err := h.services.AuditService.ListBleUsage(ctx, filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, usages)
}

// listLoginHistory returns login attempts, newest first. Query params:
// user_id, phone, device_id, limit.
func (h *Handler) listLoginHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := models.LoginHistoryFilter{
		UserID:   int64Query(r, "user_id"),
		Phone:    r.URL.Query().Get("phone"),
		DeviceID: r.URL.Query().Get("device_id"),
		Limit:    uint64Query(r, "limit"),
	}

	entries, err := h.services.AuditService.ListLoginHistory(ctx, filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, entries)
}
