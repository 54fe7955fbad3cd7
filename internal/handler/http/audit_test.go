package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/dicerhq/dicer-admin/internal/service"
	"github.com/dicerhq/dicer-admin/internal/store"
	"github.com/dicerhq/dicer-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAuditHandler builds a Handler whose admin routes accept testAdminToken.
func newAuditHandler(t *testing.T, audit *mockAuditService) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{
		AuditService:   audit,
		SessionService: adminSession(),
	})
}

func TestListDeviceBindings_Success(t *testing.T) {
	audit := &mockAuditService{
		listDeviceBindingsFn: func(_ context.Context) ([]models.DeviceBinding, error) {
			return []models.DeviceBinding{{DeviceID: "dev-1", UserID: 1001, Phone: "+15550001111"}}, nil
		},
	}
	h := newAuditHandler(t, audit)

	rec := doAdminRequest(t, h, http.MethodGet, "/api/devices", "")

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, models.EnvelopeSuccess, envelope.Status)
	assert.Len(t, envelope.Data, 1)
}

// TestListBleUsage_FilterParsing verifies that every query parameter lands in
// the filter handed to the service.
func TestListBleUsage_FilterParsing(t *testing.T) {
	audit := &mockAuditService{
		listBleUsageFn: func(_ context.Context, filter models.BleUsageFilter) ([]models.BleUsage, error) {
			assert.Equal(t, models.BleUsageFilter{
				BleID:  "BLE00001",
				UserID: 1001,
				Phone:  "+15550001111",
				Limit:  10,
			}, filter)
			return []models.BleUsage{{BleID: "BLE00001"}}, nil
		},
	}
	h := newAuditHandler(t, audit)

	rec := doAdminRequest(t, h, http.MethodGet, "/api/ble-usage?ble_id=BLE00001&user_id=1001&phone=%2B15550001111&limit=10", "")

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestListLoginHistory_FilterParsing(t *testing.T) {
	audit := &mockAuditService{
		listLoginHistoryFn: func(_ context.Context, filter models.LoginHistoryFilter) ([]models.LoginHistory, error) {
			assert.Equal(t, models.LoginHistoryFilter{
				UserID:   1001,
				DeviceID: "dev-1",
				Limit:    5,
			}, filter)
			return nil, nil
		},
	}
	h := newAuditHandler(t, audit)

	rec := doAdminRequest(t, h, http.MethodGet, "/api/login-history?user_id=1001&device_id=dev-1&limit=5", "")

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestListLoginHistory_StorageUnavailable(t *testing.T) {
	audit := &mockAuditService{
		listLoginHistoryFn: func(_ context.Context, _ models.LoginHistoryFilter) ([]models.LoginHistory, error) {
			return nil, store.ErrStorageUnavailable
		},
	}
	h := newAuditHandler(t, audit)

	rec := doAdminRequest(t, h, http.MethodGet, "/api/login-history", "")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, models.EnvelopeFailure, envelope.Status)
}
