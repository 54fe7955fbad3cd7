// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dicerhq/dicer-admin/internal/config"
	"github.com/dicerhq/dicer-admin/internal/logger"
	"github.com/dicerhq/dicer-admin/internal/service"
	"github.com/dicerhq/dicer-admin/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockActivationService implements service.ActivationService for unit tests.
// Each method field can be overridden per test case.
type mockActivationService struct {
	signupFn                func(ctx context.Context, name, phone string) (models.Account, error)
	getAccountFn            func(ctx context.Context, userID int64) (models.Account, error)
	listAccountsFn          func(ctx context.Context, limit, offset uint64) ([]models.Account, int64, error)
	countAccountsFn         func(ctx context.Context) (int64, error)
	findAccountByDeviceIDFn func(ctx context.Context, deviceID string) (models.Account, error)
	setStatusFn             func(ctx context.Context, userID int64, status, deviceID string) (models.Account, error)
	addDeviceIDFn           func(ctx context.Context, userID int64, deviceID string) (models.Account, error)
	removeDeviceIDFn        func(ctx context.Context, userID int64, deviceID string) (models.Account, error)
	addBleIDFn              func(ctx context.Context, userID int64, bleID string) (models.Account, error)
	removeBleIDFn           func(ctx context.Context, userID int64, bleID string) (models.Account, error)
	resetPasswordFn         func(ctx context.Context, userID int64) (models.Account, error)
	resetSecretCodeFn       func(ctx context.Context, userID int64) (models.Account, error)
	deleteAccountFn         func(ctx context.Context, userID int64) error
}

func (m *mockActivationService) Signup(ctx context.Context, name, phone string) (models.Account, error) {
	return m.signupFn(ctx, name, phone)
}

func (m *mockActivationService) GetAccount(ctx context.Context, userID int64) (models.Account, error) {
	return m.getAccountFn(ctx, userID)
}

func (m *mockActivationService) ListAccounts(ctx context.Context, limit, offset uint64) ([]models.Account, int64, error) {
	return m.listAccountsFn(ctx, limit, offset)
}

func (m *mockActivationService) CountAccounts(ctx context.Context) (int64, error) {
	return m.countAccountsFn(ctx)
}

func (m *mockActivationService) FindAccountByDeviceID(ctx context.Context, deviceID string) (models.Account, error) {
	return m.findAccountByDeviceIDFn(ctx, deviceID)
}

func (m *mockActivationService) SetStatus(ctx context.Context, userID int64, status, deviceID string) (models.Account, error) {
	return m.setStatusFn(ctx, userID, status, deviceID)
}

func (m *mockActivationService) AddDeviceID(ctx context.Context, userID int64, deviceID string) (models.Account, error) {
	return m.addDeviceIDFn(ctx, userID, deviceID)
}

func (m *mockActivationService) RemoveDeviceID(ctx context.Context, userID int64, deviceID string) (models.Account, error) {
	return m.removeDeviceIDFn(ctx, userID, deviceID)
}

func (m *mockActivationService) AddBleID(ctx context.Context, userID int64, bleID string) (models.Account, error) {
	return m.addBleIDFn(ctx, userID, bleID)
}

func (m *mockActivationService) RemoveBleID(ctx context.Context, userID int64, bleID string) (models.Account, error) {
	return m.removeBleIDFn(ctx, userID, bleID)
}

func (m *mockActivationService) ResetPassword(ctx context.Context, userID int64) (models.Account, error) {
	return m.resetPasswordFn(ctx, userID)
}

func (m *mockActivationService) ResetSecretCode(ctx context.Context, userID int64) (models.Account, error) {
	return m.resetSecretCodeFn(ctx, userID)
}

func (m *mockActivationService) DeleteAccount(ctx context.Context, userID int64) error {
	return m.deleteAccountFn(ctx, userID)
}

// mockSessionService implements service.SessionService for unit tests.
type mockSessionService struct {
	adminLoginFn       func(ctx context.Context, email, password string) (models.Token, error)
	verifyAdminTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
	userLoginFn        func(ctx context.Context, req models.UserLoginRequest) (models.Token, models.Account, error)
	validateSessionFn  func(ctx context.Context, req models.ValidateRequest) (models.Account, error)
}

func (m *mockSessionService) AdminLogin(ctx context.Context, email, password string) (models.Token, error) {
	return m.adminLoginFn(ctx, email, password)
}

func (m *mockSessionService) VerifyAdminToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.verifyAdminTokenFn(ctx, tokenString)
}

func (m *mockSessionService) UserLogin(ctx context.Context, req models.UserLoginRequest) (models.Token, models.Account, error) {
	return m.userLoginFn(ctx, req)
}

func (m *mockSessionService) ValidateSession(ctx context.Context, req models.ValidateRequest) (models.Account, error) {
	return m.validateSessionFn(ctx, req)
}

// mockAuditService implements service.AuditService for unit tests.
type mockAuditService struct {
	listBleUsageFn       func(ctx context.Context, filter models.BleUsageFilter) ([]models.BleUsage, error)
	listLoginHistoryFn   func(ctx context.Context, filter models.LoginHistoryFilter) ([]models.LoginHistory, error)
	listDeviceBindingsFn func(ctx context.Context) ([]models.DeviceBinding, error)
}

func (m *mockAuditService) ListBleUsage(ctx context.Context, filter models.BleUsageFilter) ([]models.BleUsage, error) {
	return m.listBleUsageFn(ctx, filter)
}

func (m *mockAuditService) ListLoginHistory(ctx context.Context, filter models.LoginHistoryFilter) ([]models.LoginHistory, error) {
	return m.listLoginHistoryFn(ctx, filter)
}

func (m *mockAuditService) ListDeviceBindings(ctx context.Context) ([]models.DeviceBinding, error) {
	return m.listDeviceBindingsFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testAdminToken = "valid-admin-token"
	testAdminEmail = "ops@dicer.example"
)

// newTestHandler builds a Handler around the given services with a silent
// logger and a permissive CORS allow-list.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	return NewHandler(services, config.Server{AllowedOrigins: []string{"*"}}, logger.Nop())
}

// adminSession returns a SessionService mock that accepts only
// testAdminToken and resolves it to testAdminEmail.
func adminSession() *mockSessionService {
	return &mockSessionService{
		verifyAdminTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != testAdminToken {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{Claims: models.Claims{
				RegisteredClaims: jwt.RegisteredClaims{Subject: testAdminEmail},
			}}, nil
		},
	}
}

// doRequest routes a request through the full router built by Init, so URL
// parameters and middleware behave as in production.
func doRequest(t *testing.T, h *Handler, method, target, body, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)
	return rec
}

// doAdminRequest is doRequest with the valid admin bearer token attached.
func doAdminRequest(t *testing.T, h *Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	return doRequest(t, h, method, target, body, "Bearer "+testAdminToken)
}

// decodeEnvelope parses the recorded response body as a response envelope.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.Envelope {
	t.Helper()

	var envelope models.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// testAccount is a convenience fixture used across multiple tests.
var testAccount = models.Account{
	UserID:     1001,
	Name:       "Dana",
	Phone:      "+15550001111",
	Password:   "a1b2c3",
	SecretCode: "12345",
	DeviceIDs:  []string{"dev-1"},
	BleIDs:     []string{"BLE00001"},
	Status:     models.StatusActive,
}
