package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dicerhq/dicer-admin/models"
	"github.com/go-resty/resty/v2"
)

// HTTPClientConfig configures the HTTP admin client.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpAdminClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPAdminClient builds an AdminClient talking JSON to the given base
// URL. Zero config fields fall back to localhost and a 15s timeout.
func NewHTTPAdminClient(cfg HTTPClientConfig) AdminClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpAdminClient{client: cli}
}

func (h *httpAdminClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAdminClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAdminClient) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AdminLoginRequest{Email: email, Password: password}).
		Post("/api/auth/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err = decodeEnvelope(resp, &payload); err != nil {
		return "", err
	}

	h.SetToken(payload.Token)
	return payload.Token, nil
}

func (h *httpAdminClient) Verify(ctx context.Context) (string, error) {
	resp, err := h.authedRequest(ctx).Get("/api/auth/verify")
	if err != nil {
		return "", fmt.Errorf("verify request: %w", err)
	}

	var payload struct {
		Email string `json:"email"`
	}
	if err = decodeEnvelope(resp, &payload); err != nil {
		return "", err
	}
	return payload.Email, nil
}

func (h *httpAdminClient) Signup(ctx context.Context, name, phone string) (models.Account, error) {
	return h.accountRequest(ctx, http.MethodPost, "/api/users/signup", models.SignupRequest{Name: name, Phone: phone})
}

func (h *httpAdminClient) GetAccount(ctx context.Context, userID int64) (models.Account, error) {
	return h.accountRequest(ctx, http.MethodGet, userPath(userID), nil)
}

func (h *httpAdminClient) ListAccounts(ctx context.Context, limit, offset uint64) ([]models.Account, int64, error) {
	req := h.authedRequest(ctx)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(limit, 10))
	}
	if offset > 0 {
		req.SetQueryParam("offset", strconv.FormatUint(offset, 10))
	}

	resp, err := req.Get("/api/users")
	if err != nil {
		return nil, 0, fmt.Errorf("list accounts request: %w", err)
	}

	var payload struct {
		Accounts []models.Account `json:"accounts"`
		Total    int64            `json:"total"`
	}
	if err = decodeEnvelope(resp, &payload); err != nil {
		return nil, 0, err
	}

	return payload.Accounts, payload.Total, nil
}

func (h *httpAdminClient) SetStatus(ctx context.Context, userID int64, status, deviceID string) (models.Account, error) {
	req := h.authedRequest(ctx).SetQueryParam("status", status)
	if deviceID != "" {
		req.SetQueryParam("device_id", deviceID)
	}

	resp, err := req.Patch(userPath(userID) + "/status")
	if err != nil {
		return models.Account{}, fmt.Errorf("set status request: %w", err)
	}

	var account models.Account
	if err = decodeEnvelope(resp, &account); err != nil {
		return models.Account{}, err
	}
	return account, nil
}

func (h *httpAdminClient) AddDeviceID(ctx context.Context, userID int64, deviceID string) (models.Account, error) {
	return h.accountRequest(ctx, http.MethodPost, userPath(userID)+"/device-id", models.DeviceIDRequest{DeviceID: deviceID})
}

func (h *httpAdminClient) RemoveDeviceID(ctx context.Context, userID int64, deviceID string) (models.Account, error) {
	return h.accountRequest(ctx, http.MethodDelete, userPath(userID)+"/device-id", models.DeviceIDRequest{DeviceID: deviceID})
}

func (h *httpAdminClient) AddBleID(ctx context.Context, userID int64, bleID string) (models.Account, error) {
	return h.accountRequest(ctx, http.MethodPost, userPath(userID)+"/ble-id", models.BleIDRequest{BleID: bleID})
}

func (h *httpAdminClient) RemoveBleID(ctx context.Context, userID int64, bleID string) (models.Account, error) {
	return h.accountRequest(ctx, http.MethodDelete, userPath(userID)+"/ble-id", models.BleIDRequest{BleID: bleID})
}

func (h *httpAdminClient) ResetPassword(ctx context.Context, userID int64) (models.Account, error) {
	return h.accountRequest(ctx, http.MethodPatch, userPath(userID)+"/reset-password", nil)
}

func (h *httpAdminClient) ResetSecretCode(ctx context.Context, userID int64) (models.Account, error) {
	return h.accountRequest(ctx, http.MethodPatch, userPath(userID)+"/reset-secret-code", nil)
}

func (h *httpAdminClient) DeleteAccount(ctx context.Context, userID int64) error {
	resp, err := h.authedRequest(ctx).Delete(userPath(userID))
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}
	return decodeEnvelope(resp, nil)
}

func (h *httpAdminClient) ListDeviceBindings(ctx context.Context) ([]models.DeviceBinding, error) {
	resp, err := h.authedRequest(ctx).Get("/api/devices")
	if err != nil {
		return nil, fmt.Errorf("list device bindings request: %w", err)
	}

	var bindings []models.DeviceBinding
	if err = decodeEnvelope(resp, &bindings); err != nil {
		return nil, err
	}
	return bindings, nil
}

func (h *httpAdminClient) ListBleUsage(ctx context.Context, filter models.BleUsageFilter) ([]models.BleUsage, error) {
	req := h.authedRequest(ctx)
	if filter.BleID != "" {
		req.SetQueryParam("ble_id", filter.BleID)
	}
	if filter.UserID != 0 {
		req.SetQueryParam("user_id", strconv.FormatInt(filter.UserID, 10))
	}
	if filter.Phone != "" {
		req.SetQueryParam("phone", filter.Phone)
	}
	if filter.Limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(filter.Limit, 10))
	}

	resp, err := req.Get("/api/ble-usage")
	if err != nil {
		return nil, fmt.Errorf("list ble usage request: %w", err)
	}

	var usages []models.BleUsage
	if err = decodeEnvelope(resp, &usages); err != nil {
		return nil, err
	}
	return usages, nil
}

func (h *httpAdminClient) ListLoginHistory(ctx context.Context, filter models.LoginHistoryFilter) ([]models.LoginHistory, error) {
	req := h.authedRequest(ctx)
	if filter.UserID != 0 {
		req.SetQueryParam("user_id", strconv.FormatInt(filter.UserID, 10))
	}
	if filter.Phone != "" {
		req.SetQueryParam("phone", filter.Phone)
	}
	if filter.DeviceID != "" {
		req.SetQueryParam("device_id", filter.DeviceID)
	}
	if filter.Limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(filter.Limit, 10))
	}

	resp, err := req.Get("/api/login-history")
	if err != nil {
		return nil, fmt.Errorf("list login history request: %w", err)
	}

	var entries []models.LoginHistory
	if err = decodeEnvelope(resp, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// accountRequest is the shared body of every endpoint that returns a single
// account in the envelope payload.
func (h *httpAdminClient) accountRequest(ctx context.Context, method, path string, body any) (models.Account, error) {
	req := h.authedRequest(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return models.Account{}, fmt.Errorf("%s %s request: %w", method, path, err)
	}

	var account models.Account
	if err = decodeEnvelope(resp, &account); err != nil {
		return models.Account{}, err
	}
	return account, nil
}

func (h *httpAdminClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func userPath(userID int64) string {
	return "/api/users/" + strconv.FormatInt(userID, 10)
}

// decodeEnvelope unpacks the uniform {code, status, data} response shape.
// Failure envelopes become errors carrying the server-side message; 401 and
// 404 are additionally normalised to sentinel errors.
func decodeEnvelope(resp *resty.Response, out any) error {
	var envelope struct {
		Code   int             `json:"code"`
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("decode response envelope (http %d): %w", resp.StatusCode(), err)
	}

	if envelope.Status != models.EnvelopeSuccess {
		var failure models.FailureData
		_ = json.Unmarshal(envelope.Data, &failure)
		if failure.Message == "" {
			failure.Message = http.StatusText(resp.StatusCode())
		}

		switch resp.StatusCode() {
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %s", ErrUnauthorized, failure.Message)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrNotFound, failure.Message)
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), failure.Message)
	}

	if out == nil || len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode response payload: %w", err)
	}
	return nil
}
