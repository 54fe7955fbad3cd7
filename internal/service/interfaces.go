package service

import (
	"context"

	"github.com/dicerhq/dicer-admin/models"
)

// ActivationService owns the account lifecycle: signup, status toggling,
// device and beacon bindings, credential resets, and deletion.
type ActivationService interface {
	Signup(ctx context.Context, name, phone string) (models.Account, error)
	GetAccount(ctx context.Context, userID int64) (models.Account, error)
	ListAccounts(ctx context.Context, limit, offset uint64) ([]models.Account, int64, error)
	CountAccounts(ctx context.Context) (int64, error)
	FindAccountByDeviceID(ctx context.Context, deviceID string) (models.Account, error)

	SetStatus(ctx context.Context, userID int64, status, deviceID string) (models.Account, error)
	AddDeviceID(ctx context.Context, userID int64, deviceID string) (models.Account, error)
	RemoveDeviceID(ctx context.Context, userID int64, deviceID string) (models.Account, error)
	AddBleID(ctx context.Context, userID int64, bleID string) (models.Account, error)
	RemoveBleID(ctx context.Context, userID int64, bleID string) (models.Account, error)

	ResetPassword(ctx context.Context, userID int64) (models.Account, error)
	ResetSecretCode(ctx context.Context, userID int64) (models.Account, error)
	DeleteAccount(ctx context.Context, userID int64) error
}

// SessionService owns both token flows: the single-admin console session and
// end-user device sessions.
type SessionService interface {
	AdminLogin(ctx context.Context, email, password string) (models.Token, error)
	VerifyAdminToken(ctx context.Context, tokenString string) (models.Token, error)

	UserLogin(ctx context.Context, req models.UserLoginRequest) (models.Token, models.Account, error)
	ValidateSession(ctx context.Context, req models.ValidateRequest) (models.Account, error)
}

// AuditService exposes the read-only usage ledger views.
type AuditService interface {
	ListBleUsage(ctx context.Context, filter models.BleUsageFilter) ([]models.BleUsage, error)
	ListLoginHistory(ctx context.Context, filter models.LoginHistoryFilter) ([]models.LoginHistory, error)
	ListDeviceBindings(ctx context.Context) ([]models.DeviceBinding, error)
}
