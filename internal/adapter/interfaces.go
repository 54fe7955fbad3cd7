// Package adapter provides a typed client for the dicer-admin HTTP API.
// It is consumed by the adminctl command line tool.
package adapter

import (
	"context"

	"github.com/dicerhq/dicer-admin/models"
)

// AdminClient is the console-side view of the dicer-admin API. All account
// mutations require a prior Login (or SetToken with a still-valid token).
type AdminClient interface {
	// Login authenticates the administrator and stores the issued token on
	// the client for subsequent calls.
	Login(ctx context.Context, email, password string) (string, error)

	// SetToken installs a previously issued admin token.
	SetToken(token string)

	// Verify checks that the stored token is still accepted and returns the
	// administrator email it belongs to.
	Verify(ctx context.Context) (string, error)

	Signup(ctx context.Context, name, phone string) (models.Account, error)
	GetAccount(ctx context.Context, userID int64) (models.Account, error)
	ListAccounts(ctx context.Context, limit, offset uint64) ([]models.Account, int64, error)
	SetStatus(ctx context.Context, userID int64, status, deviceID string) (models.Account, error)
	AddDeviceID(ctx context.Context, userID int64, deviceID string) (models.Account, error)
	RemoveDeviceID(ctx context.Context, userID int64, deviceID string) (models.Account, error)
	AddBleID(ctx context.Context, userID int64, bleID string) (models.Account, error)
	RemoveBleID(ctx context.Context, userID int64, bleID string) (models.Account, error)
	ResetPassword(ctx context.Context, userID int64) (models.Account, error)
	ResetSecretCode(ctx context.Context, userID int64) (models.Account, error)
	DeleteAccount(ctx context.Context, userID int64) error

	ListDeviceBindings(ctx context.Context) ([]models.DeviceBinding, error)
	ListBleUsage(ctx context.Context, filter models.BleUsageFilter) ([]models.BleUsage, error)
	ListLoginHistory(ctx context.Context, filter models.LoginHistoryFilter) ([]models.LoginHistory, error)
}
