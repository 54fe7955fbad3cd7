package store

import (
	"context"
	"time"

	"github.com/dicerhq/dicer-admin/models"
)

// AccountRepository is the persistence boundary for end-user accounts.
// All list mutations (device and BLE bindings) are executed as single
// conditional UPDATE statements so concurrent admin actions cannot
// interleave between a read and a write.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindAccountByID(ctx context.Context, userID int64) (models.Account, error)
	FindAccountByPhone(ctx context.Context, phone string) (models.Account, error)
	FindAccountByDeviceID(ctx context.Context, deviceID string) (models.Account, error)
	ListAccounts(ctx context.Context, limit, offset uint64) ([]models.Account, error)
	CountAccounts(ctx context.Context) (int64, error)

	UpdateStatus(ctx context.Context, userID int64, status, deviceID string) (models.Account, error)
	AddDeviceID(ctx context.Context, userID int64, deviceID string) (models.Account, error)
	RemoveDeviceID(ctx context.Context, userID int64, deviceID string) (models.Account, error)
	AddBleID(ctx context.Context, userID int64, bleID string) (models.Account, error)
	RemoveBleID(ctx context.Context, userID int64, bleID string) (models.Account, error)

	UpdatePassword(ctx context.Context, userID int64, password string) (models.Account, error)
	UpdateSecretCode(ctx context.Context, userID int64, secretCode string) (models.Account, error)
	UpdateLastRunLocation(ctx context.Context, userID int64, location string) error
	DeleteAccount(ctx context.Context, userID int64) error
}

// LedgerRepository persists the observability side of the system: the
// per-beacon usage table and the append-only login history.
type LedgerRepository interface {
	UpsertBleUsage(ctx context.Context, usage models.BleUsage) error
	ClearBleBinding(ctx context.Context, bleID string) error
	ClearBleBindingsForUser(ctx context.Context, userID int64) error
	TouchBleLastLogin(ctx context.Context, userID int64, at time.Time) error
	ListBleUsage(ctx context.Context, filter models.BleUsageFilter) ([]models.BleUsage, error)

	RecordLogin(ctx context.Context, entry models.LoginHistory) error
	ListLoginHistory(ctx context.Context, filter models.LoginHistoryFilter) ([]models.LoginHistory, error)

	ListDeviceBindings(ctx context.Context) ([]models.DeviceBinding, error)
}

// ErrorClassificator decides whether a failed database operation hit a
// transient condition (connection loss, deadlock rollback) or a permanent one.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
