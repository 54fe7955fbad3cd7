package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dicerhq/dicer-admin/internal/logger"
	"github.com/dicerhq/dicer-admin/internal/mock"
	"github.com/dicerhq/dicer-admin/internal/store"
	"github.com/dicerhq/dicer-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestActivationSvc(t *testing.T, ctrl *gomock.Controller) (*activationService, *mock.MockAccountRepository, *mock.MockLedgerRepository) {
	t.Helper()
	mockAccounts := mock.NewMockAccountRepository(ctrl)
	mockLedger := mock.NewMockLedgerRepository(ctrl)

	svc := NewActivationService(mockAccounts, mockLedger, logger.NewLogger("test")).(*activationService)

	return svc, mockAccounts, mockLedger
}

// ── Signup ───────────────────────────────────────────────────────────────────

func TestActivationService_Signup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestActivationSvc(t, ctrl)
	ctx := context.Background()

	mockAccounts.EXPECT().CreateAccount(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, account models.Account) (models.Account, error) {
			assert.Equal(t, "John", account.Name)
			assert.Equal(t, "+15550001111", account.Phone)
			assert.Len(t, account.Password, 6)
			assert.Len(t, account.SecretCode, 5)

			account.UserID = 1001
			account.Status = models.StatusInactive
			return account, nil
		},
	)

	created, err := svc.Signup(ctx, "John", "+15550001111")
	require.NoError(t, err)
	assert.Equal(t, int64(1001), created.UserID)
	assert.Len(t, created.Password, 6)
	assert.Equal(t, models.StatusInactive, created.Status)
}

func TestActivationService_Signup_EmptyData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestActivationSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "", "+15550001111")
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Signup(ctx, "John", "")
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestActivationService_Signup_PhoneTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestActivationSvc(t, ctrl)
	ctx := context.Background()

	mockAccounts.EXPECT().CreateAccount(ctx, gomock.Any()).Return(models.Account{}, store.ErrPhoneAlreadyExists)

	_, err := svc.Signup(ctx, "John", "+15550001111")
	require.ErrorIs(t, err, store.ErrPhoneAlreadyExists)
}

// ── SetStatus ────────────────────────────────────────────────────────────────

func TestActivationService_SetStatus_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestActivationSvc(t, ctrl)
	ctx := context.Background()

	mockAccounts.EXPECT().
		UpdateStatus(ctx, int64(1001), models.StatusActive, "dev-1").
		Return(models.Account{UserID: 1001, Status: models.StatusActive, DeviceIDs: []string{"dev-1"}}, nil)

	updated, err := svc.SetStatus(ctx, 1001, models.StatusActive, "dev-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, updated.Status)
	assert.Contains(t, updated.DeviceIDs, "dev-1")
}

func TestActivationService_SetStatus_InvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestActivationSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.SetStatus(ctx, 1001, "Suspended", "")
	require.ErrorIs(t, err, ErrInvalidStatus)
}

// TestActivationService_SetStatus_ActivationNeedsDevice verifies that an
// account cannot be activated without naming the activating device.
func TestActivationService_SetStatus_ActivationNeedsDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestActivationSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.SetStatus(ctx, 1001, models.StatusActive, "")
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestActivationService_SetStatus_DeactivationWithoutDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestActivationSvc(t, ctrl)
	ctx := context.Background()

	mockAccounts.EXPECT().
		UpdateStatus(ctx, int64(1001), models.StatusInactive, "").
		Return(models.Account{UserID: 1001, Status: models.StatusInactive}, nil)

	updated, err := svc.SetStatus(ctx, 1001, models.StatusInactive, "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusInactive, updated.Status)
}

// TestActivationService_SetStatus_DeactivationIgnoresDevice verifies that a
// device id supplied on deactivation is discarded rather than registered.
func TestActivationService_SetStatus_DeactivationIgnoresDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestActivationSvc(t, ctrl)
	ctx := context.Background()

	mockAccounts.EXPECT().
		UpdateStatus(ctx, int64(1001), models.StatusInactive, "").
		Return(models.Account{UserID: 1001, Status: models.StatusInactive, DeviceIDs: []string{"dev-1"}}, nil)

	updated, err := svc.SetStatus(ctx, 1001, models.StatusInactive, "dev-9")
	require.NoError(t, err)
	assert.NotContains(t, updated.DeviceIDs, "dev-9")
}

// ── Device bindings ──────────────────────────────────────────────────────────

func TestActivationService_AddDeviceID_AlreadyBound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestActivationSvc(t, ctrl)
	ctx := context.Background()

	mockAccounts.EXPECT().
		AddDeviceID(ctx, int64(1001), "dev-1").
		Return(models.Account{}, store.ErrDeviceAlreadyBound)

	_, err := svc.AddDeviceID(ctx, 1001, "dev-1")
	require.ErrorIs(t, err, store.ErrDeviceAlreadyBound)
}

func TestActivationService_RemoveDeviceID_EmptyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestActivationSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.RemoveDeviceID(ctx, 1001, "")
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── BLE bindings ─────────────────────────────────────────────────────────────

func TestActivationService_AddBleID_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, mockLedger := newTestActivationSvc(t, ctrl)
	ctx := context.Background()

	account := models.Account{
		UserID: 1001,
		Name:   "John",
		Phone:  "+15550001111",
		BleIDs: []string{"BLE00001"},
	}

	gomock.InOrder(
		mockAccounts.EXPECT().AddBleID(ctx, int64(1001), "BLE00001").Return(account, nil),
		mockLedger.EXPECT().UpsertBleUsage(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, usage models.BleUsage) error {
				assert.Equal(t, "BLE00001", usage.BleID)
				require.NotNil(t, usage.UserID)
				assert.Equal(t, int64(1001), *usage.UserID)
				assert.Equal(t, "+15550001111", usage.Phone)
				assert.Equal(t, "John", usage.UserName)
				return nil
			},
		),
	)

	updated, err := svc.AddBleID(ctx, 1001, "BLE00001")
	require.NoError(t, err)
	assert.Contains(t, updated.BleIDs, "BLE00001")
}

func TestActivationService_AddBleID_InvalidLength(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestActivationSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.AddBleID(ctx, 1001, "SHORT")
	require.ErrorIs(t, err, ErrInvalidBleID)

	_, err = svc.AddBleID(ctx, 1001, "WAY-TOO-LONG-ID")
	require.ErrorIs(t, err, ErrInvalidBleID)
}

func TestActivationService_AddBleID_LedgerFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, mockLedger := newTestActivationSvc(t, ctrl)
	ctx := context.Background()

	mockAccounts.EXPECT().
		AddBleID(ctx, int64(1001), "BLE00001").
		Return(models.Account{UserID: 1001, BleIDs: []string{"BLE00001"}}, nil)
	mockLedger.EXPECT().
		UpsertBleUsage(ctx, gomock.Any()).
		Return(errors.New("ledger is down"))

	_, err := svc.AddBleID(ctx, 1001, "BLE00001")
	require.NoError(t, err, "ledger failures must not fail the binding")
}

func TestActivationService_RemoveBleID_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, mockLedger := newTestActivationSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAccounts.EXPECT().RemoveBleID(ctx, int64(1001), "BLE00001").Return(models.Account{UserID: 1001, BleIDs: []string{}}, nil),
		mockLedger.EXPECT().ClearBleBinding(ctx, "BLE00001").Return(nil),
	)

	updated, err := svc.RemoveBleID(ctx, 1001, "BLE00001")
	require.NoError(t, err)
	assert.Empty(t, updated.BleIDs)
}

func TestActivationService_RemoveBleID_NotBound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestActivationSvc(t, ctrl)
	ctx := context.Background()

	mockAccounts.EXPECT().
		RemoveBleID(ctx, int64(1001), "BLE00009").
		Return(models.Account{}, store.ErrBleNotFound)

	_, err := svc.RemoveBleID(ctx, 1001, "BLE00009")
	require.ErrorIs(t, err, store.ErrBleNotFound)
}

// TestActivationService_RemoveBleID_MalformedID verifies that a beacon id of
// the wrong length is treated like any other unbound beacon.
func TestActivationService_RemoveBleID_MalformedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestActivationSvc(t, ctrl)
	ctx := context.Background()

	mockAccounts.EXPECT().
		RemoveBleID(ctx, int64(1001), "SHORT").
		Return(models.Account{}, store.ErrBleNotFound)

	_, err := svc.RemoveBleID(ctx, 1001, "SHORT")
	require.ErrorIs(t, err, store.ErrBleNotFound)
}

// ── Credential resets ────────────────────────────────────────────────────────

func TestActivationService_ResetPassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestActivationSvc(t, ctrl)
	ctx := context.Background()

	mockAccounts.EXPECT().UpdatePassword(ctx, int64(1001), gomock.Any()).DoAndReturn(
		func(_ context.Context, userID int64, password string) (models.Account, error) {
			assert.Len(t, password, 6)
			return models.Account{UserID: userID, Password: password, TokenVersion: 2}, nil
		},
	)

	updated, err := svc.ResetPassword(ctx, 1001)
	require.NoError(t, err)
	assert.Len(t, updated.Password, 6)
	assert.Equal(t, 2, updated.TokenVersion)
}

func TestActivationService_ResetSecretCode_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestActivationSvc(t, ctrl)
	ctx := context.Background()

	mockAccounts.EXPECT().UpdateSecretCode(ctx, int64(1001), gomock.Any()).DoAndReturn(
		func(_ context.Context, userID int64, secretCode string) (models.Account, error) {
			assert.Len(t, secretCode, 5)
			return models.Account{UserID: userID, SecretCode: secretCode}, nil
		},
	)

	updated, err := svc.ResetSecretCode(ctx, 1001)
	require.NoError(t, err)
	assert.Len(t, updated.SecretCode, 5)
}

// ── Deletion ─────────────────────────────────────────────────────────────────

func TestActivationService_DeleteAccount_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, mockLedger := newTestActivationSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAccounts.EXPECT().DeleteAccount(ctx, int64(1001)).Return(nil),
		mockLedger.EXPECT().ClearBleBindingsForUser(ctx, int64(1001)).Return(nil),
	)

	require.NoError(t, svc.DeleteAccount(ctx, 1001))
}

func TestActivationService_DeleteAccount_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestActivationSvc(t, ctrl)
	ctx := context.Background()

	mockAccounts.EXPECT().DeleteAccount(ctx, int64(404)).Return(store.ErrAccountNotFound)

	err := svc.DeleteAccount(ctx, 404)
	require.ErrorIs(t, err, store.ErrAccountNotFound)
}

// ── Lookups ──────────────────────────────────────────────────────────────────

func TestActivationService_FindAccountByDeviceID_EmptyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestActivationSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.FindAccountByDeviceID(ctx, "")
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestActivationService_ListAccounts_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestActivationSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAccounts.EXPECT().ListAccounts(ctx, uint64(20), uint64(0)).Return([]models.Account{{UserID: 1001}, {UserID: 1002}}, nil),
		mockAccounts.EXPECT().CountAccounts(ctx).Return(int64(42), nil),
	)

	accounts, total, err := svc.ListAccounts(ctx, 20, 0)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
	assert.Equal(t, int64(42), total)
}

func TestActivationService_CountAccounts_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestActivationSvc(t, ctrl)
	ctx := context.Background()

	mockAccounts.EXPECT().CountAccounts(ctx).Return(int64(7), nil)

	total, err := svc.CountAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
}
