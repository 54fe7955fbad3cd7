package service

import (
	"context"
	"fmt"

	"github.com/dicerhq/dicer-admin/internal/logger"
	"github.com/dicerhq/dicer-admin/internal/store"
	"github.com/dicerhq/dicer-admin/internal/utils"
	"github.com/dicerhq/dicer-admin/models"
)

// bleIDLength is the mandatory length of a BLE beacon identifier.
const bleIDLength = 8

// activationService is the concrete implementation of ActivationService.
// It drives the account lifecycle through the AccountRepository and mirrors
// beacon bindings into the usage ledger.
//
// Ledger writes are best-effort: a ledger failure never rolls back the
// account mutation, it is logged and the operation still succeeds. The
// accounts table is the single source of truth for bindings.
type activationService struct {
	accountRepository store.AccountRepository
	ledgerRepository  store.LedgerRepository
	logger            *logger.Logger
}

// NewActivationService constructs an ActivationService wired to the given
// repositories.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewActivationService(accountRepository store.AccountRepository, ledgerRepository store.LedgerRepository, logger *logger.Logger) ActivationService {
	return &activationService{
		accountRepository: accountRepository,
		ledgerRepository:  ledgerRepository,
		logger:            logger,
	}
}

// Signup creates a new account with system-issued credentials.
//
// It validates that both name and phone are non-empty, generates a 6-character
// alphanumeric password and a 5-digit secret code, and delegates persistence
// to the AccountRepository. The account starts Inactive with no device or
// beacon bindings.
//
// Returns the persisted account (including the issued password) or:
//   - ErrInvalidDataProvided if name or phone is empty.
//   - A wrapped storage error if the repository call fails (e.g. phone already
//     taken — see store.ErrPhoneAlreadyExists).
func (a *activationService) Signup(ctx context.Context, name, phone string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if name == "" || phone == "" {
		log.Error().Str("name", name).Str("phone", phone).Msg("invalid signup data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	password, err := utils.GeneratePassword()
	if err != nil {
		log.Err(err).Msg("password generation failed")
		return models.Account{}, fmt.Errorf("password generation failed: %w", err)
	}

	secretCode, err := utils.GenerateSecretCode()
	if err != nil {
		log.Err(err).Msg("secret code generation failed")
		return models.Account{}, fmt.Errorf("secret code generation failed: %w", err)
	}

	created, err := a.accountRepository.CreateAccount(ctx, models.Account{
		Name:       name,
		Phone:      phone,
		Password:   password,
		SecretCode: secretCode,
	})
	if err != nil {
		log.Err(err).Str("phone", phone).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", created.UserID).Msg("account created")
	return created, nil
}

// GetAccount returns the account with the given identifier.
func (a *activationService) GetAccount(ctx context.Context, userID int64) (models.Account, error) {
	log := logger.FromContext(ctx)

	account, err := a.accountRepository.FindAccountByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("account search by id failed")
		return models.Account{}, fmt.Errorf("account search by id failed: %w", err)
	}

	return account, nil
}

// ListAccounts returns one page of accounts plus the total account count.
func (a *activationService) ListAccounts(ctx context.Context, limit, offset uint64) ([]models.Account, int64, error) {
	log := logger.FromContext(ctx)

	accounts, err := a.accountRepository.ListAccounts(ctx, limit, offset)
	if err != nil {
		log.Err(err).Msg("account listing failed")
		return nil, 0, fmt.Errorf("account listing failed: %w", err)
	}

	total, err := a.accountRepository.CountAccounts(ctx)
	if err != nil {
		log.Err(err).Msg("account count failed")
		return nil, 0, fmt.Errorf("account count failed: %w", err)
	}

	return accounts, total, nil
}

// CountAccounts returns the total number of accounts.
func (a *activationService) CountAccounts(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	total, err := a.accountRepository.CountAccounts(ctx)
	if err != nil {
		log.Err(err).Msg("account count failed")
		return 0, fmt.Errorf("account count failed: %w", err)
	}

	return total, nil
}

// FindAccountByDeviceID resolves the account a device identifier is
// registered to, matching case-insensitively. Used by provisioned devices to
// discover their phone number.
//
// Returns ErrInvalidDataProvided for an empty device id.
func (a *activationService) FindAccountByDeviceID(ctx context.Context, deviceID string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if deviceID == "" {
		return models.Account{}, ErrInvalidDataProvided
	}

	account, err := a.accountRepository.FindAccountByDeviceID(ctx, deviceID)
	if err != nil {
		log.Err(err).Str("device_id", deviceID).Msg("account search by device id failed")
		return models.Account{}, fmt.Errorf("account search by device id failed: %w", err)
	}

	return account, nil
}

// SetStatus toggles the account between Active and Inactive. Activation
// registers the supplied deviceID on the account unless an entry differing
// only in letter case already exists; deactivation ignores any deviceID.
//
// Returns ErrInvalidStatus for any status other than the two known values.
func (a *activationService) SetStatus(ctx context.Context, userID int64, status, deviceID string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if status != models.StatusActive && status != models.StatusInactive {
		log.Error().Int64("user_id", userID).Str("status", status).Msg("invalid status provided")
		return models.Account{}, ErrInvalidStatus
	}

	// activation must name the device the user is activating from
	if status == models.StatusActive && deviceID == "" {
		log.Error().Int64("user_id", userID).Msg("activation without device id")
		return models.Account{}, ErrInvalidDataProvided
	}

	// only activation registers a device
	if status == models.StatusInactive {
		deviceID = ""
	}

	updated, err := a.accountRepository.UpdateStatus(ctx, userID, status, deviceID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("status update failed")
		return models.Account{}, fmt.Errorf("status update failed: %w", err)
	}

	log.Info().Int64("user_id", userID).Str("status", status).Msg("account status updated")
	return updated, nil
}

// AddDeviceID registers an additional device on the account. Unlike the
// activation path, the duplicate check here is an exact string match.
func (a *activationService) AddDeviceID(ctx context.Context, userID int64, deviceID string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if deviceID == "" {
		return models.Account{}, ErrInvalidDataProvided
	}

	updated, err := a.accountRepository.AddDeviceID(ctx, userID, deviceID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("device_id", deviceID).Msg("device id add failed")
		return models.Account{}, fmt.Errorf("device id add failed: %w", err)
	}

	return updated, nil
}

// RemoveDeviceID unregisters a device from the account by exact match.
func (a *activationService) RemoveDeviceID(ctx context.Context, userID int64, deviceID string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if deviceID == "" {
		return models.Account{}, ErrInvalidDataProvided
	}

	updated, err := a.accountRepository.RemoveDeviceID(ctx, userID, deviceID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("device_id", deviceID).Msg("device id remove failed")
		return models.Account{}, fmt.Errorf("device id remove failed: %w", err)
	}

	return updated, nil
}

// AddBleID binds a beacon to the account and mirrors the binding into the
// usage ledger.
//
// Returns ErrInvalidBleID unless the identifier is exactly 8 characters.
func (a *activationService) AddBleID(ctx context.Context, userID int64, bleID string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if len(bleID) != bleIDLength {
		log.Error().Int64("user_id", userID).Str("ble_id", bleID).Msg("invalid ble id length")
		return models.Account{}, ErrInvalidBleID
	}

	updated, err := a.accountRepository.AddBleID(ctx, userID, bleID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("ble_id", bleID).Msg("ble id add failed")
		return models.Account{}, fmt.Errorf("ble id add failed: %w", err)
	}

	if ledgerErr := a.ledgerRepository.UpsertBleUsage(ctx, models.BleUsage{
		BleID:    bleID,
		UserID:   &updated.UserID,
		Phone:    updated.Phone,
		UserName: updated.Name,
	}); ledgerErr != nil {
		log.Warn().Err(ledgerErr).Str("ble_id", bleID).Msg("ble usage ledger update failed")
	}

	return updated, nil
}

// RemoveBleID unbinds a beacon from the account and clears its ledger
// binding. The ledger row itself survives for audit purposes.
//
// No length check here: a malformed identifier can never be bound, so the
// lookup fails with the same not-found error an unbound beacon gets.
func (a *activationService) RemoveBleID(ctx context.Context, userID int64, bleID string) (models.Account, error) {
	log := logger.FromContext(ctx)

	updated, err := a.accountRepository.RemoveBleID(ctx, userID, bleID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("ble_id", bleID).Msg("ble id remove failed")
		return models.Account{}, fmt.Errorf("ble id remove failed: %w", err)
	}

	if ledgerErr := a.ledgerRepository.ClearBleBinding(ctx, bleID); ledgerErr != nil {
		log.Warn().Err(ledgerErr).Str("ble_id", bleID).Msg("ble usage ledger clear failed")
	}

	return updated, nil
}

// ResetPassword issues a fresh 6-character password. The repository bumps the
// account's token version in the same statement, so every previously issued
// user token stops validating immediately.
func (a *activationService) ResetPassword(ctx context.Context, userID int64) (models.Account, error) {
	log := logger.FromContext(ctx)

	password, err := utils.GeneratePassword()
	if err != nil {
		log.Err(err).Msg("password generation failed")
		return models.Account{}, fmt.Errorf("password generation failed: %w", err)
	}

	updated, err := a.accountRepository.UpdatePassword(ctx, userID, password)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("password reset failed")
		return models.Account{}, fmt.Errorf("password reset failed: %w", err)
	}

	log.Info().Int64("user_id", userID).Msg("password reset")
	return updated, nil
}

// ResetSecretCode issues a fresh 5-digit secret code. Existing sessions are
// unaffected.
func (a *activationService) ResetSecretCode(ctx context.Context, userID int64) (models.Account, error) {
	log := logger.FromContext(ctx)

	secretCode, err := utils.GenerateSecretCode()
	if err != nil {
		log.Err(err).Msg("secret code generation failed")
		return models.Account{}, fmt.Errorf("secret code generation failed: %w", err)
	}

	updated, err := a.accountRepository.UpdateSecretCode(ctx, userID, secretCode)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("secret code reset failed")
		return models.Account{}, fmt.Errorf("secret code reset failed: %w", err)
	}

	log.Info().Int64("user_id", userID).Msg("secret code reset")
	return updated, nil
}

// DeleteAccount removes the account and detaches its beacons in the usage
// ledger. Login history is append-only and deliberately retained.
func (a *activationService) DeleteAccount(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := a.accountRepository.DeleteAccount(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("account deletion failed")
		return fmt.Errorf("account deletion failed: %w", err)
	}

	if ledgerErr := a.ledgerRepository.ClearBleBindingsForUser(ctx, userID); ledgerErr != nil {
		log.Warn().Err(ledgerErr).Int64("user_id", userID).Msg("ble usage ledger clear failed")
	}

	return nil
}
