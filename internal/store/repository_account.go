package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dicerhq/dicer-admin/internal/logger"
	"github.com/dicerhq/dicer-admin/models"
	"github.com/jackc/pgerrcode"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. It executes all account operations against the
// "accounts" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner abstracts *sql.Row and *sql.Rows so a single scan helper serves
// both single-row and multi-row account queries.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanAccount reads one account row in the [accountColumns] order. The
// TEXT[] columns arrive as JSON text and are decoded into string slices.
func scanAccount(row rowScanner) (models.Account, error) {
	var (
		account    models.Account
		deviceJSON string
		bleJSON    string
		location   sql.NullString
	)

	err := row.Scan(
		&account.UserID,
		&account.Name,
		&account.Phone,
		&account.Password,
		&account.SecretCode,
		&deviceJSON,
		&bleJSON,
		&account.Status,
		&account.TokenVersion,
		&location,
		&account.CreatedAt,
	)
	if err != nil {
		return models.Account{}, err
	}

	if err = json.Unmarshal([]byte(deviceJSON), &account.DeviceIDs); err != nil {
		return models.Account{}, fmt.Errorf("%w: device_ids: %w", ErrScanningRow, err)
	}
	if err = json.Unmarshal([]byte(bleJSON), &account.BleIDs); err != nil {
		return models.Account{}, fmt.Errorf("%w: ble_ids: %w", ErrScanningRow, err)
	}
	account.LastRunLocation = location.String

	return account, nil
}

// CreateAccount persists a new account record and returns the fully populated
// [models.Account] with server-assigned fields (UserID, Status, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrPhoneAlreadyExists].
//   - Any other driver-level error → classified via wrapDBError.
//   - Scan failure → returned directly.
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAccount, account.Name, account.Phone, account.Password, account.SecretCode)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error: insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Account{}, ErrPhoneAlreadyExists
		default:
			return models.Account{}, r.db.wrapDBError(err)
		}
	}

	created, err := scanAccount(row)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error: scanning error")
		return models.Account{}, err
	}

	return created, nil
}

// FindAccountByID retrieves the account with the given user identifier.
// Returns [ErrAccountNotFound] when no such account exists.
func (r *accountRepository) FindAccountByID(ctx context.Context, userID int64) (models.Account, error) {
	return r.findAccount(ctx, "*accountRepository.FindAccountByID", findAccountByID, userID)
}

// FindAccountByPhone retrieves the account registered under the given phone
// number. Returns [ErrAccountNotFound] when no such account exists.
func (r *accountRepository) FindAccountByPhone(ctx context.Context, phone string) (models.Account, error) {
	return r.findAccount(ctx, "*accountRepository.FindAccountByPhone", findAccountByPhone, phone)
}

// FindAccountByDeviceID retrieves the account whose device list contains the
// device identifier, ignoring letter case. Returns [ErrAccountNotFound] when
// no account has the device registered.
func (r *accountRepository) FindAccountByDeviceID(ctx context.Context, deviceID string) (models.Account, error) {
	return r.findAccount(ctx, "*accountRepository.FindAccountByDeviceID", findAccountByDeviceID, deviceID)
}

func (r *accountRepository) findAccount(ctx context.Context, funcName, query string, arg any) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error: query failed")
		return models.Account{}, r.db.wrapDBError(err)
	}

	found, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error: scanning error")
		return models.Account{}, err
	}

	return found, nil
}

// ListAccounts returns accounts ordered by user_id, paginated by limit and
// offset. A zero limit means no limit.
func (r *accountRepository) ListAccounts(ctx context.Context, limit, offset uint64) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAccountsQuery(limit, offset)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.ListAccounts").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.ListAccounts").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0, 50)

	for rows.Next() {
		account, scanErr := scanAccount(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*accountRepository.ListAccounts").Msg("failed to scan account row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		accounts = append(accounts, account)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*accountRepository.ListAccounts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return accounts, nil
}

// CountAccounts returns the total number of accounts.
func (r *accountRepository) CountAccounts(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var total int64
	if err := r.db.QueryRowContext(ctx, countAccounts).Scan(&total); err != nil {
		log.Err(err).Str("func", "*accountRepository.CountAccounts").Msg("failed to count accounts")
		return 0, r.db.wrapDBError(err)
	}

	return total, nil
}

// UpdateStatus sets the account status in a single statement. When a
// non-empty deviceID is supplied it is appended to the device list unless an
// entry differing only in letter case is already present; the stored casing
// of existing entries is never rewritten.
//
// Returns [ErrAccountNotFound] when the account does not exist.
func (r *accountRepository) UpdateStatus(ctx context.Context, userID int64, status, deviceID string) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateStatus, userID, status, deviceID)

	if err := row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", "*accountRepository.UpdateStatus").Int64("user_id", userID).Msg("error: update failed")
		return models.Account{}, r.db.wrapDBError(err)
	}

	updated, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", "*accountRepository.UpdateStatus").Int64("user_id", userID).Msg("error: scanning error")
		return models.Account{}, err
	}

	return updated, nil
}

// AddDeviceID appends the device identifier to the account's device list in a
// single conditional statement. The append happens only when the exact
// identifier is absent.
//
// Returns [ErrAccountNotFound] when the account does not exist and
// [ErrDeviceAlreadyBound] when the device is already registered.
func (r *accountRepository) AddDeviceID(ctx context.Context, userID int64, deviceID string) (models.Account, error) {
	return r.mutateList(ctx, "*accountRepository.AddDeviceID", addDeviceID, userID, deviceID, ErrDeviceAlreadyBound)
}

// RemoveDeviceID removes the exact device identifier from the account's
// device list in a single conditional statement.
//
// Returns [ErrAccountNotFound] when the account does not exist and
// [ErrDeviceNotFound] when the device is not registered.
func (r *accountRepository) RemoveDeviceID(ctx context.Context, userID int64, deviceID string) (models.Account, error) {
	return r.mutateList(ctx, "*accountRepository.RemoveDeviceID", removeDeviceID, userID, deviceID, ErrDeviceNotFound)
}

// AddBleID appends the BLE identifier to the account's BLE list in a single
// conditional statement.
//
// Returns [ErrAccountNotFound] when the account does not exist and
// [ErrBleAlreadyBound] when the beacon is already bound.
func (r *accountRepository) AddBleID(ctx context.Context, userID int64, bleID string) (models.Account, error) {
	return r.mutateList(ctx, "*accountRepository.AddBleID", addBleID, userID, bleID, ErrBleAlreadyBound)
}

// RemoveBleID removes the BLE identifier from the account's BLE list in a
// single conditional statement.
//
// Returns [ErrAccountNotFound] when the account does not exist and
// [ErrBleNotFound] when the beacon is not bound.
func (r *accountRepository) RemoveBleID(ctx context.Context, userID int64, bleID string) (models.Account, error) {
	return r.mutateList(ctx, "*accountRepository.RemoveBleID", removeBleID, userID, bleID, ErrBleNotFound)
}

// mutateList runs one of the conditional list UPDATE statements. Zero
// affected rows is ambiguous (missing account or unmet list condition), so a
// follow-up lookup disambiguates: a found account means the list condition
// failed and conditionErr is returned.
func (r *accountRepository) mutateList(ctx context.Context, funcName, query string, userID int64, id string, conditionErr error) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, userID, id)

	if err := row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, r.resolveListConflict(ctx, userID, conditionErr)
		}
		log.Err(err).Str("func", funcName).Int64("user_id", userID).Msg("error: update failed")
		return models.Account{}, r.db.wrapDBError(err)
	}

	updated, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, r.resolveListConflict(ctx, userID, conditionErr)
		}
		log.Err(err).Str("func", funcName).Int64("user_id", userID).Msg("error: scanning error")
		return models.Account{}, err
	}

	return updated, nil
}

func (r *accountRepository) resolveListConflict(ctx context.Context, userID int64, conditionErr error) error {
	if _, findErr := r.FindAccountByID(ctx, userID); findErr != nil {
		return findErr
	}
	return conditionErr
}

// UpdatePassword rotates the login password and bumps token_version in the
// same statement, invalidating every previously issued user token.
//
// Returns [ErrAccountNotFound] when the account does not exist.
func (r *accountRepository) UpdatePassword(ctx context.Context, userID int64, password string) (models.Account, error) {
	return r.updateCredential(ctx, "*accountRepository.UpdatePassword", updatePassword, userID, password)
}

// UpdateSecretCode replaces the secret code. Token versions are unaffected.
//
// Returns [ErrAccountNotFound] when the account does not exist.
func (r *accountRepository) UpdateSecretCode(ctx context.Context, userID int64, secretCode string) (models.Account, error) {
	return r.updateCredential(ctx, "*accountRepository.UpdateSecretCode", updateSecretCode, userID, secretCode)
}

func (r *accountRepository) updateCredential(ctx context.Context, funcName, query string, userID int64, secret string) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, userID, secret)

	if err := row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", funcName).Int64("user_id", userID).Msg("error: update failed")
		return models.Account{}, r.db.wrapDBError(err)
	}

	updated, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", funcName).Int64("user_id", userID).Msg("error: scanning error")
		return models.Account{}, err
	}

	return updated, nil
}

// UpdateLastRunLocation stores the location reported with the latest
// successful login. Returns [ErrAccountNotFound] when the account does not
// exist.
func (r *accountRepository) UpdateLastRunLocation(ctx context.Context, userID int64, location string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateLastRunLocation, userID, location)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateLastRunLocation").Int64("user_id", userID).Msg("error: update failed")
		return r.db.wrapDBError(err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// DeleteAccount removes the account record. Ledger rows referencing the
// account are left to the caller to reconcile.
//
// Returns [ErrAccountNotFound] when the account does not exist.
func (r *accountRepository) DeleteAccount(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteAccount, userID)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.DeleteAccount").Int64("user_id", userID).Msg("error: delete failed")
		return r.db.wrapDBError(err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrAccountNotFound
	}

	log.Info().Str("func", "*accountRepository.DeleteAccount").Int64("user_id", userID).Msg("account deleted")
	return nil
}
