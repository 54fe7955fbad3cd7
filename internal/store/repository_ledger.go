package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dicerhq/dicer-admin/internal/logger"
	"github.com/dicerhq/dicer-admin/models"
)

// ledgerRepository is the PostgreSQL-backed implementation of
// [LedgerRepository]. It maintains the "ble_usage" table and the append-only
// "login_history" table.
//
// Ledger writes are informational: callers treat failures here as non-fatal
// and the tables are never consulted for authorization decisions.
type ledgerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLedgerRepository constructs a [LedgerRepository] backed by the provided
// database connection and logger.
func NewLedgerRepository(db *DB, logger *logger.Logger) LedgerRepository {
	logger.Debug().Msg("creating ledger repository")
	return &ledgerRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertBleUsage binds a beacon to an account. An existing row keeps its
// created_at; the binding fields and updated_at are overwritten.
func (r *ledgerRepository) UpsertBleUsage(ctx context.Context, usage models.BleUsage) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, upsertBleUsage, usage.BleID, usage.UserID, usage.Phone, usage.UserName)
	if err != nil {
		log.Err(err).Str("func", "*ledgerRepository.UpsertBleUsage").Str("ble_id", usage.BleID).Msg("error: upsert failed")
		return r.db.wrapDBError(err)
	}

	return nil
}

// ClearBleBinding detaches the beacon from whatever account it is bound to.
// The row survives with its timestamps so the beacon's history is kept.
func (r *ledgerRepository) ClearBleBinding(ctx context.Context, bleID string) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, clearBleBinding, bleID)
	if err != nil {
		log.Err(err).Str("func", "*ledgerRepository.ClearBleBinding").Str("ble_id", bleID).Msg("error: update failed")
		return r.db.wrapDBError(err)
	}

	return nil
}

// ClearBleBindingsForUser detaches every beacon bound to the given account.
// Called when an account is deleted.
func (r *ledgerRepository) ClearBleBindingsForUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, clearBleBindingsForUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*ledgerRepository.ClearBleBindingsForUser").Int64("user_id", userID).Msg("error: update failed")
		return r.db.wrapDBError(err)
	}

	return nil
}

// TouchBleLastLogin stamps last_login_at on every beacon bound to the account
// that just logged in.
func (r *ledgerRepository) TouchBleLastLogin(ctx context.Context, userID int64, at time.Time) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, touchBleLastLogin, userID, at)
	if err != nil {
		log.Err(err).Str("func", "*ledgerRepository.TouchBleLastLogin").Int64("user_id", userID).Msg("error: update failed")
		return r.db.wrapDBError(err)
	}

	return nil
}

// ListBleUsage returns ledger rows matching the filter, most recently updated
// first.
func (r *ledgerRepository) ListBleUsage(ctx context.Context, filter models.BleUsageFilter) ([]models.BleUsage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBleUsageQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*ledgerRepository.ListBleUsage").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*ledgerRepository.ListBleUsage").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	usages := make([]models.BleUsage, 0, 50)

	for rows.Next() {
		var (
			usage    models.BleUsage
			userID   sql.NullInt64
			phone    sql.NullString
			userName sql.NullString
			lastSeen sql.NullTime
		)

		scanErr := rows.Scan(
			&usage.BleID,
			&userID,
			&phone,
			&userName,
			&usage.CreatedAt,
			&usage.UpdatedAt,
			&lastSeen,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*ledgerRepository.ListBleUsage").Msg("failed to scan ble usage row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if userID.Valid {
			usage.UserID = &userID.Int64
		}
		usage.Phone = phone.String
		usage.UserName = userName.String
		if lastSeen.Valid {
			usage.LastLoginAt = &lastSeen.Time
		}

		usages = append(usages, usage)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*ledgerRepository.ListBleUsage").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return usages, nil
}

// RecordLogin appends one login attempt to the history. Entries are never
// updated or deleted afterwards.
func (r *ledgerRepository) RecordLogin(ctx context.Context, entry models.LoginHistory) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, recordLogin,
		entry.UserID,
		entry.Phone,
		entry.UserName,
		entry.DeviceID,
		pgTextArray(entry.BleIDs),
		entry.Location,
		entry.LatLong,
		entry.Success,
		entry.LoggedInAt,
	)
	if err != nil {
		log.Err(err).Str("func", "*ledgerRepository.RecordLogin").Int64("user_id", entry.UserID).Msg("error: insert failed")
		return r.db.wrapDBError(err)
	}

	return nil
}

// ListLoginHistory returns history entries matching the filter, newest first.
func (r *ledgerRepository) ListLoginHistory(ctx context.Context, filter models.LoginHistoryFilter) ([]models.LoginHistory, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListLoginHistoryQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*ledgerRepository.ListLoginHistory").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*ledgerRepository.ListLoginHistory").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.LoginHistory, 0, 50)

	for rows.Next() {
		var (
			entry    models.LoginHistory
			bleJSON  string
			location sql.NullString
			latLong  sql.NullString
		)

		scanErr := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Phone,
			&entry.UserName,
			&entry.DeviceID,
			&bleJSON,
			&location,
			&latLong,
			&entry.Success,
			&entry.LoggedInAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*ledgerRepository.ListLoginHistory").Msg("failed to scan login history row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if unmarshalErr := json.Unmarshal([]byte(bleJSON), &entry.BleIDs); unmarshalErr != nil {
			log.Err(unmarshalErr).Str("func", "*ledgerRepository.ListLoginHistory").Msg("failed to decode ble_ids")
			return nil, fmt.Errorf("%w: ble_ids: %w", ErrScanningRow, unmarshalErr)
		}
		entry.Location = location.String
		entry.LatLong = latLong.String

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*ledgerRepository.ListLoginHistory").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

// ListDeviceBindings flattens every account's device list into one row per
// registered device, joined with the time of its last successful login.
func (r *ledgerRepository) ListDeviceBindings(ctx context.Context) ([]models.DeviceBinding, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listDeviceBindings)
	if err != nil {
		log.Err(err).Str("func", "*ledgerRepository.ListDeviceBindings").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bindings := make([]models.DeviceBinding, 0, 50)

	for rows.Next() {
		var (
			binding  models.DeviceBinding
			lastSeen sql.NullTime
		)

		scanErr := rows.Scan(
			&binding.DeviceID,
			&binding.UserID,
			&binding.UserName,
			&binding.Phone,
			&binding.Status,
			&lastSeen,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*ledgerRepository.ListDeviceBindings").Msg("failed to scan device binding row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if lastSeen.Valid {
			binding.LastLoginAt = &lastSeen.Time
		}

		bindings = append(bindings, binding)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*ledgerRepository.ListDeviceBindings").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return bindings, nil
}
