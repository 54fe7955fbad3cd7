package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/dicerhq/dicer-admin/models"
)

// accountColumns is the canonical column list returned by every account
// query. The TEXT[] columns are serialised to JSON text because database/sql
// cannot scan a PostgreSQL array into a []string directly.
const accountColumns = `user_id, name, phone, password, secret_code, ` +
	`array_to_json(device_ids)::text, array_to_json(ble_ids)::text, ` +
	`status, token_version, last_run_location, created_at`

const (
	createAccount = `INSERT INTO accounts (name, phone, password, secret_code)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + accountColumns + `;`

	findAccountByID = `SELECT ` + accountColumns + `
    FROM accounts
    WHERE user_id = $1;`

	findAccountByPhone = `SELECT ` + accountColumns + `
    FROM accounts
    WHERE phone = $1;`

	// findAccountByDeviceID matches the device list case-insensitively, same
	// as the session checks.
	findAccountByDeviceID = `SELECT ` + accountColumns + `
    FROM accounts
    WHERE EXISTS (SELECT 1 FROM unnest(device_ids) d WHERE lower(d) = lower($1));`

	countAccounts = `SELECT count(*) FROM accounts;`

	// updateStatus sets the account status and, when a non-empty device
	// identifier is supplied, appends it to the device list unless an entry
	// differing only in case is already present.
	updateStatus = `UPDATE accounts
    SET status = $2,
        device_ids = CASE
            WHEN $3 = '' THEN device_ids
            WHEN EXISTS (SELECT 1 FROM unnest(device_ids) d WHERE lower(d) = lower($3)) THEN device_ids
            ELSE array_append(device_ids, $3)
        END
    WHERE user_id = $1
    RETURNING ` + accountColumns + `;`

	// addDeviceID appends only when the exact identifier is absent; zero rows
	// means either a missing account or a duplicate binding, which the
	// repository disambiguates with a follow-up lookup.
	addDeviceID = `UPDATE accounts
    SET device_ids = array_append(device_ids, $2)
    WHERE user_id = $1 AND NOT (device_ids @> ARRAY[$2]::text[])
    RETURNING ` + accountColumns + `;`

	removeDeviceID = `UPDATE accounts
    SET device_ids = array_remove(device_ids, $2)
    WHERE user_id = $1 AND device_ids @> ARRAY[$2]::text[]
    RETURNING ` + accountColumns + `;`

	addBleID = `UPDATE accounts
    SET ble_ids = array_append(ble_ids, $2)
    WHERE user_id = $1 AND NOT (ble_ids @> ARRAY[$2]::text[])
    RETURNING ` + accountColumns + `;`

	removeBleID = `UPDATE accounts
    SET ble_ids = array_remove(ble_ids, $2)
    WHERE user_id = $1 AND ble_ids @> ARRAY[$2]::text[]
    RETURNING ` + accountColumns + `;`

	// updatePassword invalidates every previously issued user token by
	// bumping token_version in the same statement that rotates the password.
	updatePassword = `UPDATE accounts
    SET password = $2, token_version = token_version + 1
    WHERE user_id = $1
    RETURNING ` + accountColumns + `;`

	updateSecretCode = `UPDATE accounts
    SET secret_code = $2
    WHERE user_id = $1
    RETURNING ` + accountColumns + `;`

	updateLastRunLocation = `UPDATE accounts
    SET last_run_location = $2
    WHERE user_id = $1;`

	deleteAccount = `DELETE FROM accounts WHERE user_id = $1;`
)

const (
	upsertBleUsage = `INSERT INTO ble_usage (ble_id, user_id, phone, user_name)
    VALUES ($1, $2, $3, $4)
    ON CONFLICT (ble_id) DO UPDATE
    SET user_id = EXCLUDED.user_id,
        phone = EXCLUDED.phone,
        user_name = EXCLUDED.user_name,
        updated_at = now();`

	clearBleBinding = `UPDATE ble_usage
    SET user_id = NULL, phone = NULL, user_name = NULL, updated_at = now()
    WHERE ble_id = $1;`

	clearBleBindingsForUser = `UPDATE ble_usage
    SET user_id = NULL, phone = NULL, user_name = NULL, updated_at = now()
    WHERE user_id = $1;`

	touchBleLastLogin = `UPDATE ble_usage
    SET last_login_at = $2, updated_at = now()
    WHERE user_id = $1;`

	recordLogin = `INSERT INTO login_history (user_id, phone, user_name, device_id, ble_ids, location, lat_long, success, logged_in_at)
    VALUES ($1, $2, $3, $4, $5::text[], $6, $7, $8, $9);`

	listDeviceBindings = `SELECT d.device_id, a.user_id, a.name, a.phone, a.status, h.last_login_at
    FROM accounts a
    CROSS JOIN LATERAL unnest(a.device_ids) AS d(device_id)
    LEFT JOIN LATERAL (
        SELECT max(logged_in_at) AS last_login_at
        FROM login_history
        WHERE login_history.user_id = a.user_id
          AND login_history.device_id = d.device_id
          AND login_history.success
    ) h ON TRUE
    ORDER BY a.user_id, d.device_id;`
)

// psql is the squirrel statement builder configured for PostgreSQL-style
// numbered placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// pgTextArray renders a string slice as a PostgreSQL array literal suitable
// for a $n::text[] parameter. database/sql cannot pass []string directly.
func pgTextArray(items []string) string {
	if len(items) == 0 {
		return "{}"
	}

	quoted := make([]string, len(items))
	for i, item := range items {
		escaped := strings.ReplaceAll(item, `\`, `\\`)
		escaped = strings.ReplaceAll(escaped, `"`, `\"`)
		quoted[i] = `"` + escaped + `"`
	}

	return "{" + strings.Join(quoted, ",") + "}"
}

// buildListAccountsQuery builds the paginated account listing query.
func buildListAccountsQuery(limit, offset uint64) (string, []any, error) {
	builder := psql.
		Select(
			"user_id",
			"name",
			"phone",
			"password",
			"secret_code",
			"array_to_json(device_ids)::text",
			"array_to_json(ble_ids)::text",
			"status",
			"token_version",
			"last_run_location",
			"created_at",
		).
		From("accounts").
		OrderBy("user_id ASC")

	if limit > 0 {
		builder = builder.Limit(limit)
	}
	if offset > 0 {
		builder = builder.Offset(offset)
	}

	return builder.ToSql()
}

// buildListBleUsageQuery builds the BLE usage listing query with the optional
// filters applied.
func buildListBleUsageQuery(filter models.BleUsageFilter) (string, []any, error) {
	builder := psql.
		Select(
			"ble_id",
			"user_id",
			"phone",
			"user_name",
			"created_at",
			"updated_at",
			"last_login_at",
		).
		From("ble_usage").
		OrderBy("updated_at DESC")

	if filter.BleID != "" {
		builder = builder.Where(sq.Eq{"ble_id": filter.BleID})
	}
	if filter.UserID != 0 {
		builder = builder.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.Phone != "" {
		builder = builder.Where(sq.Eq{"phone": filter.Phone})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	return builder.ToSql()
}

// buildListLoginHistoryQuery builds the login history listing query, newest
// entries first, with the optional filters applied.
func buildListLoginHistoryQuery(filter models.LoginHistoryFilter) (string, []any, error) {
	builder := psql.
		Select(
			"id",
			"user_id",
			"phone",
			"user_name",
			"device_id",
			"array_to_json(ble_ids)::text",
			"location",
			"lat_long",
			"success",
			"logged_in_at",
		).
		From("login_history").
		OrderBy("logged_in_at DESC")

	if filter.UserID != 0 {
		builder = builder.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.Phone != "" {
		builder = builder.Where(sq.Eq{"phone": filter.Phone})
	}
	if filter.DeviceID != "" {
		builder = builder.Where(sq.Eq{"device_id": filter.DeviceID})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	return builder.ToSql()
}
