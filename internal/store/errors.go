package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPhoneAlreadyExists is returned when an attempt to register a new
	// account fails because an account with the same phone number already
	// exists in the database.
	ErrPhoneAlreadyExists = errors.New("phone already exists")

	// ErrAccountNotFound is returned when a query expected to match exactly
	// one account record produces an empty result set.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDeviceAlreadyBound is returned when a device identifier being added
	// is already present in the account's device list.
	ErrDeviceAlreadyBound = errors.New("device id already bound to account")

	// ErrDeviceNotFound is returned when a device identifier being removed is
	// not present in the account's device list.
	ErrDeviceNotFound = errors.New("device id not bound to account")

	// ErrBleAlreadyBound is returned when a BLE identifier being added is
	// already present in the account's BLE list.
	ErrBleAlreadyBound = errors.New("ble id already bound to account")

	// ErrBleNotFound is returned when a BLE identifier being removed is not
	// present in the account's BLE list.
	ErrBleNotFound = errors.New("ble id not bound to account")

	// ErrStorageUnavailable is returned when the database cannot be reached
	// or the operation timed out before completing. Handlers map this to a
	// 503 response so clients know the failure is transient.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
