package models

import "time"

// Account status values. An account starts Inactive and toggles between the
// two states via the status endpoint; there are no other states.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Account represents an end-user record bound to physical devices and BLE
// beacons. Credentials are system-issued shared secrets, never user-chosen.
type Account struct {
	// UserID is the unique numeric account identifier. Assigned by the
	// database from a sequence starting at 1001 and never reused.
	UserID int64 `json:"user_id"`

	// Name is the free-text display name of the user.
	Name string `json:"name"`

	// Phone is the unique external lookup key for the account.
	Phone string `json:"phone"`

	// Password is the 6-character alphanumeric login secret issued at signup
	// and rotated via reset. Exposed to the admin console by design.
	Password string `json:"password"`

	// SecretCode is the 5-digit numeric code issued at signup.
	SecretCode string `json:"secret_code"`

	// DeviceIDs is the ordered list of device identifiers registered for the
	// account. Membership during activation is checked case-insensitively;
	// original casing is preserved.
	DeviceIDs []string `json:"device_ids"`

	// BleIDs is the set of 8-character beacon identifiers bound to the
	// account. Compared case-sensitively.
	BleIDs []string `json:"ble_ids"`

	// Status is either StatusActive or StatusInactive.
	Status string `json:"status"`

	// TokenVersion invalidates previously issued user tokens: it is
	// incremented whenever the password is reset, and every user token
	// carries the version current at issuance.
	TokenVersion int `json:"-"`

	// LastRunLocation is a free-form informational string.
	LastRunLocation string `json:"last_run_location,omitempty"`

	// CreatedAt is set once when the account is created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
