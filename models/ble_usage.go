package models

import "time"

// BleUsage is the denormalized ledger row for a single BLE beacon. It tracks
// which account the beacon is currently bound to plus timestamps. Binding
// fields are nullable: unbinding clears them, it never deletes the row.
//
// The ledger is informational only and is never consulted for authorization
// decisions.
type BleUsage struct {
	BleID    string `json:"ble_id"`
	UserID   *int64 `json:"user_id,omitempty"`
	Phone    string `json:"phone,omitempty"`
	UserName string `json:"user_name,omitempty"`

	// CreatedAt is set when the beacon first appears and survives rebinding.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every bind or unbind.
	UpdatedAt time.Time `json:"updated_at"`

	// LastLoginAt is touched whenever the bound account logs in.
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the BleUsage model.
func (b BleUsage) TableName() string {
	return "ble_usage"
}

// BleUsageFilter narrows ble-usage listings. Zero values mean "no filter".
type BleUsageFilter struct {
	BleID  string
	UserID int64
	Phone  string
	Limit  uint64
}
