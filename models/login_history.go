package models

import "time"

// LoginHistory is one append-only audit record of an end-user login attempt.
// Records are never updated or deleted by the core logic.
type LoginHistory struct {
	ID       int64  `json:"-"`
	UserID   int64  `json:"user_id"`
	Phone    string `json:"phone"`
	UserName string `json:"user_name"`

	// DeviceID is the device the client presented at login.
	DeviceID string `json:"device_id"`

	// BleIDs snapshots the account's beacon bindings at login time.
	BleIDs []string `json:"ble_ids"`

	// Location and LatLong are optional caller-supplied position hints.
	Location string `json:"location,omitempty"`
	LatLong  string `json:"lat_long,omitempty"`

	// Success is false for rejected attempts against a known account.
	Success bool `json:"success"`

	LoggedInAt time.Time `json:"logged_in_at"`
}

// TableName returns the name of the database table
// associated with the LoginHistory model.
func (l LoginHistory) TableName() string {
	return "login_history"
}

// LoginHistoryFilter narrows login-history listings. Zero values mean
// "no filter".
type LoginHistoryFilter struct {
	UserID   int64
	Phone    string
	DeviceID string
	Limit    uint64
}

// DeviceBinding is the flattened device → account view served by the
// /api/devices audit endpoint. One row per registered device identifier.
type DeviceBinding struct {
	DeviceID    string     `json:"device_id"`
	UserID      int64      `json:"user_id"`
	UserName    string     `json:"user_name"`
	Phone       string     `json:"phone"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}
