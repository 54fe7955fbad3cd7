package models

// Envelope is the uniform JSON response shape of the API:
// {code, status: "success"|"failure", data}.
type Envelope struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   any    `json:"data"`
}

// Envelope status values.
const (
	EnvelopeSuccess = "success"
	EnvelopeFailure = "failure"
)

// FailureData is the payload of a failure envelope.
type FailureData struct {
	Message string `json:"message"`
}

// AdminLoginRequest is the body of POST /api/auth/login.
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the body of POST /api/users/signup.
type SignupRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// UserLoginRequest is the body of POST /api/users/login. Location fields are
// optional and flow into the login history record only.
type UserLoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
	DeviceID string `json:"device_id"`
	Location string `json:"location,omitempty"`
	LatLong  string `json:"lat_long,omitempty"`
}

// ValidateRequest is the body of POST /api/users/validate.
type ValidateRequest struct {
	Token    string `json:"token"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	DeviceID string `json:"device_id"`
}

// DeviceIDRequest is the body of the device-id add/remove endpoints.
type DeviceIDRequest struct {
	DeviceID string `json:"device_id"`
}

// BleIDRequest is the body of the ble-id add/remove endpoints.
type BleIDRequest struct {
	BleID string `json:"ble_id"`
}
