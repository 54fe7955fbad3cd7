package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidStatus       = errors.New("status must be Active or Inactive")
	ErrInvalidBleID        = errors.New("ble id must be exactly 8 characters")

	// Login failure reasons, checked in this order: unknown phone, wrong
	// password, unregistered device, inactive account.
	ErrUserNotFound        = errors.New("user not found")
	ErrWrongPassword       = errors.New("wrong password")
	ErrDeviceNotRegistered = errors.New("device not registered")
	ErrAccountInactive     = errors.New("user not active")

	// ErrAdminInvalid covers every admin login failure. The response never
	// reveals whether the email or the password was wrong.
	ErrAdminInvalid = errors.New("invalid admin credentials")

	// ErrUserInvalid is the uniform session validation failure. Callers of the
	// validate endpoint get no hint about which check rejected them.
	ErrUserInvalid = errors.New("User Invalid")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
