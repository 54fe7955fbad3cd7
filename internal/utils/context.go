// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// and system-issued credential generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AdminEmailCtxKey is the key used to store the authenticated administrator
// email in the context. Set by the admin auth middleware after token
// verification.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.AdminEmailCtxKey, "ops@example.com")
var AdminEmailCtxKey = contextKey("adminEmail")

// GetAdminEmailFromContext retrieves the administrator email from the context.
//
// Returns the email and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetAdminEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(AdminEmailCtxKey).(string)
	return email, ok
}
