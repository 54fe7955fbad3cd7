package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeUser is the "type" claim discriminator carried by end-user
// session tokens. Admin tokens carry no type claim; their subject is the
// administrator email.
const TokenTypeUser = "user"

// Claims is the full claim set used for both token kinds.
//
// Admin tokens populate only the registered claims (sub = admin email).
// User tokens additionally carry the phone, the TokenTypeUser discriminator
// and the account's token_version snapshot at issuance time, which is what
// allows a password reset to invalidate every previously issued token.
type Claims struct {
	jwt.RegisteredClaims

	Phone        string `json:"phone,omitempty"`
	TokenType    string `json:"type,omitempty"`
	TokenVersion int    `json:"token_version,omitempty"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [Claims] for claim access.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// UserID is a cached, parsed copy of the "sub" (subject) claim converted to
// int64. It is only meaningful for user tokens; admin token subjects are
// email addresses.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	Claims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the account identifier extracted from the "sub" claim of a
	// user token. Internal server-side cache.
	UserID int64 `json:"-"`
}

// GetUserID extracts the account identifier from the token's "sub" (subject)
// claim, parses it as a base-10 int64, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64 — which is the case for admin tokens.
func (t *Token) GetUserID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
