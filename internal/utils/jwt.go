package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dicerhq/dicer-admin/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateAdminJWT creates a signed HMAC-SHA256 JWT for the administrator
// identity.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the administrator email
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// Admin tokens carry no type discriminator and no token-version binding.
//
// Returns an error if any parameter is empty or zero, or if signing fails.
func GenerateAdminJWT(issuer, email string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || email == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return signToken(claims, signKey)
}

// GenerateUserJWT creates a signed HMAC-SHA256 JWT for an end-user session.
//
// On top of the standard claims (iss, sub = account ID, iat, exp) the token
// carries the account phone, the "user" type discriminator, and the account's
// token_version at issuance time. A later password reset bumps the stored
// version and thereby invalidates this token without any server-side session
// state.
//
// Returns an error if any parameter is empty or zero, or if signing fails.
func GenerateUserJWT(issuer string, userID int64, phone string, tokenVersion int, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userID == 0 || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Phone:        phone,
		TokenType:    models.TokenTypeUser,
		TokenVersion: tokenVersion,
	}

	token, err := signToken(claims, signKey)
	if err != nil {
		return models.Token{}, err
	}

	token.UserID = userID
	return token, nil
}

func signToken(claims models.Claims, signKey string) (models.Token, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWT validates the given JWT token string and extracts its
// claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//
// The returned error wraps the underlying jwt/v5 error, so callers can
// distinguish expiry via errors.Is(err, jwt.ErrTokenExpired).
//
// For user tokens the numeric subject is additionally cached into UserID;
// admin tokens (email subject) leave UserID zero.
func ValidateAndParseJWT(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	var claims models.Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	parsed := models.Token{Token: token, Claims: claims, SignedString: tokenString}

	if userID, convErr := strconv.ParseInt(claims.Subject, 10, 64); convErr == nil {
		parsed.UserID = userID
	}

	return parsed, nil
}

// ParseBearerToken extracts the token string from an
// "Authorization: Bearer <token>" header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
