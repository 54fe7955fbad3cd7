package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// Alphabets and lengths of the system-issued credentials. Passwords are
// 6-character alphanumeric strings; secret codes are 5-digit numeric strings.
const (
	passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	passwordLength   = 6

	secretCodeAlphabet = "0123456789"
	secretCodeLength   = 5
)

// GeneratePassword produces a new 6-character alphanumeric account password
// using crypto/rand.
func GeneratePassword() (string, error) {
	return randomString(passwordAlphabet, passwordLength)
}

// GenerateSecretCode produces a new 5-digit numeric secret code using
// crypto/rand.
func GenerateSecretCode() (string, error) {
	return randomString(secretCodeAlphabet, secretCodeLength)
}

func randomString(alphabet string, length int) (string, error) {
	max := big.NewInt(int64(len(alphabet)))

	var builder strings.Builder
	builder.Grow(length)

	for i := 0; i < length; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("error generating random string: %w", err)
		}
		builder.WriteByte(alphabet[idx.Int64()])
	}

	return builder.String(), nil
}
