// Package auth provides password hashing and bearer token primitives.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateSecret returns n cryptographically random bytes, hex encoded.
// n below MinSecretLen is rejected so generated secrets always satisfy
// NewTokenIssuer.
func GenerateSecret(n int) (string, error) {
	if n < MinSecretLen {
		return "", ErrSecretTooShort
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
