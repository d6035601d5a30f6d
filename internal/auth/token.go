// Package auth provides password hashing and bearer token primitives.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/alimenta/alimenta/internal/model"
)

const (
	// MinSecretLen is the minimum accepted signing secret size in bytes.
	MinSecretLen = 32

	// DefaultTokenTTL is the token lifetime used when none is configured.
	DefaultTokenTTL = 24 * time.Hour
)

var (
	// ErrSecretTooShort indicates the signing secret is below the minimum size.
	ErrSecretTooShort = fmt.Errorf("signing secret must be at least %d bytes", MinSecretLen)
	// ErrTokenExpired indicates a well-formed token past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid indicates a token that failed signature or claims checks.
	ErrTokenInvalid = errors.New("token invalid")
)

// tokenClaims is the payload carried by issued tokens: the registered
// claims plus the holder's public identity. Nothing else from the user
// record goes on the wire.
type tokenClaims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"id"`
	Email  string `json:"email"`
}

// TokenIssuer signs and verifies the bearer tokens returned by login.
// Tokens are HMAC-signed (HS256 only) and expire after a fixed TTL.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time // overridable for expiry tests
}

// NewTokenIssuer creates a TokenIssuer with the given secret and token
// lifetime. A non-positive ttl falls back to DefaultTokenTTL.
func NewTokenIssuer(secret []byte, ttl time.Duration) (*TokenIssuer, error) {
	if len(secret) < MinSecretLen {
		return nil, ErrSecretTooShort
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return &TokenIssuer{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue creates a signed token carrying the given identity.
func (ti *TokenIssuer) Issue(identity model.Identity) (string, error) {
	now := ti.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Subject(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.ttl)),
		},
		UserID: identity.UserID,
		Email:  identity.Email,
	})

	signed, err := token.SignedString(ti.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string and returns the identity
// it carries. Expired tokens return ErrTokenExpired; every other
// failure (bad signature, malformed, wrong algorithm, missing expiry)
// returns ErrTokenInvalid.
func (ti *TokenIssuer) Verify(tokenString string) (model.Identity, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(ti.now),
	)

	claims := &tokenClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return ti.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.Identity{}, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return model.Identity{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !token.Valid {
		return model.Identity{}, ErrTokenInvalid
	}

	return model.Identity{
		UserID: claims.UserID,
		Email:  claims.Email,
	}, nil
}
