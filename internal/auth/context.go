// Package auth provides password hashing and bearer token primitives.
package auth

import (
	"context"

	"github.com/alimenta/alimenta/internal/model"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// identityContextKey is the context key for storing the caller identity.
	identityContextKey contextKey = "identity"
)

// ContextWithIdentity adds the verified caller identity to the context.
func ContextWithIdentity(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// IdentityFromContext retrieves the caller identity from the context.
// The second return is false when the auth middleware has not run.
func IdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(model.Identity)
	return identity, ok
}
