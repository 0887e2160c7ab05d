package auth

import (
	"context"

	"github.com/google/uuid"
)

// TokenService manages the session token lifecycle. A token is a signed
// string tied to one user; it stays valid until explicitly revoked, and a
// user may hold any number of tokens at once (one per device, typically).
type TokenService interface {
	// IssueToken creates a signed token for the user and records it in the
	// user's active token list.
	IssueToken(ctx context.Context, userID uuid.UUID) (string, error)

	// VerifyToken checks the token's signature and that it is still in the
	// issuing user's active token list, returning that user's ID.
	// Returns ErrInvalidToken for malformed or badly signed tokens and
	// ErrRevokedToken for well-signed tokens that have been logged out.
	VerifyToken(ctx context.Context, token string) (uuid.UUID, error)

	// RevokeToken removes one token from the user's active list
	// (single-session logout). Revoking an already-revoked token is an error
	// (store.ErrTokenNotFound).
	RevokeToken(ctx context.Context, userID uuid.UUID, token string) error

	// RevokeAllTokens clears the user's entire token list
	// (logout-everywhere).
	RevokeAllTokens(ctx context.Context, userID uuid.UUID) error
}
