package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// TokenStore persists the set of active session tokens per user. A signed
// token is only accepted while its exact string is present here, so deleting
// a row is what revocation means.
type TokenStore interface {
	// Insert records a newly issued token for the user.
	Insert(ctx context.Context, userID uuid.UUID, token string) error

	// Exists reports whether the exact token string is still active for the user.
	Exists(ctx context.Context, userID uuid.UUID, token string) (bool, error)

	// Delete revokes a single token. Returns ErrTokenNotFound if the token
	// is not active for the user.
	Delete(ctx context.Context, userID uuid.UUID, token string) error

	// DeleteAllForUser revokes every active token the user has.
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) error

	// WithTx returns a TokenStore bound to the given transaction.
	WithTx(tx *sql.Tx) TokenStore
}
