package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/tasknest/tasknest-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// hashed password; plaintext passwords are never persisted.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	// The avatar blob is not loaded; use GetAvatar for that.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update persists changes to name, email, age, and hashed password.
	// The caller must provide a complete user including HashedPassword.
	// Returns ErrUserNotFound if the user does not exist and ErrEmailExists
	// if the new email is already taken by another user.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID. Session tokens are
	// removed by the schema cascade; task cleanup is orchestrated by the
	// service layer. Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// UpdateAvatar replaces the user's avatar bytes. A nil slice clears the
	// avatar. Returns ErrUserNotFound if the user does not exist.
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatar []byte) error

	// GetAvatar returns the user's raw avatar bytes, which may be nil when
	// no avatar is set. Returns ErrUserNotFound if the user does not exist.
	GetAvatar(ctx context.Context, id uuid.UUID) ([]byte, error)

	// WithTx returns a UserStore bound to the given transaction so multiple
	// operations can commit or roll back together.
	WithTx(tx *sql.Tx) UserStore
}
