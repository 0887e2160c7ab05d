package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tasknest/tasknest-api/internal/platform/logger"
	"github.com/tasknest/tasknest-api/internal/store"
)

// TokenStore implements the store.TokenStore interface using a PostgreSQL
// database as the storage backend. Each row is one active session; issue and
// revoke are plain inserts and deletes, serialized by the database itself.
type TokenStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewTokenStore creates a PostgreSQL implementation of store.TokenStore.
// If logger is nil, the default logger is used.
func NewTokenStore(db store.DBTX, logger *slog.Logger) *TokenStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TokenStore{
		db:     db,
		logger: logger.With(slog.String("component", "token_store")),
	}
}

var _ store.TokenStore = (*TokenStore)(nil)

// Insert implements store.TokenStore.Insert.
func (s *TokenStore) Insert(ctx context.Context, userID uuid.UUID, token string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO user_tokens (user_id, token, created_at)
		VALUES ($1, $2, $3)
	`
	_, err := s.db.ExecContext(ctx, query, userID, token, time.Now().UTC())
	if err != nil {
		log.Error("failed to insert session token",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return MapError(err)
	}

	return nil
}

// Exists implements store.TokenStore.Exists.
func (s *TokenStore) Exists(ctx context.Context, userID uuid.UUID, token string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM user_tokens WHERE user_id = $1 AND token = $2
		)
	`
	var exists bool
	if err := s.db.QueryRowContext(ctx, query, userID, token).Scan(&exists); err != nil {
		log.Error("failed to check session token",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return false, MapError(err)
	}

	return exists, nil
}

// Delete implements store.TokenStore.Delete.
func (s *TokenStore) Delete(ctx context.Context, userID uuid.UUID, token string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM user_tokens WHERE user_id = $1 AND token = $2`
	result, err := s.db.ExecContext(ctx, query, userID, token)
	if err != nil {
		log.Error("failed to delete session token",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrTokenNotFound)
}

// DeleteAllForUser implements store.TokenStore.DeleteAllForUser. Deleting
// zero rows is fine here: logging out everywhere when no session is active
// is a no-op, not an error.
func (s *TokenStore) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.db.ExecContext(ctx, `DELETE FROM user_tokens WHERE user_id = $1`, userID)
	if err != nil {
		log.Error("failed to delete session tokens",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return MapError(err)
	}

	log.Info("all session tokens revoked", slog.String("user_id", userID.String()))
	return nil
}

// WithTx implements store.TokenStore.WithTx.
func (s *TokenStore) WithTx(tx *sql.Tx) store.TokenStore {
	return &TokenStore{db: tx, logger: s.logger}
}
