// Package middleware holds the HTTP middleware chain: request tracing and
// token authentication.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tasknest/tasknest-api/internal/api/shared"
	"github.com/tasknest/tasknest-api/internal/domain"
	"github.com/tasknest/tasknest-api/internal/service/auth"
	"github.com/tasknest/tasknest-api/internal/store"
)

// authErrorMessage is the one message every authentication failure returns.
// Callers cannot distinguish a missing header from a revoked token.
const authErrorMessage = "Please authenticate."

// AuthMiddleware authenticates requests with a bearer session token and binds
// the resolved user to the request context.
type AuthMiddleware struct {
	tokens auth.TokenService
	users  store.UserStore
}

// NewAuthMiddleware creates an AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokens auth.TokenService, users store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		users:  users,
	}
}

// Authenticate verifies the Authorization header, checks the token is still
// active, loads the owning user, and binds both the user and the raw token
// to the context. Any failure yields 401 with the same body.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, authErrorMessage)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, authErrorMessage)
			return
		}
		token := parts[1]

		userID, err := m.tokens.VerifyToken(r.Context(), token)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidToken) ||
				errors.Is(err, auth.ErrRevokedToken) ||
				errors.Is(err, auth.ErrMissingToken) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, authErrorMessage)
				return
			}
			slog.Error("failed to verify token", "error", err)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}

		// A verified token whose user no longer exists is treated the same
		// as an invalid token.
		user, err := m.users.GetByID(r.Context(), userID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, authErrorMessage)
				return
			}
			slog.Error("failed to load authenticated user", "error", err)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserContextKey, user)
		ctx = context.WithValue(ctx, shared.TokenContextKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUser extracts the authenticated user from the request context.
func GetUser(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(shared.UserContextKey).(*domain.User)
	return user, ok
}

// GetToken extracts the raw session token from the request context.
func GetToken(r *http.Request) (string, bool) {
	token, ok := r.Context().Value(shared.TokenContextKey).(string)
	return token, ok
}
