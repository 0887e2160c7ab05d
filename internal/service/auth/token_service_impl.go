package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/tasknest/tasknest-api/internal/config"
	"github.com/tasknest/tasknest-api/internal/platform/logger"
	"github.com/tasknest/tasknest-api/internal/store"
)

// hmacTokenService implements TokenService with HMAC-SHA256 signed JWTs
// backed by a persistent token list. Tokens carry no expiry claim: a token is
// valid until it is revoked, which mirrors the multi-device session model
// where logout is the only way a session ends.
type hmacTokenService struct {
	signingKey []byte
	tokens     store.TokenStore
	timeFunc   func() time.Time // injectable for testing
}

// tokenClaims is the claim set carried by issued tokens.
type tokenClaims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

var _ TokenService = (*hmacTokenService)(nil)

// NewTokenService creates a TokenService signing with the secret from cfg and
// recording issued tokens in the given store. The secret must be at least 32
// characters.
func NewTokenService(cfg config.AuthConfig, tokens store.TokenStore) (TokenService, error) {
	if len(cfg.TokenSecret) < 32 {
		return nil, fmt.Errorf("token secret must be at least 32 characters")
	}
	if tokens == nil {
		return nil, fmt.Errorf("token store is required")
	}

	return &hmacTokenService{
		signingKey: []byte(cfg.TokenSecret),
		tokens:     tokens,
		timeFunc:   time.Now,
	}, nil
}

// IssueToken signs a token for the user and appends it to their active list.
func (s *hmacTokenService) IssueToken(ctx context.Context, userID uuid.UUID) (string, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	claims := tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  userID.String(),
			IssuedAt: jwt.NewNumericDate(now),
			ID:       uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign session token",
			"error", err,
			"user_id", userID)
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	if err := s.tokens.Insert(ctx, userID, signed); err != nil {
		log.Error("failed to persist session token",
			"error", err,
			"user_id", userID)
		return "", fmt.Errorf("failed to persist session token: %w", err)
	}

	log.Debug("session token issued", "user_id", userID, "token_id", claims.ID)
	return signed, nil
}

// VerifyToken checks the signature and the stored token list. Both checks
// must pass: a perfectly signed token that has been revoked is rejected.
func (s *hmacTokenService) VerifyToken(ctx context.Context, tokenString string) (uuid.UUID, error) {
	log := logger.FromContext(ctx)

	if tokenString == "" {
		return uuid.Nil, ErrMissingToken
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(s.timeFunc),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&tokenClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		parserOpts...)
	if err != nil {
		log.Debug("token validation failed", "error", err)
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid || claims.UserID == uuid.Nil {
		log.Debug("token validation failed: invalid claims")
		return uuid.Nil, ErrInvalidToken
	}

	active, err := s.tokens.Exists(ctx, claims.UserID, tokenString)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to check token list: %w", err)
	}
	if !active {
		log.Debug("token validation failed: token revoked",
			"user_id", claims.UserID,
			"token_id", claims.ID)
		return uuid.Nil, ErrRevokedToken
	}

	return claims.UserID, nil
}

// RevokeToken removes one token from the user's active list.
func (s *hmacTokenService) RevokeToken(ctx context.Context, userID uuid.UUID, token string) error {
	return s.tokens.Delete(ctx, userID, token)
}

// RevokeAllTokens clears the user's entire token list.
func (s *hmacTokenService) RevokeAllTokens(ctx context.Context, userID uuid.UUID) error {
	return s.tokens.DeleteAllForUser(ctx, userID)
}
