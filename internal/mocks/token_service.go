package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/tasknest/tasknest-api/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing.
type MockTokenService struct {
	IssueTokenFn      func(ctx context.Context, userID uuid.UUID) (string, error)
	VerifyTokenFn     func(ctx context.Context, token string) (uuid.UUID, error)
	RevokeTokenFn     func(ctx context.Context, userID uuid.UUID, token string) error
	RevokeAllTokensFn func(ctx context.Context, userID uuid.UUID) error

	// Default responses used when the matching Fn is nil.
	Token  string
	UserID uuid.UUID
	Err    error
}

var _ auth.TokenService = (*MockTokenService)(nil)

func (m *MockTokenService) IssueToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.IssueTokenFn != nil {
		return m.IssueTokenFn(ctx, userID)
	}
	return m.Token, m.Err
}

func (m *MockTokenService) VerifyToken(ctx context.Context, token string) (uuid.UUID, error) {
	if m.VerifyTokenFn != nil {
		return m.VerifyTokenFn(ctx, token)
	}
	return m.UserID, m.Err
}

func (m *MockTokenService) RevokeToken(ctx context.Context, userID uuid.UUID, token string) error {
	if m.RevokeTokenFn != nil {
		return m.RevokeTokenFn(ctx, userID, token)
	}
	return m.Err
}

func (m *MockTokenService) RevokeAllTokens(ctx context.Context, userID uuid.UUID) error {
	if m.RevokeAllTokensFn != nil {
		return m.RevokeAllTokensFn(ctx, userID)
	}
	return m.Err
}
