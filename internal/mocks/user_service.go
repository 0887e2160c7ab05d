package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/tasknest/tasknest-api/internal/domain"
	"github.com/tasknest/tasknest-api/internal/service"
)

// MockUserService implements service.UserService for testing.
type MockUserService struct {
	RegisterFn     func(ctx context.Context, input service.RegisterInput) (*domain.User, string, error)
	LoginFn        func(ctx context.Context, email, password string) (*domain.User, string, error)
	LogoutFn       func(ctx context.Context, userID uuid.UUID, token string) error
	LogoutAllFn    func(ctx context.Context, userID uuid.UUID) error
	GetUserFn      func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	UpdateUserFn   func(ctx context.Context, userID uuid.UUID, input service.UpdateUserInput) (*domain.User, error)
	DeleteUserFn   func(ctx context.Context, user *domain.User) error
	UploadAvatarFn func(ctx context.Context, userID uuid.UUID, data []byte) error
	DeleteAvatarFn func(ctx context.Context, userID uuid.UUID) error
	GetAvatarFn    func(ctx context.Context, userID uuid.UUID) ([]byte, error)

	// Default responses used when the matching Fn is nil.
	User   *domain.User
	Token  string
	Avatar []byte
	Err    error
}

var _ service.UserService = (*MockUserService)(nil)

func (m *MockUserService) Register(ctx context.Context, input service.RegisterInput) (*domain.User, string, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, input)
	}
	return m.User, m.Token, m.Err
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, email, password)
	}
	return m.User, m.Token, m.Err
}

func (m *MockUserService) Logout(ctx context.Context, userID uuid.UUID, token string) error {
	if m.LogoutFn != nil {
		return m.LogoutFn(ctx, userID, token)
	}
	return m.Err
}

func (m *MockUserService) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	if m.LogoutAllFn != nil {
		return m.LogoutAllFn(ctx, userID)
	}
	return m.Err
}

func (m *MockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, userID)
	}
	return m.User, m.Err
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID uuid.UUID, input service.UpdateUserInput) (*domain.User, error) {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, userID, input)
	}
	return m.User, m.Err
}

func (m *MockUserService) DeleteUser(ctx context.Context, user *domain.User) error {
	if m.DeleteUserFn != nil {
		return m.DeleteUserFn(ctx, user)
	}
	return m.Err
}

func (m *MockUserService) UploadAvatar(ctx context.Context, userID uuid.UUID, data []byte) error {
	if m.UploadAvatarFn != nil {
		return m.UploadAvatarFn(ctx, userID, data)
	}
	return m.Err
}

func (m *MockUserService) DeleteAvatar(ctx context.Context, userID uuid.UUID) error {
	if m.DeleteAvatarFn != nil {
		return m.DeleteAvatarFn(ctx, userID)
	}
	return m.Err
}

func (m *MockUserService) GetAvatar(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	if m.GetAvatarFn != nil {
		return m.GetAvatarFn(ctx, userID)
	}
	return m.Avatar, m.Err
}
