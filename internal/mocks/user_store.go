package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/tasknest/tasknest-api/internal/domain"
	"github.com/tasknest/tasknest-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
type MockUserStore struct {
	CreateFn       func(ctx context.Context, user *domain.User) error
	GetByIDFn      func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn   func(ctx context.Context, email string) (*domain.User, error)
	UpdateFn       func(ctx context.Context, user *domain.User) error
	DeleteFn       func(ctx context.Context, id uuid.UUID) error
	UpdateAvatarFn func(ctx context.Context, id uuid.UUID, avatar []byte) error
	GetAvatarFn    func(ctx context.Context, id uuid.UUID) ([]byte, error)

	// Default responses used when the matching Fn is nil.
	User   *domain.User
	Avatar []byte
	Err    error
}

var _ store.UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return m.Err
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.User, m.Err
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return m.User, m.Err
}

func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}
	return m.Err
}

func (m *MockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

func (m *MockUserStore) UpdateAvatar(ctx context.Context, id uuid.UUID, avatar []byte) error {
	if m.UpdateAvatarFn != nil {
		return m.UpdateAvatarFn(ctx, id, avatar)
	}
	return m.Err
}

func (m *MockUserStore) GetAvatar(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if m.GetAvatarFn != nil {
		return m.GetAvatarFn(ctx, id)
	}
	return m.Avatar, m.Err
}

// WithTx returns the mock itself; transaction scoping is not simulated.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
