package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/tasknest/tasknest-api/internal/domain"
	"github.com/tasknest/tasknest-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing.
type MockTaskStore struct {
	CreateFn        func(ctx context.Context, task *domain.Task) error
	GetByIDFn       func(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error)
	ListFn          func(ctx context.Context, ownerID uuid.UUID, opts store.ListTasksOptions) ([]*domain.Task, error)
	UpdateFn        func(ctx context.Context, task *domain.Task) error
	DeleteFn        func(ctx context.Context, ownerID, taskID uuid.UUID) error
	DeleteByOwnerFn func(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// Default responses used when the matching Fn is nil.
	Task    *domain.Task
	Tasks   []*domain.Task
	Deleted int64
	Err     error
}

var _ store.TaskStore = (*MockTaskStore)(nil)

func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return m.Err
}

func (m *MockTaskStore) GetByID(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, ownerID, taskID)
	}
	return m.Task, m.Err
}

func (m *MockTaskStore) List(ctx context.Context, ownerID uuid.UUID, opts store.ListTasksOptions) ([]*domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, ownerID, opts)
	}
	return m.Tasks, m.Err
}

func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}
	return m.Err
}

func (m *MockTaskStore) Delete(ctx context.Context, ownerID, taskID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, ownerID, taskID)
	}
	return m.Err
}

func (m *MockTaskStore) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	if m.DeleteByOwnerFn != nil {
		return m.DeleteByOwnerFn(ctx, ownerID)
	}
	return m.Deleted, m.Err
}

// WithTx returns the mock itself; transaction scoping is not simulated.
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}
