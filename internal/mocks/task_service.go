package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/tasknest/tasknest-api/internal/domain"
	"github.com/tasknest/tasknest-api/internal/service"
	"github.com/tasknest/tasknest-api/internal/store"
)

// MockTaskService implements service.TaskService for testing.
type MockTaskService struct {
	CreateTaskFn func(ctx context.Context, ownerID uuid.UUID, description string, completed bool) (*domain.Task, error)
	GetTaskFn    func(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error)
	ListTasksFn  func(ctx context.Context, ownerID uuid.UUID, opts store.ListTasksOptions) ([]*domain.Task, error)
	UpdateTaskFn func(ctx context.Context, ownerID, taskID uuid.UUID, input service.UpdateTaskInput) (*domain.Task, error)
	DeleteTaskFn func(ctx context.Context, ownerID, taskID uuid.UUID) error

	// Default responses used when the matching Fn is nil.
	Task  *domain.Task
	Tasks []*domain.Task
	Err   error
}

var _ service.TaskService = (*MockTaskService)(nil)

func (m *MockTaskService) CreateTask(ctx context.Context, ownerID uuid.UUID, description string, completed bool) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, ownerID, description, completed)
	}
	return m.Task, m.Err
}

func (m *MockTaskService) GetTask(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error) {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, ownerID, taskID)
	}
	return m.Task, m.Err
}

func (m *MockTaskService) ListTasks(ctx context.Context, ownerID uuid.UUID, opts store.ListTasksOptions) ([]*domain.Task, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx, ownerID, opts)
	}
	return m.Tasks, m.Err
}

func (m *MockTaskService) UpdateTask(ctx context.Context, ownerID, taskID uuid.UUID, input service.UpdateTaskInput) (*domain.Task, error) {
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, ownerID, taskID, input)
	}
	return m.Task, m.Err
}

func (m *MockTaskService) DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, ownerID, taskID)
	}
	return m.Err
}
