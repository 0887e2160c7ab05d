package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/tasknest/tasknest-api/internal/domain"
	"github.com/tasknest/tasknest-api/internal/store"
)

// UpdateTaskInput carries the allow-listed task fields. Nil means unchanged.
type UpdateTaskInput struct {
	Description *string
	Completed   *bool
}

// TaskService provides task operations. Every operation is scoped to the
// owner: a task belonging to another user is indistinguishable from a task
// that does not exist.
type TaskService interface {
	// CreateTask creates a task owned by ownerID.
	CreateTask(ctx context.Context, ownerID uuid.UUID, description string, completed bool) (*domain.Task, error)

	// GetTask retrieves one of the owner's tasks by ID.
	GetTask(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error)

	// ListTasks retrieves the owner's tasks with filtering, paging, and sorting.
	ListTasks(ctx context.Context, ownerID uuid.UUID, opts store.ListTasksOptions) ([]*domain.Task, error)

	// UpdateTask applies the provided fields to one of the owner's tasks.
	UpdateTask(ctx context.Context, ownerID, taskID uuid.UUID, input UpdateTaskInput) (*domain.Task, error)

	// DeleteTask removes one of the owner's tasks.
	DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error
}

// TaskServiceImpl implements the TaskService interface.
type TaskServiceImpl struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

var _ TaskService = (*TaskServiceImpl)(nil)

// NewTaskService creates a TaskService backed by the given store.
func NewTaskService(tasks store.TaskStore, logger *slog.Logger) *TaskServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskServiceImpl{
		tasks:  tasks,
		logger: logger.With(slog.String("component", "task_service")),
	}
}

// CreateTask implements TaskService.CreateTask.
func (s *TaskServiceImpl) CreateTask(ctx context.Context, ownerID uuid.UUID, description string, completed bool) (*domain.Task, error) {
	task, err := domain.NewTask(ownerID, description, completed)
	if err != nil {
		return nil, err
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	s.logger.Debug("task created", "task_id", task.ID, "owner_id", ownerID)
	return task, nil
}

// GetTask implements TaskService.GetTask.
func (s *TaskServiceImpl) GetTask(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, ownerID, taskID)
}

// ListTasks implements TaskService.ListTasks.
func (s *TaskServiceImpl) ListTasks(ctx context.Context, ownerID uuid.UUID, opts store.ListTasksOptions) ([]*domain.Task, error) {
	return s.tasks.List(ctx, ownerID, opts)
}

// UpdateTask implements TaskService.UpdateTask. Like profile updates, the
// full task is loaded, mutated, validated, and written back.
func (s *TaskServiceImpl) UpdateTask(ctx context.Context, ownerID, taskID uuid.UUID, input UpdateTaskInput) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	// Same normalization as creation: trimmed, and empty after trimming
	// fails validation.
	if input.Description != nil {
		task.Description = strings.TrimSpace(*input.Description)
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask implements TaskService.DeleteTask.
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error {
	return s.tasks.Delete(ctx, ownerID, taskID)
}
