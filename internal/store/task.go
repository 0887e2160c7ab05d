package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/tasknest/tasknest-api/internal/domain"
)

// ListTasksOptions narrows and orders the result of TaskStore.List.
// The zero value lists every task the owner has, in creation order.
type ListTasksOptions struct {
	// Completed filters by completion status when non-nil.
	Completed *bool

	// Limit caps the number of returned tasks; <= 0 means no cap.
	Limit int

	// Skip drops that many tasks from the start of the result; <= 0 means none.
	Skip int

	// SortField names the column to order by. Implementations accept only
	// fields they know (created_at, updated_at, description, completed) and
	// fall back to created_at otherwise.
	SortField string

	// SortDesc orders descending when true, ascending otherwise.
	SortDesc bool
}

// TaskStore defines the interface for task data persistence. Every read and
// write is scoped to an owner: a task under a different owner behaves exactly
// like a task that does not exist.
type TaskStore interface {
	// Create saves a new task to the store.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves the task with the given ID owned by ownerID.
	// Returns ErrTaskNotFound if no such task exists for that owner.
	GetByID(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error)

	// List returns the owner's tasks, filtered and ordered per opts.
	// Returns an empty slice when nothing matches.
	List(ctx context.Context, ownerID uuid.UUID, opts ListTasksOptions) ([]*domain.Task, error)

	// Update persists changes to description and completed, keyed by
	// (task.ID, task.OwnerID). Returns ErrTaskNotFound if no such task
	// exists for that owner.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes the task with the given ID owned by ownerID.
	// Returns ErrTaskNotFound if no such task exists for that owner.
	Delete(ctx context.Context, ownerID, taskID uuid.UUID) error

	// DeleteByOwner removes every task owned by ownerID, returning the number
	// removed. Used when an account is deleted.
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// WithTx returns a TaskStore bound to the given transaction so multiple
	// operations can commit or roll back together.
	WithTx(tx *sql.Tx) TaskStore
}
