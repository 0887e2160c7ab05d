package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common task validation errors, wrapping ErrValidation like the user ones.
var (
	ErrEmptyTaskID      = fmt.Errorf("%w: task ID cannot be empty", ErrValidation)
	ErrEmptyDescription = fmt.Errorf("%w: task description cannot be empty", ErrValidation)
	ErrEmptyOwnerID     = fmt.Errorf("%w: task owner ID cannot be empty", ErrValidation)
)

// Task is a single to-do item. Every task belongs to exactly one user; the
// owner is fixed at creation and never reassigned.
type Task struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTask creates a Task owned by the given user. The description is trimmed.
// Returns a validation error if any field is invalid.
func NewTask(ownerID uuid.UUID, description string, completed bool) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		Description: strings.TrimSpace(description),
		Completed:   completed,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks that the Task holds valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if t.Description == "" {
		return ErrEmptyDescription
	}

	if t.OwnerID == uuid.Nil {
		return ErrEmptyOwnerID
	}

	return nil
}
