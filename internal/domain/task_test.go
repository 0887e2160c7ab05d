package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasknest/tasknest-api/internal/domain"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()

	tests := []struct {
		name        string
		ownerID     uuid.UUID
		description string
		completed   bool
		expectedErr error
	}{
		{
			name:        "valid task",
			ownerID:     ownerID,
			description: "buy milk",
		},
		{
			name:        "valid completed task",
			ownerID:     ownerID,
			description: "walk the dog",
			completed:   true,
		},
		{
			name:        "description trimmed to empty",
			ownerID:     ownerID,
			description: "   ",
			expectedErr: domain.ErrEmptyDescription,
		},
		{
			name:        "missing owner",
			ownerID:     uuid.Nil,
			description: "buy milk",
			expectedErr: domain.ErrEmptyOwnerID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			task, err := domain.NewTask(tt.ownerID, tt.description, tt.completed)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, task)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, task)
			assert.NotEqual(t, uuid.Nil, task.ID)
			assert.Equal(t, tt.ownerID, task.OwnerID)
			assert.Equal(t, tt.completed, task.Completed)
		})
	}
}

func TestNewTaskTrimsDescription(t *testing.T) {
	t.Parallel()

	task, err := domain.NewTask(uuid.New(), "  buy milk  ", false)
	require.NoError(t, err)
	assert.Equal(t, "buy milk", task.Description)
}
