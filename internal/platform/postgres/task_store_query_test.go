package postgres

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/tasknest/tasknest-api/internal/store"
)

func boolPtr(b bool) *bool { return &b }

func TestBuildListQuery(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()

	tests := []struct {
		name         string
		opts         store.ListTasksOptions
		wantContains []string
		wantExcludes []string
		wantArgs     int
	}{
		{
			name:         "defaults",
			opts:         store.ListTasksOptions{},
			wantContains: []string{"ORDER BY created_at ASC"},
			wantExcludes: []string{"LIMIT", "OFFSET", "completed ="},
			wantArgs:     1,
		},
		{
			name:         "completed filter",
			opts:         store.ListTasksOptions{Completed: boolPtr(true)},
			wantContains: []string{"AND completed = $2"},
			wantArgs:     2,
		},
		{
			name:         "pagination",
			opts:         store.ListTasksOptions{Limit: 10, Skip: 20},
			wantContains: []string{"LIMIT 10", "OFFSET 20"},
			wantArgs:     1,
		},
		{
			name:         "descending sort on known field",
			opts:         store.ListTasksOptions{SortField: "description", SortDesc: true},
			wantContains: []string{"ORDER BY description DESC"},
			wantArgs:     1,
		},
		{
			name:         "camelCase sort field maps to column",
			opts:         store.ListTasksOptions{SortField: "updatedAt"},
			wantContains: []string{"ORDER BY updated_at ASC"},
			wantArgs:     1,
		},
		{
			name:         "unknown sort field falls back to created_at",
			opts:         store.ListTasksOptions{SortField: "owner_id; DROP TABLE tasks"},
			wantContains: []string{"ORDER BY created_at ASC"},
			wantExcludes: []string{"DROP TABLE"},
			wantArgs:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			query, args := buildListQuery(ownerID, tt.opts)

			assert.Contains(t, query, "WHERE owner_id = $1")
			for _, want := range tt.wantContains {
				assert.Contains(t, query, want)
			}
			for _, exclude := range tt.wantExcludes {
				assert.NotContains(t, query, exclude)
			}
			assert.Len(t, args, tt.wantArgs)
			assert.Equal(t, ownerID, args[0])
		})
	}
}
