package task

import (
	"testing"

	json "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curaious/tasker/internal/validate"
)

func TestCreateTaskRequestValidate(t *testing.T) {
	desc := "something broke"

	tests := []struct {
		name    string
		req     CreateTaskRequest
		wantErr []string
	}{
		{
			name: "valid with defaults left blank",
			req:  CreateTaskRequest{Title: "Fix login", ProjectID: 1, UserID: 2},
		},
		{
			name: "valid fully specified",
			req: CreateTaskRequest{
				Title:       "Fix login",
				Description: &desc,
				Status:      StatusInProgress,
				Priority:    PriorityHigh,
				DueDate:     ptr("2026-03-01"),
				ProjectID:   1,
				UserID:      2,
			},
		},
		{
			name:    "missing title and refs",
			req:     CreateTaskRequest{},
			wantErr: []string{"title", "projectId", "userId"},
		},
		{
			name:    "bad enums and date",
			req:     CreateTaskRequest{Title: "x", Status: "PENDING", Priority: "URGENT", DueDate: ptr("soon"), ProjectID: 1, UserID: 2},
			wantErr: []string{"status", "priority", "dueDate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}

			var errs validate.Errors
			require.ErrorAs(t, err, &errs)

			fields := make([]string, len(errs))
			for i, fe := range errs {
				fields[i] = fe.Field
			}
			assert.ElementsMatch(t, tt.wantErr, fields)
		})
	}
}

func TestUpdateTaskRequestTriState(t *testing.T) {
	t.Run("omitted fields stay unset", func(t *testing.T) {
		var req UpdateTaskRequest
		require.NoError(t, json.Unmarshal([]byte(`{"title":"New title"}`), &req))

		require.NotNil(t, req.Title)
		assert.Equal(t, "New title", *req.Title)
		assert.False(t, req.DueDate.Set)
		assert.False(t, req.CategoryID.Set)
	})

	t.Run("explicit null clears", func(t *testing.T) {
		var req UpdateTaskRequest
		require.NoError(t, json.Unmarshal([]byte(`{"dueDate":null,"categoryId":null}`), &req))

		assert.True(t, req.DueDate.Set)
		assert.False(t, req.DueDate.Valid)
		assert.True(t, req.CategoryID.Set)
		assert.False(t, req.CategoryID.Valid)
	})

	t.Run("values parse", func(t *testing.T) {
		var req UpdateTaskRequest
		require.NoError(t, json.Unmarshal([]byte(`{"dueDate":"2026-03-01T00:00:00Z","categoryId":3}`), &req))

		assert.True(t, req.DueDate.Valid)
		assert.Equal(t, "2026-03-01T00:00:00Z", req.DueDate.Value)
		assert.True(t, req.CategoryID.Valid)
		assert.Equal(t, int64(3), req.CategoryID.Value)
	})
}

func TestUpdateTaskRequestValidate(t *testing.T) {
	empty := ""
	badStatus := Status("ARCHIVED")

	req := UpdateTaskRequest{Title: &empty, Status: &badStatus}
	err := req.Validate()

	var errs validate.Errors
	require.ErrorAs(t, err, &errs)

	fields := make([]string, len(errs))
	for i, fe := range errs {
		fields[i] = fe.Field
	}
	assert.ElementsMatch(t, []string{"title", "status"}, fields)
}

func ptr[T any](v T) *T { return &v }
