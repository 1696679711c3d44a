package comment

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*CommentRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewCommentRepo(sqlx.NewDb(db, "postgres")), mock
}

var commentRowColumns = []string{
	"id", "content", "task_id", "user_id", "created_at", "updated_at",
	"user_name", "task_title",
}

// A comment is scoped through its full ownership chain, so an id under
// another workspace reads as missing.
func TestGetByIDCrossWorkspaceReadsAsMissing(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`WHERE cm\.id = \$1 AND p\.workspace_id = \$2`).
		WithArgs(int64(4), int64(99)).
		WillReturnRows(sqlmock.NewRows(commentRowColumns))

	_, err := repo.GetByID(context.Background(), 4, 99)
	assert.ErrorIs(t, err, ErrCommentNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// Create verifies the target task resolves under the caller's workspace
// before inserting anything.
func TestCreateRejectsTaskOutsideWorkspace(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`WHERE t\.id = \$1 AND p\.workspace_id = \$2`).
		WithArgs(int64(9), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Create(context.Background(), 7, &CreateCommentRequest{Content: "hi", TaskID: 9, UserID: 3})
	assert.ErrorIs(t, err, ErrTaskNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListScopedWithTaskFilter(t *testing.T) {
	repo, mock := newMockRepo(t)

	taskID := int64(9)
	mock.ExpectQuery(`WHERE p\.workspace_id = \$1 AND cm\.task_id = \$2`).
		WithArgs(int64(7), int64(9)).
		WillReturnRows(sqlmock.NewRows(commentRowColumns))

	comments, err := repo.List(context.Background(), 7, &taskID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	assert.NoError(t, mock.ExpectationsWereMet())
}
