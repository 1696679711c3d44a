package workspace

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*WorkspaceRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewWorkspaceRepo(sqlx.NewDb(db, "postgres")), mock
}

func TestCreateGrantsOwnerInSameTransaction(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO workspaces`).
		WithArgs("Engineering", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "created_at"}).
			AddRow(int64(10), "Engineering", nil, time.Now()))
	mock.ExpectExec(`INSERT INTO workspace_members`).
		WithArgs(int64(1), int64(10), "OWNER").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	ws, err := repo.Create(context.Background(), 1, &CreateWorkspaceRequest{Name: "Engineering"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), ws.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDMissing(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM workspaces`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "created_at"}))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrWorkspaceNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// The cascade is an explicit leaf-to-root contract: comments, tasks,
// projects, categories, memberships, then the workspace itself, all in one
// transaction.
func TestDeleteCascadesChildFirst(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM comments c`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM tasks t`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec(`DELETE FROM projects WHERE workspace_id = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM categories WHERE workspace_id = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(`DELETE FROM workspace_members WHERE workspace_id = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM workspaces WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMissingWorkspace(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	for _, table := range []string{"comments c", "tasks t", "projects", "categories", "workspace_members"} {
		mock.ExpectExec(`DELETE FROM ` + table).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectExec(`DELETE FROM workspaces WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrWorkspaceNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
