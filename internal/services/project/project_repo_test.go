package project

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*ProjectRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewProjectRepo(sqlx.NewDb(db, "postgres")), mock
}

var projectRowColumns = []string{
	"id", "name", "description", "workspace_id", "user_id",
	"created_at", "updated_at", "user.id", "user.name", "tasks_count",
}

func demoProjectRow() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(projectRowColumns).
		AddRow(int64(5), "Demo Project", nil, int64(7), int64(3), now, now, int64(3), "Jo", 2)
}

func TestGetByIDCrossWorkspaceReadsAsMissing(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`WHERE p\.id = \$1 AND p\.workspace_id = \$2`).
		WithArgs(int64(5), int64(99)).
		WillReturnRows(sqlmock.NewRows(projectRowColumns))

	_, err := repo.GetByID(context.Background(), 5, 99)
	assert.ErrorIs(t, err, ErrProjectNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCarriesWorkspacePredicate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`WHERE p\.workspace_id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(demoProjectRow())

	projects, err := repo.List(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Jo", projects[0].User.Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// Project deletion takes the comments of its tasks, then the tasks, then
// the project, all in one transaction.
func TestDeleteCascades(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`WHERE p\.id = \$1 AND p\.workspace_id = \$2`).
		WithArgs(int64(5), int64(7)).
		WillReturnRows(demoProjectRow())
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM comments c`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM tasks WHERE project_id = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM projects WHERE id = \$1 AND workspace_id = \$2`).
		WithArgs(int64(5), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), 5, 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}
