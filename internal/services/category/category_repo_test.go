package category

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*CategoryRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewCategoryRepo(sqlx.NewDb(db, "postgres")), mock
}

var categoryColumnsList = []string{"id", "name", "color", "workspace_id", "created_at", "updated_at", "tasks_count"}

func bugCategoryRow() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(categoryColumnsList).
		AddRow(int64(3), "Bug", "#ef4444", int64(7), now, now, 2)
}

func TestGetByIDCrossWorkspaceReadsAsMissing(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`WHERE c\.id = \$1 AND c\.workspace_id = \$2`).
		WithArgs(int64(3), int64(99)).
		WillReturnRows(sqlmock.NewRows(categoryColumnsList))

	_, err := repo.GetByID(context.Background(), 3, 99)
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDefaultsColor(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO categories`).
		WithArgs("Chore", defaultColor, int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectQuery(`WHERE c\.id = \$1 AND c\.workspace_id = \$2`).
		WithArgs(int64(3), int64(7)).
		WillReturnRows(bugCategoryRow())

	_, err := repo.Create(context.Background(), 7, &CreateCategoryRequest{Name: "Chore"})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// Deleting a category detaches its tasks; the tasks themselves survive.
func TestDeleteDetachesTasks(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`WHERE c\.id = \$1 AND c\.workspace_id = \$2`).
		WithArgs(int64(3), int64(7)).
		WillReturnRows(bugCategoryRow())
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE tasks SET category_id = NULL WHERE category_id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM categories WHERE id = \$1 AND workspace_id = \$2`).
		WithArgs(int64(3), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), 3, 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}
