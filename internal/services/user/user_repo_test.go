package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curaious/tasker/internal/services/seed"
)

func newMockRepo(t *testing.T) (*UserRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewUserRepo(sqlx.NewDb(db, "postgres")), mock
}

func expectUserInsert(mock sqlmock.Sqlmock) {
	now := time.Now()
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("jo@example.com", "hash", "Jo").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "created_at"}).
			AddRow(int64(1), "jo@example.com", "hash", "Jo", now))
}

func expectWorkspaceSetup(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`INSERT INTO workspaces`).
		WithArgs("Jo's Workspace", "Your personal workspace with demo data").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(10)))
	mock.ExpectExec(`INSERT INTO workspace_members`).
		WithArgs(int64(1), int64(10), "OWNER").
		WillReturnResult(sqlmock.NewResult(1, 1))
}

func TestRegisterSeedsInsideOneTransaction(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	expectUserInsert(mock)
	expectWorkspaceSetup(mock)

	for i, c := range seed.Categories {
		mock.ExpectQuery(`INSERT INTO categories`).
			WithArgs(c.Name, c.Color, int64(10)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(100 + i)))
	}
	mock.ExpectQuery(`INSERT INTO projects`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(20)))
	for i, task := range seed.Tasks {
		mock.ExpectQuery(`INSERT INTO tasks`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(30 + i)))
		if task.Title == seed.WelcomeTaskTitle {
			mock.ExpectExec(`INSERT INTO comments`).
				WithArgs(seed.WelcomeComment, int64(30+i), int64(1)).
				WillReturnResult(sqlmock.NewResult(1, 1))
		}
	}
	mock.ExpectCommit()

	user, workspace, err := repo.Register(context.Background(), "jo@example.com", "hash", "Jo")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, int64(10), workspace.ID)
	assert.Equal(t, "Jo's Workspace", workspace.Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failure anywhere in the seed rolls the whole registration back, so no
// orphaned user or workspace survives.
func TestRegisterRollsBackWhenSeedFails(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	expectUserInsert(mock)
	expectWorkspaceSetup(mock)
	mock.ExpectQuery(`INSERT INTO categories`).
		WillReturnError(errors.New("value too long for type character varying"))
	mock.ExpectRollback()

	_, _, err := repo.Register(context.Background(), "jo@example.com", "hash", "Jo")
	require.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	_, _, err := repo.Register(context.Background(), "jo@example.com", "hash", "Jo")
	assert.ErrorIs(t, err, ErrEmailTaken)

	assert.NoError(t, mock.ExpectationsWereMet())
}
