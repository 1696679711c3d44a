package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/curaious/tasker/internal/services/membership"
	"github.com/curaious/tasker/internal/services/seed"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

type UserRepo struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, email, password_hash, name, created_at
		FROM users
		WHERE email = $1
	`
	var user User
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*User, error) {
	query := `
		SELECT id, email, password_hash, name, created_at
		FROM users
		WHERE id = $1
	`
	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// List returns the user directory, newest first.
func (r *UserRepo) List(ctx context.Context) ([]*User, error) {
	query := `
		SELECT id, email, password_hash, name, created_at
		FROM users
		ORDER BY created_at DESC
	`
	users := []*User{}
	err := r.db.SelectContext(ctx, &users, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *UserRepo) GetDetail(ctx context.Context, id int64) (*UserDetail, error) {
	query := `
		SELECT u.id, u.email, u.password_hash, u.name, u.created_at,
			(SELECT COUNT(*) FROM tasks t WHERE t.user_id = u.id) AS tasks_count,
			(SELECT COUNT(*) FROM comments c WHERE c.user_id = u.id) AS comments_count,
			(SELECT COUNT(*) FROM projects p WHERE p.user_id = u.id) AS projects_count
		FROM users u
		WHERE u.id = $1
	`
	var detail UserDetail
	err := r.db.GetContext(ctx, &detail, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &detail, nil
}

// Register creates the user, their default workspace, the OWNER membership
// and the demo content in one transaction. A failure at any step rolls the
// whole registration back, so no orphaned user or workspace can persist.
func (r *UserRepo) Register(ctx context.Context, email, passwordHash, name string) (*User, *WorkspaceRef, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var user User
	err = tx.GetContext(ctx, &user, `
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, $2, $3)
		RETURNING id, email, password_hash, name, created_at
	`, email, passwordHash, name)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, nil, ErrEmailTaken
		}
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	workspace := WorkspaceRef{Name: fmt.Sprintf("%s's Workspace", name)}
	err = tx.GetContext(ctx, &workspace.ID, `
		INSERT INTO workspaces (name, description)
		VALUES ($1, $2)
		RETURNING id
	`, workspace.Name, "Your personal workspace with demo data")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create default workspace: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO workspace_members (user_id, workspace_id, role)
		VALUES ($1, $2, $3)
	`, user.ID, workspace.ID, membership.RoleOwner)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create owner membership: %w", err)
	}

	if err := seed.Apply(ctx, tx, workspace.ID, user.ID); err != nil {
		return nil, nil, fmt.Errorf("failed to seed workspace: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit registration: %w", err)
	}

	return &user, &workspace, nil
}
