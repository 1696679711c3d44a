package workspace

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/curaious/tasker/internal/services/membership"
)

var ErrWorkspaceNotFound = errors.New("workspace not found")

type WorkspaceRepo struct {
	db *sqlx.DB
}

func NewWorkspaceRepo(db *sqlx.DB) *WorkspaceRepo {
	return &WorkspaceRepo{db: db}
}

// Create inserts the workspace and the creator's OWNER membership in one
// transaction.
func (r *WorkspaceRepo) Create(ctx context.Context, userID int64, req *CreateWorkspaceRequest) (*Workspace, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var workspace Workspace
	err = tx.GetContext(ctx, &workspace, `
		INSERT INTO workspaces (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description, created_at
	`, req.Name, req.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO workspace_members (user_id, workspace_id, role)
		VALUES ($1, $2, $3)
	`, userID, workspace.ID, membership.RoleOwner)
	if err != nil {
		return nil, fmt.Errorf("failed to create owner membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit workspace creation: %w", err)
	}

	return &workspace, nil
}

func (r *WorkspaceRepo) GetByID(ctx context.Context, id int64) (*Workspace, error) {
	query := `
		SELECT id, name, description, created_at
		FROM workspaces
		WHERE id = $1
	`
	var workspace Workspace
	err := r.db.GetContext(ctx, &workspace, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	return &workspace, nil
}

func (r *WorkspaceRepo) CountProjects(ctx context.Context, id int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM projects WHERE workspace_id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return count, nil
}

func (r *WorkspaceRepo) Update(ctx context.Context, id int64, req *UpdateWorkspaceRequest) (*Workspace, error) {
	setParts := []string{}
	args := []interface{}{}

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", len(args)+1))
		args = append(args, *req.Name)
	}

	if req.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", len(args)+1))
		args = append(args, *req.Description)
	}

	if len(setParts) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE workspaces
		SET %s
		WHERE id = $%d
		RETURNING id, name, description, created_at
	`, strings.Join(setParts, ", "), len(args))

	var workspace Workspace
	err := r.db.GetContext(ctx, &workspace, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to update workspace: %w", err)
	}

	return &workspace, nil
}

// Delete removes the workspace and everything under it. Children go first,
// leaf to root, so the cascade is an explicit contract here rather than a
// storage-engine side effect.
func (r *WorkspaceRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	steps := []string{
		`DELETE FROM comments c
			USING tasks t, projects p
			WHERE c.task_id = t.id AND t.project_id = p.id AND p.workspace_id = $1`,
		`DELETE FROM tasks t
			USING projects p
			WHERE t.project_id = p.id AND p.workspace_id = $1`,
		`DELETE FROM projects WHERE workspace_id = $1`,
		`DELETE FROM categories WHERE workspace_id = $1`,
		`DELETE FROM workspace_members WHERE workspace_id = $1`,
	}
	for _, step := range steps {
		if _, err := tx.ExecContext(ctx, step, id); err != nil {
			return fmt.Errorf("failed to cascade workspace delete: %w", err)
		}
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM workspaces WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrWorkspaceNotFound
	}

	return tx.Commit()
}
