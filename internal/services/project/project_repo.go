package project

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

var ErrProjectNotFound = errors.New("project not found")

const projectColumns = `
	p.id, p.name, p.description, p.workspace_id, p.user_id, p.created_at, p.updated_at,
	u.id AS "user.id", u.name AS "user.name",
	(SELECT COUNT(*) FROM tasks t WHERE t.project_id = p.id) AS tasks_count
`

// ProjectRepo handles database operations for projects. Every query is
// filtered by the caller's workspace; an id from another workspace behaves
// exactly like a missing row.
type ProjectRepo struct {
	db *sqlx.DB
}

func NewProjectRepo(db *sqlx.DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

func (r *ProjectRepo) List(ctx context.Context, workspaceID int64) ([]*Project, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM projects p
		JOIN users u ON u.id = p.user_id
		WHERE p.workspace_id = $1
		ORDER BY p.created_at DESC
	`, projectColumns)

	projects := []*Project{}
	err := r.db.SelectContext(ctx, &projects, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return projects, nil
}

func (r *ProjectRepo) GetByID(ctx context.Context, id, workspaceID int64) (*Project, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM projects p
		JOIN users u ON u.id = p.user_id
		WHERE p.id = $1 AND p.workspace_id = $2
	`, projectColumns)

	var project Project
	err := r.db.GetContext(ctx, &project, query, id, workspaceID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return &project, nil
}

func (r *ProjectRepo) Create(ctx context.Context, workspaceID int64, req *CreateProjectRequest) (*Project, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, `
		INSERT INTO projects (name, description, workspace_id, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, req.Name, req.Description, workspaceID, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return r.GetByID(ctx, id, workspaceID)
}

func (r *ProjectRepo) Update(ctx context.Context, id, workspaceID int64, req *UpdateProjectRequest) (*Project, error) {
	// Existence plus workspace check before touching anything.
	if _, err := r.GetByID(ctx, id, workspaceID); err != nil {
		return nil, err
	}

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
	if req.UserID != nil {
		setParts = append(setParts, fmt.Sprintf("user_id = $%d", len(args)+1))
		args = append(args, *req.UserID)
	}

	if len(setParts) == 0 {
		return r.GetByID(ctx, id, workspaceID)
	}

	setParts = append(setParts, "updated_at = NOW()")
	args = append(args, id, workspaceID)

	query := fmt.Sprintf(`
		UPDATE projects
		SET %s
		WHERE id = $%d AND workspace_id = $%d
	`, strings.Join(setParts, ", "), len(args)-1, len(args))

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return r.GetByID(ctx, id, workspaceID)
}

// Delete removes the project with its tasks and their comments, child-first
// in one transaction.
func (r *ProjectRepo) Delete(ctx context.Context, id, workspaceID int64) error {
	if _, err := r.GetByID(ctx, id, workspaceID); err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		DELETE FROM comments c
		USING tasks t
		WHERE c.task_id = t.id AND t.project_id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project comments: %w", err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM tasks WHERE project_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project tasks: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE id = $1 AND workspace_id = $2`, id, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrProjectNotFound
	}

	return tx.Commit()
}
