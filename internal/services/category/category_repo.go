package category

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

var ErrCategoryNotFound = errors.New("category not found")

const defaultColor = "#6366f1"

const categoryColumns = `
	c.id, c.name, c.color, c.workspace_id, c.created_at, c.updated_at,
	(SELECT COUNT(*) FROM tasks t WHERE t.category_id = c.id) AS tasks_count
`

type CategoryRepo struct {
	db *sqlx.DB
}

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// List returns the workspace's categories alphabetically, unlike the other
// lists which are reverse-chronological.
func (r *CategoryRepo) List(ctx context.Context, workspaceID int64) ([]*Category, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM categories c
		WHERE c.workspace_id = $1
		ORDER BY c.name ASC
	`, categoryColumns)

	categories := []*Category{}
	err := r.db.SelectContext(ctx, &categories, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id, workspaceID int64) (*Category, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM categories c
		WHERE c.id = $1 AND c.workspace_id = $2
	`, categoryColumns)

	var category Category
	err := r.db.GetContext(ctx, &category, query, id, workspaceID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return &category, nil
}

func (r *CategoryRepo) Create(ctx context.Context, workspaceID int64, req *CreateCategoryRequest) (*Category, error) {
	color := req.Color
	if color == "" {
		color = defaultColor
	}

	var id int64
	err := r.db.GetContext(ctx, &id, `
		INSERT INTO categories (name, color, workspace_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, req.Name, color, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return r.GetByID(ctx, id, workspaceID)
}

func (r *CategoryRepo) Update(ctx context.Context, id, workspaceID int64, req *UpdateCategoryRequest) (*Category, error) {
	if _, err := r.GetByID(ctx, id, workspaceID); err != nil {
		return nil, err
	}

	setParts := []string{}
	args := []interface{}{}

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", len(args)+1))
		args = append(args, *req.Name)
	}
	if req.Color != nil {
		setParts = append(setParts, fmt.Sprintf("color = $%d", len(args)+1))
		args = append(args, *req.Color)
	}

	if len(setParts) == 0 {
		return r.GetByID(ctx, id, workspaceID)
	}

	setParts = append(setParts, "updated_at = NOW()")
	args = append(args, id, workspaceID)

	query := fmt.Sprintf(`
		UPDATE categories
		SET %s
		WHERE id = $%d AND workspace_id = $%d
	`, strings.Join(setParts, ", "), len(args)-1, len(args))

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return r.GetByID(ctx, id, workspaceID)
}

// Delete detaches the category from its tasks (categoryId becomes null)
// before removing it. Tasks are never deleted with their category.
func (r *CategoryRepo) Delete(ctx context.Context, id, workspaceID int64) error {
	if _, err := r.GetByID(ctx, id, workspaceID); err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `UPDATE tasks SET category_id = NULL WHERE category_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to detach category tasks: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE id = $1 AND workspace_id = $2`, id, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return tx.Commit()
}
