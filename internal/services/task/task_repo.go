package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/curaious/tasker/internal/validate"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrProjectNotFound  = errors.New("project not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// taskRow is the scan target for the joined task query; nullable category
// columns cannot land in the nested API struct directly.
type taskRow struct {
	ID            int64      `db:"id"`
	Title         string     `db:"title"`
	Description   *string    `db:"description"`
	Status        Status     `db:"status"`
	Priority      Priority   `db:"priority"`
	DueDate       *time.Time `db:"due_date"`
	ProjectID     int64      `db:"project_id"`
	UserID        int64      `db:"user_id"`
	CategoryID    *int64     `db:"category_id"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	ProjectName   string     `db:"project_name"`
	UserName      string     `db:"user_name"`
	CategoryName  *string    `db:"category_name"`
	CategoryColor *string    `db:"category_color"`
	CommentsCount int        `db:"comments_count"`
}

func (row *taskRow) toTask() *Task {
	t := &Task{
		ID:            row.ID,
		Title:         row.Title,
		Description:   row.Description,
		Status:        row.Status,
		Priority:      row.Priority,
		DueDate:       row.DueDate,
		ProjectID:     row.ProjectID,
		UserID:        row.UserID,
		CategoryID:    row.CategoryID,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
		Project:       ProjectRef{ID: row.ProjectID, Name: row.ProjectName},
		User:          UserRef{ID: row.UserID, Name: row.UserName},
		CommentsCount: row.CommentsCount,
	}
	if row.CategoryID != nil && row.CategoryName != nil && row.CategoryColor != nil {
		t.Category = &CategoryRef{ID: *row.CategoryID, Name: *row.CategoryName, Color: *row.CategoryColor}
	}
	return t
}

const taskColumns = `
	t.id, t.title, t.description, t.status, t.priority, t.due_date,
	t.project_id, t.user_id, t.category_id, t.created_at, t.updated_at,
	p.name AS project_name,
	u.name AS user_name,
	c.name AS category_name, c.color AS category_color,
	(SELECT COUNT(*) FROM comments cm WHERE cm.task_id = t.id) AS comments_count
`

// TaskRepo scopes every operation to the workspace through the task's
// project, never trusting a workspace field on the payload.
type TaskRepo struct {
	db *sqlx.DB
}

func NewTaskRepo(db *sqlx.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

func (r *TaskRepo) List(ctx context.Context, workspaceID int64, filter *ListFilter) ([]*Task, error) {
	where := []string{"p.workspace_id = $1"}
	args := []interface{}{workspaceID}

	if filter != nil {
		if filter.ProjectID != nil {
			args = append(args, *filter.ProjectID)
			where = append(where, fmt.Sprintf("t.project_id = $%d", len(args)))
		}
		if filter.UserID != nil {
			args = append(args, *filter.UserID)
			where = append(where, fmt.Sprintf("t.user_id = $%d", len(args)))
		}
		if filter.Status != nil {
			args = append(args, *filter.Status)
			where = append(where, fmt.Sprintf("t.status = $%d", len(args)))
		}
		if filter.CategoryID != nil {
			args = append(args, *filter.CategoryID)
			where = append(where, fmt.Sprintf("t.category_id = $%d", len(args)))
		}
		if filter.Search != "" {
			args = append(args, "%"+filter.Search+"%")
			where = append(where, fmt.Sprintf("(t.title ILIKE $%d OR t.description ILIKE $%d)", len(args), len(args)))
		}
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		JOIN users u ON u.id = t.user_id
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE %s
		ORDER BY t.created_at DESC
	`, taskColumns, strings.Join(where, " AND "))

	rows := []*taskRow{}
	err := r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]*Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.toTask()
	}
	return tasks, nil
}

func (r *TaskRepo) GetByID(ctx context.Context, id, workspaceID int64) (*Task, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		JOIN users u ON u.id = t.user_id
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.id = $1 AND p.workspace_id = $2
	`, taskColumns)

	var row taskRow
	err := r.db.GetContext(ctx, &row, query, id, workspaceID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return row.toTask(), nil
}

// projectInWorkspace re-verifies the parent reference instead of trusting
// the payload's consistency.
func (r *TaskRepo) projectInWorkspace(ctx context.Context, projectID, workspaceID int64) error {
	var id int64
	err := r.db.GetContext(ctx, &id, `SELECT id FROM projects WHERE id = $1 AND workspace_id = $2`, projectID, workspaceID)
	if err == sql.ErrNoRows {
		return ErrProjectNotFound
	}
	return err
}

// categoryInWorkspace enforces that a task's category lives in the same
// workspace as the task's project.
func (r *TaskRepo) categoryInWorkspace(ctx context.Context, categoryID, workspaceID int64) error {
	var id int64
	err := r.db.GetContext(ctx, &id, `SELECT id FROM categories WHERE id = $1 AND workspace_id = $2`, categoryID, workspaceID)
	if err == sql.ErrNoRows {
		return ErrCategoryNotFound
	}
	return err
}

func (r *TaskRepo) Create(ctx context.Context, workspaceID int64, req *CreateTaskRequest) (*Task, error) {
	if err := r.projectInWorkspace(ctx, req.ProjectID, workspaceID); err != nil {
		return nil, err
	}
	if req.CategoryID != nil {
		if err := r.categoryInWorkspace(ctx, *req.CategoryID, workspaceID); err != nil {
			return nil, err
		}
	}

	status := req.Status
	if status == "" {
		status = StatusTodo
	}
	priority := req.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := validate.ParseDate(*req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("invalid due date: %w", err)
		}
		dueDate = &parsed
	}

	var id int64
	err := r.db.GetContext(ctx, &id, `
		INSERT INTO tasks (title, description, status, priority, due_date, project_id, user_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, req.Title, req.Description, status, priority, dueDate, req.ProjectID, req.UserID, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return r.GetByID(ctx, id, workspaceID)
}

func (r *TaskRepo) Update(ctx context.Context, id, workspaceID int64, req *UpdateTaskRequest) (*Task, error) {
	if _, err := r.GetByID(ctx, id, workspaceID); err != nil {
		return nil, err
	}

	if req.ProjectID != nil {
		if err := r.projectInWorkspace(ctx, *req.ProjectID, workspaceID); err != nil {
			return nil, err
		}
	}
	if req.CategoryID.Set && req.CategoryID.Valid {
		if err := r.categoryInWorkspace(ctx, req.CategoryID.Value, workspaceID); err != nil {
			return nil, err
		}
	}

	setParts := []string{}
	args := []interface{}{}

	if req.Title != nil {
		args = append(args, *req.Title)
		setParts = append(setParts, fmt.Sprintf("title = $%d", len(args)))
	}
	if req.Description != nil {
		args = append(args, *req.Description)
		setParts = append(setParts, fmt.Sprintf("description = $%d", len(args)))
	}
	if req.Status != nil {
		args = append(args, *req.Status)
		setParts = append(setParts, fmt.Sprintf("status = $%d", len(args)))
	}
	if req.Priority != nil {
		args = append(args, *req.Priority)
		setParts = append(setParts, fmt.Sprintf("priority = $%d", len(args)))
	}
	if req.DueDate.Set {
		if req.DueDate.Valid {
			parsed, err := validate.ParseDate(req.DueDate.Value)
			if err != nil {
				return nil, fmt.Errorf("invalid due date: %w", err)
			}
			args = append(args, parsed)
			setParts = append(setParts, fmt.Sprintf("due_date = $%d", len(args)))
		} else {
			setParts = append(setParts, "due_date = NULL")
		}
	}
	if req.ProjectID != nil {
		args = append(args, *req.ProjectID)
		setParts = append(setParts, fmt.Sprintf("project_id = $%d", len(args)))
	}
	if req.UserID != nil {
		args = append(args, *req.UserID)
		setParts = append(setParts, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if req.CategoryID.Set {
		if req.CategoryID.Valid {
			args = append(args, req.CategoryID.Value)
			setParts = append(setParts, fmt.Sprintf("category_id = $%d", len(args)))
		} else {
			setParts = append(setParts, "category_id = NULL")
		}
	}

	if len(setParts) == 0 {
		return r.GetByID(ctx, id, workspaceID)
	}

	setParts = append(setParts, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE tasks
		SET %s
		WHERE id = $%d
	`, strings.Join(setParts, ", "), len(args))

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return r.GetByID(ctx, id, workspaceID)
}

// Delete removes the task and its comments in one transaction.
func (r *TaskRepo) Delete(ctx context.Context, id, workspaceID int64) error {
	if _, err := r.GetByID(ctx, id, workspaceID); err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE task_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete task comments: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrTaskNotFound
	}

	return tx.Commit()
}
