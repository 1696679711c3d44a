package comment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrTaskNotFound    = errors.New("task not found")
)

type commentRow struct {
	ID        int64     `db:"id"`
	Content   string    `db:"content"`
	TaskID    int64     `db:"task_id"`
	UserID    int64     `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	UserName  string    `db:"user_name"`
	TaskTitle string    `db:"task_title"`
}

func (row *commentRow) toComment() *Comment {
	return &Comment{
		ID:        row.ID,
		Content:   row.Content,
		TaskID:    row.TaskID,
		UserID:    row.UserID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		User:      UserRef{ID: row.UserID, Name: row.UserName},
		Task:      TaskRef{ID: row.TaskID, Title: row.TaskTitle},
	}
}

const commentColumns = `
	cm.id, cm.content, cm.task_id, cm.user_id, cm.created_at, cm.updated_at,
	u.name AS user_name,
	t.title AS task_title
`

// CommentRepo reaches its workspace through the full ownership chain:
// comment → task → project → workspace.
type CommentRepo struct {
	db *sqlx.DB
}

func NewCommentRepo(db *sqlx.DB) *CommentRepo {
	return &CommentRepo{db: db}
}

func (r *CommentRepo) List(ctx context.Context, workspaceID int64, taskID *int64) ([]*Comment, error) {
	where := "p.workspace_id = $1"
	args := []interface{}{workspaceID}
	if taskID != nil {
		args = append(args, *taskID)
		where += fmt.Sprintf(" AND cm.task_id = $%d", len(args))
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM comments cm
		JOIN tasks t ON t.id = cm.task_id
		JOIN projects p ON p.id = t.project_id
		JOIN users u ON u.id = cm.user_id
		WHERE %s
		ORDER BY cm.created_at DESC
	`, commentColumns, where)

	rows := []*commentRow{}
	err := r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*Comment, len(rows))
	for i, row := range rows {
		comments[i] = row.toComment()
	}
	return comments, nil
}

func (r *CommentRepo) GetByID(ctx context.Context, id, workspaceID int64) (*Comment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM comments cm
		JOIN tasks t ON t.id = cm.task_id
		JOIN projects p ON p.id = t.project_id
		JOIN users u ON u.id = cm.user_id
		WHERE cm.id = $1 AND p.workspace_id = $2
	`, commentColumns)

	var row commentRow
	err := r.db.GetContext(ctx, &row, query, id, workspaceID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return row.toComment(), nil
}

func (r *CommentRepo) Create(ctx context.Context, workspaceID int64, req *CreateCommentRequest) (*Comment, error) {
	// The target task must resolve under the workspace via its project.
	var taskID int64
	err := r.db.GetContext(ctx, &taskID, `
		SELECT t.id
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		WHERE t.id = $1 AND p.workspace_id = $2
	`, req.TaskID, workspaceID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to verify task: %w", err)
	}

	var id int64
	err = r.db.GetContext(ctx, &id, `
		INSERT INTO comments (content, task_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, req.Content, req.TaskID, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return r.GetByID(ctx, id, workspaceID)
}

func (r *CommentRepo) Update(ctx context.Context, id, workspaceID int64, req *UpdateCommentRequest) (*Comment, error) {
	if _, err := r.GetByID(ctx, id, workspaceID); err != nil {
		return nil, err
	}

	_, err := r.db.ExecContext(ctx, `
		UPDATE comments
		SET content = $1, updated_at = NOW()
		WHERE id = $2
	`, req.Content, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return r.GetByID(ctx, id, workspaceID)
}

func (r *CommentRepo) Delete(ctx context.Context, id, workspaceID int64) error {
	if _, err := r.GetByID(ctx, id, workspaceID); err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrCommentNotFound
	}

	return nil
}
