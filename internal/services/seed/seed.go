// Package seed populates a freshly created workspace with demonstration
// content. It always runs inside the caller's transaction so a failure
// partway never leaves a half-seeded workspace behind.
package seed

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type CategoryFixture struct {
	Name  string
	Color string
}

type TaskFixture struct {
	Title       string
	Description string
	Status      string
	Priority    string
	// Index into Categories.
	Category int
}

var Categories = []CategoryFixture{
	{Name: "Bug", Color: "#ef4444"},
	{Name: "Feature", Color: "#22c55e"},
	{Name: "Documentation", Color: "#3b82f6"},
	{Name: "Improvement", Color: "#f59e0b"},
}

const (
	ProjectName        = "Demo Project"
	ProjectDescription = "This is a demo project to get you started!"

	WelcomeTaskTitle = "Welcome to Task Manager!"
	WelcomeComment   = "Welcome! Feel free to edit or delete this task. Happy task managing! 🎉"
)

var Tasks = []TaskFixture{
	{
		Title:       WelcomeTaskTitle,
		Description: "This is your first task. Click on it to see details and add comments.",
		Status:      "TODO",
		Priority:    "MEDIUM",
		Category:    1,
	},
	{
		Title:       "Explore the Dashboard",
		Description: "Check out the Dashboard tab to see statistics and overview of your tasks.",
		Status:      "TODO",
		Priority:    "LOW",
		Category:    2,
	},
	{
		Title:       "Create your first project",
		Description: "Go to Projects tab and create a new project for your team.",
		Status:      "IN_PROGRESS",
		Priority:    "HIGH",
		Category:    1,
	},
	{
		Title:       "Invite team members",
		Description: "Click on workspace selector and use \"Manage Members\" to invite your colleagues.",
		Status:      "TODO",
		Priority:    "MEDIUM",
		Category:    3,
	},
	{
		Title:       "Fix sample bug",
		Description: "This is an example bug task to show how bugs can be tracked.",
		Status:      "DONE",
		Priority:    "HIGH",
		Category:    0,
	},
}

// Apply creates the demo categories, project, tasks and welcome comment for
// a new workspace owned by userID.
func Apply(ctx context.Context, tx *sqlx.Tx, workspaceID, userID int64) error {
	categoryIDs := make([]int64, len(Categories))
	for i, c := range Categories {
		err := tx.GetContext(ctx, &categoryIDs[i], `
			INSERT INTO categories (name, color, workspace_id)
			VALUES ($1, $2, $3)
			RETURNING id
		`, c.Name, c.Color, workspaceID)
		if err != nil {
			return fmt.Errorf("failed to seed category %q: %w", c.Name, err)
		}
	}

	var projectID int64
	err := tx.GetContext(ctx, &projectID, `
		INSERT INTO projects (name, description, workspace_id, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, ProjectName, ProjectDescription, workspaceID, userID)
	if err != nil {
		return fmt.Errorf("failed to seed project: %w", err)
	}

	for _, t := range Tasks {
		var taskID int64
		err := tx.GetContext(ctx, &taskID, `
			INSERT INTO tasks (title, description, status, priority, project_id, user_id, category_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`, t.Title, t.Description, t.Status, t.Priority, projectID, userID, categoryIDs[t.Category])
		if err != nil {
			return fmt.Errorf("failed to seed task %q: %w", t.Title, err)
		}

		if t.Title == WelcomeTaskTitle {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO comments (content, task_id, user_id)
				VALUES ($1, $2, $3)
			`, WelcomeComment, taskID, userID)
			if err != nil {
				return fmt.Errorf("failed to seed welcome comment: %w", err)
			}
		}
	}

	return nil
}
