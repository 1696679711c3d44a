package category

import (
	"time"

	"github.com/curaious/tasker/internal/validate"
)

type Category struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Color       string    `db:"color" json:"color"`
	WorkspaceID int64     `db:"workspace_id" json:"workspaceId"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
	TasksCount  int       `db:"tasks_count" json:"tasksCount"`
}

type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (r *CreateCategoryRequest) Validate() error {
	v := &validate.Validator{}
	v.Require("name", r.Name)
	v.MaxLen("name", r.Name, 50)
	if r.Color != "" {
		v.HexColor("color", r.Color)
	}
	return v.Err()
}

type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

func (r *UpdateCategoryRequest) Validate() error {
	v := &validate.Validator{}
	if r.Name != nil {
		v.Require("name", *r.Name)
		v.MaxLen("name", *r.Name, 50)
	}
	if r.Color != nil {
		v.HexColor("color", *r.Color)
	}
	return v.Err()
}
