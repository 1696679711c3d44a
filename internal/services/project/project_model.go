package project

import (
	"time"

	"github.com/curaious/tasker/internal/validate"
)

// UserRef is the owner summary embedded in project payloads.
type UserRef struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Project struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description"`
	WorkspaceID int64     `db:"workspace_id" json:"workspaceId"`
	UserID      int64     `db:"user_id" json:"userId"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
	User        UserRef   `db:"user" json:"user"`
	TasksCount  int       `db:"tasks_count" json:"tasksCount"`
}

type CreateProjectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	UserID      int64   `json:"userId"`
}

func (r *CreateProjectRequest) Validate() error {
	v := &validate.Validator{}
	v.Require("name", r.Name)
	v.MaxLen("name", r.Name, 100)
	if r.Description != nil {
		v.MaxLen("description", *r.Description, 500)
	}
	v.PositiveID("userId", r.UserID)
	return v.Err()
}

type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	UserID      *int64  `json:"userId"`
}

func (r *UpdateProjectRequest) Validate() error {
	v := &validate.Validator{}
	if r.Name != nil {
		v.Require("name", *r.Name)
		v.MaxLen("name", *r.Name, 100)
	}
	if r.Description != nil {
		v.MaxLen("description", *r.Description, 500)
	}
	if r.UserID != nil {
		v.PositiveID("userId", *r.UserID)
	}
	return v.Err()
}
