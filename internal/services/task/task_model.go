package task

import (
	"time"

	"github.com/curaious/tasker/internal/optional"
	"github.com/curaious/tasker/internal/validate"
)

type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

type ProjectRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type UserRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CategoryRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type Task struct {
	ID            int64        `json:"id"`
	Title         string       `json:"title"`
	Description   *string      `json:"description"`
	Status        Status       `json:"status"`
	Priority      Priority     `json:"priority"`
	DueDate       *time.Time   `json:"dueDate"`
	ProjectID     int64        `json:"projectId"`
	UserID        int64        `json:"userId"`
	CategoryID    *int64       `json:"categoryId"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
	Project       ProjectRef   `json:"project"`
	User          UserRef      `json:"user"`
	Category      *CategoryRef `json:"category"`
	CommentsCount int          `json:"commentsCount"`
}

// ListFilter narrows the workspace-scoped task list. All predicates are
// AND'd with the workspace predicate, never substituted for it.
type ListFilter struct {
	ProjectID  *int64
	UserID     *int64
	Status     *Status
	CategoryID *int64
	Search     string
}

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      Status  `json:"status"`
	Priority    Priority `json:"priority"`
	DueDate     *string `json:"dueDate"`
	ProjectID   int64   `json:"projectId"`
	UserID      int64   `json:"userId"`
	CategoryID  *int64  `json:"categoryId"`
}

func (r *CreateTaskRequest) Validate() error {
	v := &validate.Validator{}
	v.Require("title", r.Title)
	v.MaxLen("title", r.Title, 200)
	if r.Description != nil {
		v.MaxLen("description", *r.Description, 1000)
	}
	if r.Status != "" {
		v.Enum("status", string(r.Status), string(StatusTodo), string(StatusInProgress), string(StatusDone))
	}
	if r.Priority != "" {
		v.Enum("priority", string(r.Priority), string(PriorityLow), string(PriorityMedium), string(PriorityHigh))
	}
	if r.DueDate != nil {
		v.Date("dueDate", *r.DueDate)
	}
	v.PositiveID("projectId", r.ProjectID)
	v.PositiveID("userId", r.UserID)
	if r.CategoryID != nil {
		v.PositiveID("categoryId", *r.CategoryID)
	}
	return v.Err()
}

// UpdateTaskRequest is a partial patch. Absent fields are left unchanged;
// dueDate and categoryId are tri-state so an explicit null clears them.
type UpdateTaskRequest struct {
	Title       *string                   `json:"title"`
	Description *string                   `json:"description"`
	Status      *Status                   `json:"status"`
	Priority    *Priority                 `json:"priority"`
	DueDate     optional.Optional[string] `json:"dueDate"`
	ProjectID   *int64                    `json:"projectId"`
	UserID      *int64                    `json:"userId"`
	CategoryID  optional.Optional[int64]  `json:"categoryId"`
}

func (r *UpdateTaskRequest) Validate() error {
	v := &validate.Validator{}
	if r.Title != nil {
		v.Require("title", *r.Title)
		v.MaxLen("title", *r.Title, 200)
	}
	if r.Description != nil {
		v.MaxLen("description", *r.Description, 1000)
	}
	if r.Status != nil {
		v.Enum("status", string(*r.Status), string(StatusTodo), string(StatusInProgress), string(StatusDone))
	}
	if r.Priority != nil {
		v.Enum("priority", string(*r.Priority), string(PriorityLow), string(PriorityMedium), string(PriorityHigh))
	}
	if r.DueDate.Set && r.DueDate.Valid {
		v.Date("dueDate", r.DueDate.Value)
	}
	if r.ProjectID != nil {
		v.PositiveID("projectId", *r.ProjectID)
	}
	if r.UserID != nil {
		v.PositiveID("userId", *r.UserID)
	}
	if r.CategoryID.Set && r.CategoryID.Valid {
		v.PositiveID("categoryId", r.CategoryID.Value)
	}
	return v.Err()
}
