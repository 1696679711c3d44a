package comment

import (
	"time"

	"github.com/curaious/tasker/internal/validate"
)

type UserRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type TaskRef struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type Comment struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	TaskID    int64     `json:"taskId"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	User      UserRef   `json:"user"`
	Task      TaskRef   `json:"task"`
}

type CreateCommentRequest struct {
	Content string `json:"content"`
	TaskID  int64  `json:"taskId"`
	UserID  int64  `json:"userId"`
}

func (r *CreateCommentRequest) Validate() error {
	v := &validate.Validator{}
	v.Require("content", r.Content)
	v.MaxLen("content", r.Content, 1000)
	v.PositiveID("taskId", r.TaskID)
	v.PositiveID("userId", r.UserID)
	return v.Err()
}

type UpdateCommentRequest struct {
	Content string `json:"content"`
}

func (r *UpdateCommentRequest) Validate() error {
	v := &validate.Validator{}
	v.Require("content", r.Content)
	v.MaxLen("content", r.Content, 1000)
	return v.Err()
}
