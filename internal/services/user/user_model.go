package user

import (
	"time"

	"github.com/curaious/tasker/internal/validate"
)

type User struct {
	ID           int64     `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Name         string    `db:"name" json:"name"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// UserDetail is the directory view of a user with activity counts.
type UserDetail struct {
	User
	TasksCount    int `db:"tasks_count" json:"tasksCount"`
	CommentsCount int `db:"comments_count" json:"commentsCount"`
	ProjectsCount int `db:"projects_count" json:"projectsCount"`
}

// WorkspaceRef is the default workspace created at registration.
type WorkspaceRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (r *RegisterRequest) Validate() error {
	v := &validate.Validator{}
	v.Require("email", r.Email)
	if r.Email != "" {
		v.Email("email", r.Email)
	}
	v.MinLen("password", r.Password, 6)
	// bcrypt rejects inputs beyond 72 bytes.
	v.MaxLen("password", r.Password, 72)
	v.Require("name", r.Name)
	v.MaxLen("name", r.Name, 100)
	return v.Err()
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	v := &validate.Validator{}
	v.Require("email", r.Email)
	if r.Email != "" {
		v.Email("email", r.Email)
	}
	v.Require("password", r.Password)
	return v.Err()
}
