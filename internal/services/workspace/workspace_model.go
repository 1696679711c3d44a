package workspace

import (
	"time"

	"github.com/curaious/tasker/internal/services/membership"
	"github.com/curaious/tasker/internal/validate"
)

type Workspace struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// WorkspaceDetail is the single-workspace view with the member list.
type WorkspaceDetail struct {
	Workspace
	Role          membership.Role      `json:"role"`
	Members       []*membership.Member `json:"members"`
	ProjectsCount int                  `db:"projects_count" json:"projectsCount"`
}

type CreateWorkspaceRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (r *CreateWorkspaceRequest) Validate() error {
	v := &validate.Validator{}
	v.Require("name", r.Name)
	v.MaxLen("name", r.Name, 100)
	if r.Description != nil {
		v.MaxLen("description", *r.Description, 500)
	}
	return v.Err()
}

type UpdateWorkspaceRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (r *UpdateWorkspaceRequest) Validate() error {
	v := &validate.Validator{}
	if r.Name != nil {
		v.Require("name", *r.Name)
		v.MaxLen("name", *r.Name, 100)
	}
	if r.Description != nil {
		v.MaxLen("description", *r.Description, 500)
	}
	return v.Err()
}

type InviteRequest struct {
	Email string          `json:"email"`
	Role  membership.Role `json:"role"`
}

func (r *InviteRequest) Validate() error {
	v := &validate.Validator{}
	v.Require("email", r.Email)
	if r.Email != "" {
		v.Email("email", r.Email)
	}
	// OWNER is assigned at creation only, never by invitation.
	if r.Role != "" {
		v.Enum("role", string(r.Role), string(membership.RoleAdmin), string(membership.RoleMember))
	}
	return v.Err()
}
