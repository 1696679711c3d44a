package membership

import "time"

// Role is the privilege tier a user holds within one workspace. Roles are
// ordered: MEMBER < ADMIN < OWNER.
type Role string

const (
	RoleMember Role = "MEMBER"
	RoleAdmin  Role = "ADMIN"
	RoleOwner  Role = "OWNER"
)

func (r Role) rank() int {
	switch r {
	case RoleOwner:
		return 3
	case RoleAdmin:
		return 2
	case RoleMember:
		return 1
	}
	return 0
}

// AtLeast reports whether r grants at least the privileges of min.
func (r Role) AtLeast(min Role) bool {
	return r.rank() >= min.rank()
}

// Valid reports whether r is one of the known tiers.
func (r Role) Valid() bool {
	return r.rank() > 0
}

// Membership is a (user, workspace) pair with its role. The pair is
// immutable once created; only the role could ever change.
type Membership struct {
	ID          int64     `db:"id" json:"id"`
	UserID      int64     `db:"user_id" json:"userId"`
	WorkspaceID int64     `db:"workspace_id" json:"workspaceId"`
	Role        Role      `db:"role" json:"role"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// Member is a workspace member as shown in the member-management view.
type Member struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
	Role  Role   `db:"role" json:"role"`
}

// UserWorkspace is one entry of a user's workspace list, ordered by
// membership age so the oldest workspace becomes the default on login.
type UserWorkspace struct {
	ID            int64     `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Description   *string   `db:"description" json:"description"`
	Role          Role      `db:"role" json:"role"`
	ProjectsCount int       `db:"projects_count" json:"projectsCount"`
	MembersCount  int       `db:"members_count" json:"membersCount"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}
