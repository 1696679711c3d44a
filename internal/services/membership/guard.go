package membership

import (
	"context"
	"errors"
)

// ErrRoleRequired means the caller is a member but below the required tier.
// Unlike ErrNotMember it is safe to surface as 403: the caller already knows
// the workspace exists.
var ErrRoleRequired = errors.New("insufficient role")

// RoleLookup is the slice of the membership store the guard needs.
type RoleLookup interface {
	GetRole(ctx context.Context, userID, workspaceID int64) (Role, error)
}

// Guard derives the caller's role for a target workspace and enforces
// minimum-role requirements. The role is re-derived from the store on every
// request rather than cached in the token, so removals and demotions take
// effect immediately.
type Guard struct {
	roles RoleLookup
}

func NewGuard(roles RoleLookup) *Guard {
	return &Guard{roles: roles}
}

// RequireMember returns the caller's role, or ErrNotMember when there is no
// membership row. ErrNotMember maps to 404 so a non-member cannot tell
// whether the workspace exists at all.
func (g *Guard) RequireMember(ctx context.Context, userID, workspaceID int64) (Role, error) {
	return g.roles.GetRole(ctx, userID, workspaceID)
}

// RequireRole additionally checks the caller's tier against min. Membership
// is always checked first, so non-members get ErrNotMember, never
// ErrRoleRequired.
func (g *Guard) RequireRole(ctx context.Context, userID, workspaceID int64, min Role) (Role, error) {
	role, err := g.roles.GetRole(ctx, userID, workspaceID)
	if err != nil {
		return "", err
	}

	if !role.AtLeast(min) {
		return role, ErrRoleRequired
	}

	return role, nil
}
