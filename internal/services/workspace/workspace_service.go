package workspace

import (
	"context"
	"errors"
	"fmt"

	"github.com/curaious/tasker/internal/services/membership"
	"github.com/curaious/tasker/internal/services/user"
)

// ErrMemberNotFound distinguishes "the target user is not a member" from the
// caller's own missing membership, which maps to a workspace 404 instead.
var ErrMemberNotFound = errors.New("member not found")

// WorkspaceService enforces the workspace role gates: any member may read,
// OWNER/ADMIN may update metadata and invite, only OWNER may delete.
type WorkspaceService struct {
	repo    *WorkspaceRepo
	members *membership.MembershipRepo
	users   *user.UserRepo
	guard   *membership.Guard
}

func NewWorkspaceService(repo *WorkspaceRepo, members *membership.MembershipRepo, users *user.UserRepo, guard *membership.Guard) *WorkspaceService {
	return &WorkspaceService{repo: repo, members: members, users: users, guard: guard}
}

// ListForUser returns the caller's workspaces, oldest membership first.
func (s *WorkspaceService) ListForUser(ctx context.Context, userID int64) ([]*membership.UserWorkspace, error) {
	return s.members.ListForUser(ctx, userID)
}

// Create returns the same enriched shape as the workspace list, so clients
// can append the new entry without refetching.
func (s *WorkspaceService) Create(ctx context.Context, userID int64, req *CreateWorkspaceRequest) (*membership.UserWorkspace, error) {
	ws, err := s.repo.Create(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	return ownedWorkspace(ws), nil
}

// ownedWorkspace is the creation response: the creator is the sole OWNER of
// a workspace with no projects yet.
func ownedWorkspace(ws *Workspace) *membership.UserWorkspace {
	return &membership.UserWorkspace{
		ID:            ws.ID,
		Name:          ws.Name,
		Description:   ws.Description,
		Role:          membership.RoleOwner,
		ProjectsCount: 0,
		MembersCount:  1,
		CreatedAt:     ws.CreatedAt,
	}
}

// Get returns workspace details with the member list. Non-members get
// membership.ErrNotMember regardless of whether the workspace exists.
func (s *WorkspaceService) Get(ctx context.Context, userID, workspaceID int64) (*WorkspaceDetail, error) {
	role, err := s.guard.RequireMember(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}

	workspace, err := s.repo.GetByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	members, err := s.members.ListMembers(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	projectsCount, err := s.repo.CountProjects(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	return &WorkspaceDetail{
		Workspace:     *workspace,
		Role:          role,
		Members:       members,
		ProjectsCount: projectsCount,
	}, nil
}

func (s *WorkspaceService) Update(ctx context.Context, userID, workspaceID int64, req *UpdateWorkspaceRequest) (*Workspace, error) {
	if _, err := s.guard.RequireRole(ctx, userID, workspaceID, membership.RoleAdmin); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, workspaceID, req)
}

// Invite adds an existing user as a member. It never promotes: re-inviting
// an existing member fails with membership.ErrAlreadyMember.
func (s *WorkspaceService) Invite(ctx context.Context, userID, workspaceID int64, req *InviteRequest) error {
	if _, err := s.guard.RequireRole(ctx, userID, workspaceID, membership.RoleAdmin); err != nil {
		return err
	}

	invitee, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	role := req.Role
	if role == "" {
		role = membership.RoleMember
	}
	if role == membership.RoleOwner {
		return fmt.Errorf("cannot invite as owner")
	}

	return s.members.Create(ctx, invitee.ID, workspaceID, role)
}

// RemoveMember removes a member from the workspace. Members may remove
// themselves (leave); removing anyone else needs ADMIN, and removing an
// OWNER needs OWNER. The last owner can never be removed, so a workspace is
// deleted rather than orphaned.
func (s *WorkspaceService) RemoveMember(ctx context.Context, callerID, workspaceID, targetID int64) error {
	callerRole, err := s.guard.RequireMember(ctx, callerID, workspaceID)
	if err != nil {
		return err
	}

	targetRole, err := s.members.GetRole(ctx, targetID, workspaceID)
	if err != nil {
		if errors.Is(err, membership.ErrNotMember) {
			return ErrMemberNotFound
		}
		return err
	}

	owners := 0
	if targetRole == membership.RoleOwner {
		if owners, err = s.members.CountOwners(ctx, workspaceID); err != nil {
			return err
		}
	}

	if err := checkRemoval(callerRole, targetRole, callerID == targetID, owners); err != nil {
		return err
	}

	return s.members.Delete(ctx, targetID, workspaceID)
}

// checkRemoval is the pure removal rule: self-leave is open to every member,
// removing someone else needs ADMIN, removing an OWNER needs OWNER, and the
// last OWNER cannot be removed at all.
func checkRemoval(callerRole, targetRole membership.Role, self bool, owners int) error {
	if !self && !callerRole.AtLeast(membership.RoleAdmin) {
		return membership.ErrRoleRequired
	}

	if targetRole == membership.RoleOwner {
		if !self && !callerRole.AtLeast(membership.RoleOwner) {
			return membership.ErrRoleRequired
		}
		if owners <= 1 {
			return membership.ErrLastOwner
		}
	}

	return nil
}

func (s *WorkspaceService) Delete(ctx context.Context, userID, workspaceID int64) error {
	if _, err := s.guard.RequireRole(ctx, userID, workspaceID, membership.RoleOwner); err != nil {
		return err
	}

	return s.repo.Delete(ctx, workspaceID)
}
