package membership

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrNotMember     = errors.New("not a member of workspace")
	ErrAlreadyMember = errors.New("user is already a member")
	ErrLastOwner     = errors.New("workspace must keep at least one owner")
)

// MembershipRepo is the source of truth for authorization decisions.
type MembershipRepo struct {
	db *sqlx.DB
}

func NewMembershipRepo(db *sqlx.DB) *MembershipRepo {
	return &MembershipRepo{db: db}
}

// GetRole looks up the caller's role by the unique (user, workspace) pair.
func (r *MembershipRepo) GetRole(ctx context.Context, userID, workspaceID int64) (Role, error) {
	query := `
		SELECT role
		FROM workspace_members
		WHERE user_id = $1 AND workspace_id = $2
	`
	var role Role
	err := r.db.GetContext(ctx, &role, query, userID, workspaceID)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", ErrNotMember
		}
		return "", fmt.Errorf("failed to get role: %w", err)
	}
	return role, nil
}

// ListForUser returns the user's workspaces with role and counts, oldest
// membership first.
func (r *MembershipRepo) ListForUser(ctx context.Context, userID int64) ([]*UserWorkspace, error) {
	query := `
		SELECT w.id, w.name, w.description, m.role, w.created_at,
			(SELECT COUNT(*) FROM projects p WHERE p.workspace_id = w.id) AS projects_count,
			(SELECT COUNT(*) FROM workspace_members wm WHERE wm.workspace_id = w.id) AS members_count
		FROM workspace_members m
		JOIN workspaces w ON w.id = m.workspace_id
		WHERE m.user_id = $1
		ORDER BY m.created_at ASC
	`
	workspaces := []*UserWorkspace{}
	err := r.db.SelectContext(ctx, &workspaces, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	return workspaces, nil
}

// ListMembers returns every member of a workspace. No pagination.
func (r *MembershipRepo) ListMembers(ctx context.Context, workspaceID int64) ([]*Member, error) {
	query := `
		SELECT u.id, u.name, u.email, m.role
		FROM workspace_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.workspace_id = $1
		ORDER BY m.created_at ASC
	`
	members := []*Member{}
	err := r.db.SelectContext(ctx, &members, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// Create inserts a membership. Invite always creates, never promotes.
func (r *MembershipRepo) Create(ctx context.Context, userID, workspaceID int64, role Role) error {
	query := `
		INSERT INTO workspace_members (user_id, workspace_id, role)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.ExecContext(ctx, query, userID, workspaceID, role)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrAlreadyMember
		}
		return fmt.Errorf("failed to create membership: %w", err)
	}
	return nil
}

// Delete removes a membership row. The caller decides whether the removal
// is allowed; this only reports whether the row existed.
func (r *MembershipRepo) Delete(ctx context.Context, userID, workspaceID int64) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM workspace_members
		WHERE user_id = $1 AND workspace_id = $2
	`, userID, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotMember
	}
	return nil
}

// CountOwners is used to enforce the last-owner floor.
func (r *MembershipRepo) CountOwners(ctx context.Context, workspaceID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM workspace_members
		WHERE workspace_id = $1 AND role = $2
	`
	var count int
	err := r.db.GetContext(ctx, &count, query, workspaceID, RoleOwner)
	if err != nil {
		return 0, fmt.Errorf("failed to count owners: %w", err)
	}
	return count, nil
}
