package controllers

import (
	"errors"
	"net/http"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/curaious/tasker/internal/api/response"
	"github.com/curaious/tasker/internal/perrors"
	"github.com/curaious/tasker/internal/services"
	"github.com/curaious/tasker/internal/services/membership"
	"github.com/curaious/tasker/internal/services/user"
	"github.com/curaious/tasker/internal/services/workspace"
)

type WorkspaceController struct {
	services *services.Services
}

func RegisterWorkspaceRoutes(r *router.Router, s *services.Services) {
	c := &WorkspaceController{services: s}

	r.GET("/api/workspaces", c.List)
	r.POST("/api/workspaces", c.Create)
	r.GET("/api/workspaces/{id}", c.Get)
	r.PUT("/api/workspaces/{id}", c.Update)
	r.POST("/api/workspaces/{id}/invite", c.Invite)
	r.DELETE("/api/workspaces/{id}/members/{userId}", c.RemoveMember)
	r.DELETE("/api/workspaces/{id}", c.Delete)
}

// mapWorkspaceErr translates the membership and lookup sentinels. Non-members
// see the same 404 a nonexistent workspace produces; only a member with an
// insufficient role gets a 403.
func mapWorkspaceErr(err error) error {
	switch {
	case errors.Is(err, membership.ErrNotMember), errors.Is(err, workspace.ErrWorkspaceNotFound):
		return perrors.NewErrNotFound("Workspace not found", err)
	case errors.Is(err, membership.ErrRoleRequired):
		return perrors.NewErrForbidden("Insufficient role", err)
	default:
		return err
	}
}

func (c *WorkspaceController) List(ctx *fasthttp.RequestCtx) {
	stdCtx := requestContext(ctx)
	claims := currentUser(ctx)

	workspaces, err := c.services.Workspace.ListForUser(stdCtx, claims.UserID)
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	response.JSON(ctx, http.StatusOK, workspaces)
}

func (c *WorkspaceController) Create(ctx *fasthttp.RequestCtx) {
	stdCtx := requestContext(ctx)
	claims := currentUser(ctx)

	req := &workspace.CreateWorkspaceRequest{}
	if err := parseBody(ctx, req); err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	ws, err := c.services.Workspace.Create(stdCtx, claims.UserID, req)
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	response.JSON(ctx, http.StatusCreated, ws)
}

func (c *WorkspaceController) Get(ctx *fasthttp.RequestCtx) {
	stdCtx := requestContext(ctx)
	claims := currentUser(ctx)

	id, err := pathID(ctx, "id")
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	detail, err := c.services.Workspace.Get(stdCtx, claims.UserID, id)
	if err != nil {
		response.Error(ctx, stdCtx, mapWorkspaceErr(err))
		return
	}

	response.JSON(ctx, http.StatusOK, detail)
}

func (c *WorkspaceController) Update(ctx *fasthttp.RequestCtx) {
	stdCtx := requestContext(ctx)
	claims := currentUser(ctx)

	id, err := pathID(ctx, "id")
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	req := &workspace.UpdateWorkspaceRequest{}
	if err := parseBody(ctx, req); err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	ws, err := c.services.Workspace.Update(stdCtx, claims.UserID, id, req)
	if err != nil {
		response.Error(ctx, stdCtx, mapWorkspaceErr(err))
		return
	}

	response.JSON(ctx, http.StatusOK, ws)
}

func (c *WorkspaceController) Invite(ctx *fasthttp.RequestCtx) {
	stdCtx := requestContext(ctx)
	claims := currentUser(ctx)

	id, err := pathID(ctx, "id")
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	req := &workspace.InviteRequest{}
	if err := parseBody(ctx, req); err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	if err := c.services.Workspace.Invite(stdCtx, claims.UserID, id, req); err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound):
			response.Error(ctx, stdCtx, perrors.NewErrNotFound("User not found", err))
		case errors.Is(err, membership.ErrAlreadyMember):
			response.Error(ctx, stdCtx, perrors.NewErrConflict("User is already a member", err))
		default:
			response.Error(ctx, stdCtx, mapWorkspaceErr(err))
		}
		return
	}

	response.NoContent(ctx)
}

func (c *WorkspaceController) RemoveMember(ctx *fasthttp.RequestCtx) {
	stdCtx := requestContext(ctx)
	claims := currentUser(ctx)

	id, err := pathID(ctx, "id")
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	targetID, err := pathID(ctx, "userId")
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	if err := c.services.Workspace.RemoveMember(stdCtx, claims.UserID, id, targetID); err != nil {
		switch {
		case errors.Is(err, workspace.ErrMemberNotFound):
			response.Error(ctx, stdCtx, perrors.NewErrNotFound("Member not found", err))
		case errors.Is(err, membership.ErrLastOwner):
			response.Error(ctx, stdCtx, perrors.NewErrConflict("Workspace must keep at least one owner", err))
		default:
			response.Error(ctx, stdCtx, mapWorkspaceErr(err))
		}
		return
	}

	response.NoContent(ctx)
}

func (c *WorkspaceController) Delete(ctx *fasthttp.RequestCtx) {
	stdCtx := requestContext(ctx)
	claims := currentUser(ctx)

	id, err := pathID(ctx, "id")
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	if err := c.services.Workspace.Delete(stdCtx, claims.UserID, id); err != nil {
		response.Error(ctx, stdCtx, mapWorkspaceErr(err))
		return
	}

	response.NoContent(ctx)
}
