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
)

type AuthController struct {
	services *services.Services
}

func RegisterAuthRoutes(r *router.Router, s *services.Services) {
	c := &AuthController{services: s}

	r.POST("/api/auth/register", c.Register)
	r.POST("/api/auth/login", c.Login)
	r.GET("/api/auth/me", c.Me)
}

type authResponse struct {
	User       *user.User                  `json:"user"`
	Token      string                      `json:"token"`
	Workspace  *user.WorkspaceRef          `json:"workspace,omitempty"`
	Workspaces []*membership.UserWorkspace `json:"workspaces,omitempty"`
}

// Register creates the account plus its seeded personal workspace, and logs
// the new user straight in.
func (c *AuthController) Register(ctx *fasthttp.RequestCtx) {
	stdCtx := requestContext(ctx)

	req := &user.RegisterRequest{}
	if err := parseBody(ctx, req); err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	u, workspace, err := c.services.User.Register(stdCtx, req)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			response.Error(ctx, stdCtx, perrors.NewErrConflict("Email already registered", err))
			return
		}
		response.Error(ctx, stdCtx, err)
		return
	}

	token, err := c.services.Auth.GenerateToken(u.ID, u.Email, u.Name)
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	response.JSON(ctx, http.StatusCreated, authResponse{User: u, Token: token, Workspace: workspace})
}

func (c *AuthController) Login(ctx *fasthttp.RequestCtx) {
	stdCtx := requestContext(ctx)

	req := &user.LoginRequest{}
	if err := parseBody(ctx, req); err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	u, err := c.services.User.Authenticate(stdCtx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			response.Error(ctx, stdCtx, perrors.NewErrUnauthorized("Invalid email or password", err))
			return
		}
		response.Error(ctx, stdCtx, err)
		return
	}

	token, err := c.services.Auth.GenerateToken(u.ID, u.Email, u.Name)
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	workspaces, err := c.services.Workspace.ListForUser(stdCtx, u.ID)
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	response.JSON(ctx, http.StatusOK, authResponse{User: u, Token: token, Workspaces: workspaces})
}

// Me returns the authenticated user's profile and workspace list.
func (c *AuthController) Me(ctx *fasthttp.RequestCtx) {
	stdCtx := requestContext(ctx)
	claims := currentUser(ctx)

	u, err := c.services.User.GetByID(stdCtx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.Error(ctx, stdCtx, perrors.NewErrUnauthorized("Invalid or expired token", err))
			return
		}
		response.Error(ctx, stdCtx, err)
		return
	}

	workspaces, err := c.services.Workspace.ListForUser(stdCtx, u.ID)
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	response.JSON(ctx, http.StatusOK, authResponse{User: u, Workspaces: workspaces})
}
