package controllers

import (
	"errors"
	"net/http"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/curaious/tasker/internal/api/response"
	"github.com/curaious/tasker/internal/perrors"
	"github.com/curaious/tasker/internal/services"
	"github.com/curaious/tasker/internal/services/project"
)

type ProjectController struct {
	services *services.Services
}

func RegisterProjectRoutes(r *router.Router, s *services.Services) {
	c := &ProjectController{services: s}

	r.GET("/api/projects", c.List)
	r.POST("/api/projects", c.Create)
	r.GET("/api/projects/{id}", c.Get)
	r.PUT("/api/projects/{id}", c.Update)
	r.DELETE("/api/projects/{id}", c.Delete)
}

func (c *ProjectController) List(ctx *fasthttp.RequestCtx) {
	stdCtx := requestContext(ctx)

	_, workspaceID, err := scope(stdCtx, ctx, c.services)
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	projects, err := c.services.Project.List(stdCtx, workspaceID)
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	response.JSON(ctx, http.StatusOK, projects)
}

func (c *ProjectController) Get(ctx *fasthttp.RequestCtx) {
	stdCtx := requestContext(ctx)

	_, workspaceID, err := scope(stdCtx, ctx, c.services)
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	id, err := pathID(ctx, "id")
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	p, err := c.services.Project.GetByID(stdCtx, id, workspaceID)
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			response.Error(ctx, stdCtx, perrors.NewErrNotFound("Project not found", err))
			return
		}
		response.Error(ctx, stdCtx, err)
		return
	}

	response.JSON(ctx, http.StatusOK, p)
}

func (c *ProjectController) Create(ctx *fasthttp.RequestCtx) {
	stdCtx := requestContext(ctx)

	userID, workspaceID, err := scope(stdCtx, ctx, c.services)
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	req := &project.CreateProjectRequest{}
	if err := parseBody(ctx, req); err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}
	if req.UserID == 0 {
		req.UserID = userID
	}
	if err := req.Validate(); err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	p, err := c.services.Project.Create(stdCtx, workspaceID, req)
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	response.JSON(ctx, http.StatusCreated, p)
}

func (c *ProjectController) Update(ctx *fasthttp.RequestCtx) {
	stdCtx := requestContext(ctx)

	_, workspaceID, err := scope(stdCtx, ctx, c.services)
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	id, err := pathID(ctx, "id")
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	req := &project.UpdateProjectRequest{}
	if err := parseBody(ctx, req); err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	p, err := c.services.Project.Update(stdCtx, id, workspaceID, req)
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			response.Error(ctx, stdCtx, perrors.NewErrNotFound("Project not found", err))
			return
		}
		response.Error(ctx, stdCtx, err)
		return
	}

	response.JSON(ctx, http.StatusOK, p)
}

func (c *ProjectController) Delete(ctx *fasthttp.RequestCtx) {
	stdCtx := requestContext(ctx)

	_, workspaceID, err := scope(stdCtx, ctx, c.services)
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	id, err := pathID(ctx, "id")
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	if err := c.services.Project.Delete(stdCtx, id, workspaceID); err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			response.Error(ctx, stdCtx, perrors.NewErrNotFound("Project not found", err))
			return
		}
		response.Error(ctx, stdCtx, err)
		return
	}

	response.NoContent(ctx)
}
