package controllers

import (
	"errors"
	"net/http"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/curaious/tasker/internal/api/response"
	"github.com/curaious/tasker/internal/perrors"
	"github.com/curaious/tasker/internal/services"
	"github.com/curaious/tasker/internal/services/task"
	"github.com/curaious/tasker/internal/validate"
)

type TaskController struct {
	services *services.Services
}

func RegisterTaskRoutes(r *router.Router, s *services.Services) {
	c := &TaskController{services: s}

	r.GET("/api/tasks", c.List)
	r.POST("/api/tasks", c.Create)
	r.GET("/api/tasks/{id}", c.Get)
	r.PUT("/api/tasks/{id}", c.Update)
	r.DELETE("/api/tasks/{id}", c.Delete)
}

// mapTaskErr translates referenced-entity lookups. A projectId or categoryId
// pointing outside the workspace reads the same as one that does not exist.
func mapTaskErr(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return perrors.NewErrNotFound("Task not found", err)
	case errors.Is(err, task.ErrProjectNotFound):
		return perrors.NewErrNotFound("Project not found", err)
	case errors.Is(err, task.ErrCategoryNotFound):
		return perrors.NewErrNotFound("Category not found", err)
	default:
		return err
	}
}

func parseListFilter(ctx *fasthttp.RequestCtx) (*task.ListFilter, error) {
	filter := &task.ListFilter{Search: queryString(ctx, "search")}

	var err error
	if filter.ProjectID, err = queryID(ctx, "projectId"); err != nil {
		return nil, err
	}
	if filter.UserID, err = queryID(ctx, "userId"); err != nil {
		return nil, err
	}
	if filter.CategoryID, err = queryID(ctx, "categoryId"); err != nil {
		return nil, err
	}

	if raw := queryString(ctx, "status"); raw != "" {
		v := &validate.Validator{}
		v.Enum("status", raw, string(task.StatusTodo), string(task.StatusInProgress), string(task.StatusDone))
		if err := v.Err(); err != nil {
			return nil, err
		}
		status := task.Status(raw)
		filter.Status = &status
	}

	return filter, nil
}

func (c *TaskController) List(ctx *fasthttp.RequestCtx) {
	stdCtx := requestContext(ctx)

	_, workspaceID, err := scope(stdCtx, ctx, c.services)
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	filter, err := parseListFilter(ctx)
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	tasks, err := c.services.Task.List(stdCtx, workspaceID, filter)
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	response.JSON(ctx, http.StatusOK, tasks)
}

func (c *TaskController) Get(ctx *fasthttp.RequestCtx) {
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

	t, err := c.services.Task.GetByID(stdCtx, id, workspaceID)
	if err != nil {
		response.Error(ctx, stdCtx, mapTaskErr(err))
		return
	}

	response.JSON(ctx, http.StatusOK, t)
}

func (c *TaskController) Create(ctx *fasthttp.RequestCtx) {
	stdCtx := requestContext(ctx)

	userID, workspaceID, err := scope(stdCtx, ctx, c.services)
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	req := &task.CreateTaskRequest{}
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

	t, err := c.services.Task.Create(stdCtx, workspaceID, req)
	if err != nil {
		response.Error(ctx, stdCtx, mapTaskErr(err))
		return
	}

	response.JSON(ctx, http.StatusCreated, t)
}

func (c *TaskController) Update(ctx *fasthttp.RequestCtx) {
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

	req := &task.UpdateTaskRequest{}
	if err := parseBody(ctx, req); err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	t, err := c.services.Task.Update(stdCtx, id, workspaceID, req)
	if err != nil {
		response.Error(ctx, stdCtx, mapTaskErr(err))
		return
	}

	response.JSON(ctx, http.StatusOK, t)
}

func (c *TaskController) Delete(ctx *fasthttp.RequestCtx) {
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

	if err := c.services.Task.Delete(stdCtx, id, workspaceID); err != nil {
		response.Error(ctx, stdCtx, mapTaskErr(err))
		return
	}

	response.NoContent(ctx)
}
