package controllers

import (
	"errors"
	"net/http"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/curaious/tasker/internal/api/response"
	"github.com/curaious/tasker/internal/perrors"
	"github.com/curaious/tasker/internal/services"
	"github.com/curaious/tasker/internal/services/comment"
)

type CommentController struct {
	services *services.Services
}

func RegisterCommentRoutes(r *router.Router, s *services.Services) {
	c := &CommentController{services: s}

	r.GET("/api/comments", c.List)
	r.POST("/api/comments", c.Create)
	r.GET("/api/comments/{id}", c.Get)
	r.PUT("/api/comments/{id}", c.Update)
	r.DELETE("/api/comments/{id}", c.Delete)
}

func mapCommentErr(err error) error {
	switch {
	case errors.Is(err, comment.ErrCommentNotFound):
		return perrors.NewErrNotFound("Comment not found", err)
	case errors.Is(err, comment.ErrTaskNotFound):
		return perrors.NewErrNotFound("Task not found", err)
	default:
		return err
	}
}

func (c *CommentController) List(ctx *fasthttp.RequestCtx) {
	stdCtx := requestContext(ctx)

	_, workspaceID, err := scope(stdCtx, ctx, c.services)
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	taskID, err := queryID(ctx, "taskId")
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	comments, err := c.services.Comment.List(stdCtx, workspaceID, taskID)
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	response.JSON(ctx, http.StatusOK, comments)
}

func (c *CommentController) Get(ctx *fasthttp.RequestCtx) {
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

	cm, err := c.services.Comment.GetByID(stdCtx, id, workspaceID)
	if err != nil {
		response.Error(ctx, stdCtx, mapCommentErr(err))
		return
	}

	response.JSON(ctx, http.StatusOK, cm)
}

func (c *CommentController) Create(ctx *fasthttp.RequestCtx) {
	stdCtx := requestContext(ctx)

	userID, workspaceID, err := scope(stdCtx, ctx, c.services)
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	req := &comment.CreateCommentRequest{}
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

	cm, err := c.services.Comment.Create(stdCtx, workspaceID, req)
	if err != nil {
		response.Error(ctx, stdCtx, mapCommentErr(err))
		return
	}

	response.JSON(ctx, http.StatusCreated, cm)
}

func (c *CommentController) Update(ctx *fasthttp.RequestCtx) {
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

	req := &comment.UpdateCommentRequest{}
	if err := parseBody(ctx, req); err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	cm, err := c.services.Comment.Update(stdCtx, id, workspaceID, req)
	if err != nil {
		response.Error(ctx, stdCtx, mapCommentErr(err))
		return
	}

	response.JSON(ctx, http.StatusOK, cm)
}

func (c *CommentController) Delete(ctx *fasthttp.RequestCtx) {
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

	if err := c.services.Comment.Delete(stdCtx, id, workspaceID); err != nil {
		response.Error(ctx, stdCtx, mapCommentErr(err))
		return
	}

	response.NoContent(ctx)
}
