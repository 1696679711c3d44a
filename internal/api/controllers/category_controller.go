package controllers

import (
	"errors"
	"net/http"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/curaious/tasker/internal/api/response"
	"github.com/curaious/tasker/internal/perrors"
	"github.com/curaious/tasker/internal/services"
	"github.com/curaious/tasker/internal/services/category"
)

type CategoryController struct {
	services *services.Services
}

func RegisterCategoryRoutes(r *router.Router, s *services.Services) {
	c := &CategoryController{services: s}

	r.GET("/api/categories", c.List)
	r.POST("/api/categories", c.Create)
	r.GET("/api/categories/{id}", c.Get)
	r.PUT("/api/categories/{id}", c.Update)
	r.DELETE("/api/categories/{id}", c.Delete)
}

func (c *CategoryController) List(ctx *fasthttp.RequestCtx) {
	stdCtx := requestContext(ctx)

	_, workspaceID, err := scope(stdCtx, ctx, c.services)
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	categories, err := c.services.Category.List(stdCtx, workspaceID)
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	response.JSON(ctx, http.StatusOK, categories)
}

func (c *CategoryController) Get(ctx *fasthttp.RequestCtx) {
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

	cat, err := c.services.Category.GetByID(stdCtx, id, workspaceID)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			response.Error(ctx, stdCtx, perrors.NewErrNotFound("Category not found", err))
			return
		}
		response.Error(ctx, stdCtx, err)
		return
	}

	response.JSON(ctx, http.StatusOK, cat)
}

func (c *CategoryController) Create(ctx *fasthttp.RequestCtx) {
	stdCtx := requestContext(ctx)

	_, workspaceID, err := scope(stdCtx, ctx, c.services)
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	req := &category.CreateCategoryRequest{}
	if err := parseBody(ctx, req); err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	cat, err := c.services.Category.Create(stdCtx, workspaceID, req)
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	response.JSON(ctx, http.StatusCreated, cat)
}

func (c *CategoryController) Update(ctx *fasthttp.RequestCtx) {
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

	req := &category.UpdateCategoryRequest{}
	if err := parseBody(ctx, req); err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	cat, err := c.services.Category.Update(stdCtx, id, workspaceID, req)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			response.Error(ctx, stdCtx, perrors.NewErrNotFound("Category not found", err))
			return
		}
		response.Error(ctx, stdCtx, err)
		return
	}

	response.JSON(ctx, http.StatusOK, cat)
}

func (c *CategoryController) Delete(ctx *fasthttp.RequestCtx) {
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

	if err := c.services.Category.Delete(stdCtx, id, workspaceID); err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			response.Error(ctx, stdCtx, perrors.NewErrNotFound("Category not found", err))
			return
		}
		response.Error(ctx, stdCtx, err)
		return
	}

	response.NoContent(ctx)
}
