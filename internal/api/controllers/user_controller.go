package controllers

import (
	"errors"
	"net/http"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/curaious/tasker/internal/api/response"
	"github.com/curaious/tasker/internal/perrors"
	"github.com/curaious/tasker/internal/services"
	"github.com/curaious/tasker/internal/services/user"
)

type UserController struct {
	services *services.Services
}

func RegisterUserRoutes(r *router.Router, s *services.Services) {
	c := &UserController{services: s}

	r.GET("/api/users", c.List)
	r.GET("/api/users/{id}", c.Get)
}

func (c *UserController) List(ctx *fasthttp.RequestCtx) {
	stdCtx := requestContext(ctx)

	users, err := c.services.User.List(stdCtx)
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	response.JSON(ctx, http.StatusOK, users)
}

func (c *UserController) Get(ctx *fasthttp.RequestCtx) {
	stdCtx := requestContext(ctx)

	id, err := pathID(ctx, "id")
	if err != nil {
		response.Error(ctx, stdCtx, err)
		return
	}

	detail, err := c.services.User.GetDetail(stdCtx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.Error(ctx, stdCtx, perrors.NewErrNotFound("User not found", err))
			return
		}
		response.Error(ctx, stdCtx, err)
		return
	}

	response.JSON(ctx, http.StatusOK, detail)
}
