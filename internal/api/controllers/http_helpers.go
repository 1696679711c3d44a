package controllers

import (
	"context"
	"errors"
	"fmt"

	json "github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"

	"github.com/curaious/tasker/internal/api/authenticator"
	"github.com/curaious/tasker/internal/perrors"
	"github.com/curaious/tasker/internal/services"
	"github.com/curaious/tasker/internal/services/membership"
	"github.com/curaious/tasker/internal/validate"
)

// requestContext returns the trace-aware context extracted by the middleware,
// falling back to a fresh one for handlers invoked outside it.
func requestContext(ctx *fasthttp.RequestCtx) context.Context {
	if traceCtx, ok := ctx.UserValue("traceCtx").(context.Context); ok {
		return traceCtx
	}
	return context.Background()
}

func parseBody(ctx *fasthttp.RequestCtx, dest any) error {
	if err := json.Unmarshal(ctx.PostBody(), dest); err != nil {
		return perrors.NewErrInvalidRequest("Invalid request body", err)
	}
	return nil
}

func pathID(ctx *fasthttp.RequestCtx, name string) (int64, error) {
	raw, _ := ctx.UserValue(name).(string)
	id, err := validate.ParseID(raw)
	if err != nil {
		return 0, perrors.NewErrInvalidRequest(fmt.Sprintf("Invalid %s", name), err)
	}
	return id, nil
}

func currentUser(ctx *fasthttp.RequestCtx) *authenticator.UserClaims {
	claims, _ := ctx.UserValue("userClaims").(*authenticator.UserClaims)
	return claims
}

// scope resolves the caller and tenant for a workspace-scoped route and
// re-derives membership. Non-members get a 404 so workspace existence is
// never revealed.
func scope(stdCtx context.Context, ctx *fasthttp.RequestCtx, s *services.Services) (userID, workspaceID int64, err error) {
	claims := currentUser(ctx)
	workspaceID, _ = ctx.UserValue("workspaceID").(int64)

	if _, err := s.Guard.RequireMember(stdCtx, claims.UserID, workspaceID); err != nil {
		if errors.Is(err, membership.ErrNotMember) {
			return 0, 0, perrors.NewErrNotFound("Workspace not found", err)
		}
		return 0, 0, err
	}

	return claims.UserID, workspaceID, nil
}

func queryID(ctx *fasthttp.RequestCtx, name string) (*int64, error) {
	raw := string(ctx.QueryArgs().Peek(name))
	if raw == "" {
		return nil, nil
	}

	id, err := validate.ParseID(raw)
	if err != nil {
		return nil, perrors.NewErrInvalidRequest(fmt.Sprintf("Invalid %s", name), err)
	}
	return &id, nil
}

func queryString(ctx *fasthttp.RequestCtx, name string) string {
	return string(ctx.QueryArgs().Peek(name))
}
