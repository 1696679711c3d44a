package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
)

func requestTo(path string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetRequestURI(path)
	return ctx
}

func TestIsPublicRoute(t *testing.T) {
	assert.True(t, isPublicRoute(requestTo("/api/health")))
	assert.True(t, isPublicRoute(requestTo("/api/auth/register")))
	assert.True(t, isPublicRoute(requestTo("/api/auth/login")))

	assert.False(t, isPublicRoute(requestTo("/api/auth/me")))
	assert.False(t, isPublicRoute(requestTo("/api/workspaces")))
	assert.False(t, isPublicRoute(requestTo("/api/tasks/1")))
}

// Preflights must pass for the headers this API actually requires even when
// no ALLOWED_HEADERS override is configured.
func TestApplyCORSDefaultHeaders(t *testing.T) {
	t.Setenv("ALLOWED_HEADERS", "")

	ctx := requestTo("/api/tasks")
	applyCORS(ctx)

	allowed := string(ctx.Response.Header.Peek("Access-Control-Allow-Headers"))
	assert.Contains(t, allowed, "Authorization")
	assert.Contains(t, allowed, "Content-Type")
	assert.Contains(t, allowed, "X-Workspace-Id")
}

func TestIsWorkspaceScoped(t *testing.T) {
	assert.True(t, isWorkspaceScoped(requestTo("/api/projects")))
	assert.True(t, isWorkspaceScoped(requestTo("/api/projects/3")))
	assert.True(t, isWorkspaceScoped(requestTo("/api/tasks?status=TODO")))
	assert.True(t, isWorkspaceScoped(requestTo("/api/categories/2")))
	assert.True(t, isWorkspaceScoped(requestTo("/api/comments")))

	assert.False(t, isWorkspaceScoped(requestTo("/api/workspaces/3")))
	assert.False(t, isWorkspaceScoped(requestTo("/api/users")))
	assert.False(t, isWorkspaceScoped(requestTo("/api/auth/me")))
}
