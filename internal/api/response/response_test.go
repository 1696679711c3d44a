package response

import (
	"context"
	"errors"
	"net/http"
	"testing"

	json "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/curaious/tasker/internal/perrors"
	"github.com/curaious/tasker/internal/validate"
)

func TestJSON(t *testing.T) {
	ctx := &fasthttp.RequestCtx{}
	JSON(ctx, http.StatusCreated, map[string]string{"name": "Demo Project"})

	assert.Equal(t, http.StatusCreated, ctx.Response.StatusCode())
	assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))
	assert.JSONEq(t, `{"name":"Demo Project"}`, string(ctx.Response.Body()))
}

func TestNoContent(t *testing.T) {
	ctx := &fasthttp.RequestCtx{}
	NoContent(ctx)
	assert.Equal(t, http.StatusNoContent, ctx.Response.StatusCode())
}

func TestErrorValidation(t *testing.T) {
	ctx := &fasthttp.RequestCtx{}
	verrs := validate.Errors{{Field: "title", Message: "title is required"}}

	Error(ctx, context.Background(), verrs)

	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())

	var body struct {
		Error   string                `json:"error"`
		Details []validate.FieldError `json:"details"`
	}
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &body))
	assert.Equal(t, "Validation error", body.Error)
	require.Len(t, body.Details, 1)
	assert.Equal(t, "title", body.Details[0].Field)
}

func TestErrorTyped(t *testing.T) {
	ctx := &fasthttp.RequestCtx{}
	Error(ctx, context.Background(), perrors.NewErrNotFound("Task not found", errors.New("sql: no rows in result set")))

	assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"error":"Task not found"}`, string(ctx.Response.Body()))
}

// Untyped errors become a generic 500 so internals never leak to clients.
func TestErrorUntyped(t *testing.T) {
	ctx := &fasthttp.RequestCtx{}
	Error(ctx, context.Background(), errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"error":"Internal server error"}`, string(ctx.Response.Body()))
}
