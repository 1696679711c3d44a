// Package response is the single boundary translator: every component
// signals failures through typed errors, and only this package writes them
// to the transport.
package response

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	json "github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"

	"github.com/curaious/tasker/internal/perrors"
	"github.com/curaious/tasker/internal/validate"
)

type errorBody struct {
	Error   string                `json:"error"`
	Details []validate.FieldError `json:"details,omitempty"`
}

// JSON writes data with the given status code.
func JSON(ctx *fasthttp.RequestCtx, status int, data any) {
	ctx.Response.Header.Set("content-type", "application/json")
	ctx.SetStatusCode(status)

	body, err := json.Marshal(data)
	if err != nil {
		slog.Error("Unable to json encode response", slog.Any("error", err))
		ctx.SetStatusCode(http.StatusInternalServerError)
		return
	}

	ctx.SetBody(body)
}

// NoContent writes an empty 204 response.
func NoContent(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(http.StatusNoContent)
}

// Error maps the error taxonomy to a status code and `{error}` body, with
// per-field details for validation failures. Anything untyped becomes a 500
// without leaking internals.
func Error(ctx *fasthttp.RequestCtx, stdCtx context.Context, err error) {
	var verrs validate.Errors
	if errors.As(err, &verrs) {
		JSON(ctx, http.StatusBadRequest, errorBody{Error: "Validation error", Details: verrs})
		return
	}

	var perr perrors.Err
	if errors.As(err, &perr) {
		perr.Print(stdCtx)
		JSON(ctx, perr.HttpStatus(), errorBody{Error: perr.Message})
		return
	}

	slog.ErrorContext(stdCtx, "Unhandled error", slog.Any("error", err))
	JSON(ctx, http.StatusInternalServerError, errorBody{Error: "Internal server error"})
}
