package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fasthttp/router"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/curaious/tasker/internal/api/controllers"
	"github.com/curaious/tasker/internal/api/response"
	"github.com/curaious/tasker/internal/config"
	"github.com/curaious/tasker/internal/perrors"
	"github.com/curaious/tasker/internal/validate"
)

var (
	tracer          = otel.Tracer("tasker/api")
	tracePropagator = propagation.TraceContext{}
)

func (s *Server) initRoutes() fasthttp.RequestHandler {
	r := router.New()

	r.GET("/api/health", func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusOK)
		_, _ = ctx.Write([]byte("OK"))
	})

	controllers.RegisterAuthRoutes(r, s.services)
	controllers.RegisterUserRoutes(r, s.services)
	controllers.RegisterWorkspaceRoutes(r, s.services)
	controllers.RegisterProjectRoutes(r, s.services)
	controllers.RegisterTaskRoutes(r, s.services)
	controllers.RegisterCategoryRoutes(r, s.services)
	controllers.RegisterCommentRoutes(r, s.services)

	return s.withMiddlewares(r.Handler)
}

func (s *Server) withMiddlewares(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		applyCORS(ctx)
		if string(ctx.Method()) == fasthttp.MethodOptions {
			ctx.SetStatusCode(fasthttp.StatusNoContent)
			return
		}

		start := time.Now()
		requestID := uuid.NewString()
		requestURI := string(ctx.URI().FullURI())
		slog.Info("Started processing", slog.String("request_id", requestID), slog.String("method", string(ctx.Method())), slog.String("request_uri", requestURI))

		h := http.Header{}
		ctx.Request.Header.VisitAll(func(k, v []byte) {
			h[string(k)] = []string{string(v)}
		})
		traceCtx := tracePropagator.Extract(ctx, propagation.HeaderCarrier(h))
		traceCtx, span := tracer.Start(traceCtx, fmt.Sprintf("%s %s", ctx.Method(), ctx.Path()),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", string(ctx.Method())),
				attribute.String("http.target", string(ctx.Path())),
				attribute.String("request.id", requestID),
			),
		)
		defer span.End()

		ctx.SetUserValue("traceCtx", traceCtx)
		ctx.SetUserValue("requestID", requestID)

		// Auth check: everything except the public routes needs a valid
		// bearer token.
		if !isPublicRoute(ctx) {
			authHeader := string(ctx.Request.Header.Peek("Authorization"))
			if !strings.HasPrefix(authHeader, "Bearer ") {
				response.Error(ctx, traceCtx, perrors.NewErrUnauthorized("Authorization required", errors.New("missing bearer token")))
				return
			}

			claims, err := s.services.Auth.VerifyToken(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				response.Error(ctx, traceCtx, perrors.NewErrUnauthorized("Invalid or expired token", err))
				return
			}

			ctx.SetUserValue("userClaims", claims)

			// Workspace-scoped routes additionally carry the tenant id in a
			// header. The role itself is re-derived downstream, never here.
			if isWorkspaceScoped(ctx) {
				workspaceID, err := validate.ParseID(string(ctx.Request.Header.Peek("X-Workspace-Id")))
				if err != nil {
					response.Error(ctx, traceCtx, perrors.NewErrInvalidRequest("Workspace ID required", err))
					return
				}

				ctx.SetUserValue("workspaceID", workspaceID)
			}
		}

		next(ctx)

		span.SetAttributes(attribute.Int("http.status_code", ctx.Response.StatusCode()))
		slog.Info("Finished processing", slog.String("request_id", requestID), slog.String("method", string(ctx.Method())), slog.String("request_uri", requestURI), slog.Duration("duration", time.Since(start)))
	}
}

func applyCORS(ctx *fasthttp.RequestCtx) {
	headers := &ctx.Response.Header
	headers.Set("Access-Control-Allow-Origin", string(ctx.Request.Header.Peek("Origin")))
	headers.Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS,PATCH")
	headers.Set("Access-Control-Allow-Headers", config.GetEnvOrDefault("ALLOWED_HEADERS", "Authorization, Content-Type, X-Workspace-Id"))
	headers.Set("Access-Control-Allow-Credentials", "true")
}

func isPublicRoute(ctx *fasthttp.RequestCtx) bool {
	switch string(ctx.Path()) {
	case "/api/health", "/api/auth/register", "/api/auth/login":
		return true
	}
	return false
}

func isWorkspaceScoped(ctx *fasthttp.RequestCtx) bool {
	path := string(ctx.Path())

	scopedPrefixes := []string{
		"/api/projects",
		"/api/tasks",
		"/api/categories",
		"/api/comments",
	}

	for _, prefix := range scopedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
