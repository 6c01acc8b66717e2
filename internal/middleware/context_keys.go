package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
)

// contextKey is a private type for request context keys to prevent collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	principalKey = contextKey("principal")
)

// GetLoggerFromCtx retrieves the request-scoped logger from a standard
// context. It returns nil when no logger was attached; callers fall back to
// slog.Default.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return nil
	}
	logger, _ := ctx.Value(loggerCtxKey).(*slog.Logger)
	return logger
}

// GetPrincipalFromContext retrieves the authenticated principal from the Gin
// context. It returns the principal and a boolean indicating if it was found.
func GetPrincipalFromContext(c *gin.Context) (domain.Principal, bool) {
	p, ok := c.Request.Context().Value(principalKey).(domain.Principal)
	return p, ok
}
