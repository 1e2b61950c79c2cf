package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/protectedpay/protectedpay-api/internal/logger"
	"go.uber.org/zap"
)

const (
	CorrelationIDHeader = "X-Correlation-ID"
	correlationIDKey    = "correlationID"

	maxCorrelationIDLength = 128
)

type contextKey int

const (
	correlationIDContextKey contextKey = iota
	loggerContextKey
)

// CorrelationIDMiddleware tags every request with a correlation ID. A
// well-formed X-Correlation-ID from the caller is reused; anything else is
// replaced by a fresh UUID. The ID is echoed in the response header and
// bound to a request logger reachable through LogWithCorrelationID.
func CorrelationIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.GetHeader(CorrelationIDHeader)
		if !validCorrelationID(correlationID) {
			correlationID = uuid.NewString()
		}

		c.Set(correlationIDKey, correlationID)
		c.Header(CorrelationIDHeader, correlationID)

		ctx := WithCorrelationID(c.Request.Context(), correlationID)
		c.Request = c.Request.WithContext(ctx)

		LogWithCorrelationID(ctx).Debug("Request received",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("client_ip", c.ClientIP()),
		)

		c.Next()
	}
}

// GetCorrelationID returns the ID assigned by CorrelationIDMiddleware
func GetCorrelationID(c *gin.Context) string {
	return c.GetString(correlationIDKey)
}

// WithCorrelationID stores the ID and a logger tagged with it in ctx
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	ctx = context.WithValue(ctx, correlationIDContextKey, correlationID)
	return context.WithValue(ctx, loggerContextKey, logger.Log.With(zap.String("correlation_id", correlationID)))
}

func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDContextKey).(string)
	return id
}

// LogWithCorrelationID returns the request logger, or the global logger for
// contexts that never passed through the middleware
func LogWithCorrelationID(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerContextKey).(*zap.Logger); ok {
		return l
	}
	return logger.Log
}

// validCorrelationID accepts short IDs made of URL-safe characters so caller
// input never reaches log lines or headers unchecked
func validCorrelationID(id string) bool {
	if id == "" || len(id) > maxCorrelationIDLength {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == ':':
		default:
			return false
		}
	}
	return true
}
