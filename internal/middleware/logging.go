package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/protectedpay/protectedpay-api/internal/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RequestLoggingMiddleware logs one line per completed request. Server errors
// are logged at error level, client errors at warn.
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		status := c.Writer.Status()
		level := zapcore.InfoLevel
		switch {
		case status >= 500:
			level = zapcore.ErrorLevel
		case status >= 400:
			level = zapcore.WarnLevel
		}

		fields := []zap.Field{
			zap.String("correlation_id", GetCorrelationID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(startTime)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		if ce := logger.Log.Check(level, "Request completed"); ce != nil {
			ce.Write(fields...)
		}
	}
}
