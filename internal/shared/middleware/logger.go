package middleware

import (
	"log/slog"
	"time"

	sharedContext "github.com/changhyeonkim/project-board/go-api-server/internal/shared/context"
	"github.com/changhyeonkim/project-board/go-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// quietPaths are logged at debug level on success
var quietPaths = map[string]struct{}{
	"/health": {},
}

// LoggerMiddleware binds a request-scoped slog logger to the request context and logs each request
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		reqLogger := slog.Default().With("request_id", GetRequestID(c))

		// handlers, services and the gorm logger pick this up with logger.FromContext
		ctx := logger.WithLogger(c.Request.Context(), reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()

		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"route", c.FullPath(),
			"status", status,
			"latency", time.Since(start).String(),
			"ip", c.ClientIP(),
			"userAgent", c.Request.UserAgent(),
		}

		if raw != "" {
			fields = append(fields, "query", raw)
		}
		if auditor, ok := sharedContext.AuditorFromContext(c.Request.Context()); ok {
			fields = append(fields, "auditor", auditor)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.String())
		}

		msg := "Request processed"

		switch {
		case status >= 500:
			reqLogger.Error(msg, fields...)
		case status >= 400:
			reqLogger.Warn(msg, fields...)
		default:
			if _, quiet := quietPaths[path]; quiet {
				reqLogger.Debug(msg, fields...)
				return
			}
			reqLogger.Info(msg, fields...)
		}
	}
}
