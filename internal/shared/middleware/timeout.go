package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	sharedError "github.com/changhyeonkim/project-board/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/project-board/go-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// RequestTimeoutResponse is written when the deadline passed before any response
var RequestTimeoutResponse = sharedError.ErrorResponse{
	Status:  http.StatusServiceUnavailable,
	Code:    "ERROR-004", // REQUEST_TIMEOUT
	Message: "요청 처리 시간이 초과되었습니다.",
}

// Timeout bounds the request context; repositories pass it to gorm with WithContext
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return
		}

		logger.FromContext(c.Request.Context()).Warn("Request deadline exceeded",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"timeout", timeout.String(),
			"status", c.Writer.Status(),
		)

		if !c.Writer.Written() {
			c.AbortWithStatusJSON(RequestTimeoutResponse.Status, RequestTimeoutResponse)
		}
	}
}

// IsTimeout reports whether the request deadline has passed
func IsTimeout(c *gin.Context) bool {
	return c.Request != nil && errors.Is(c.Request.Context().Err(), context.DeadlineExceeded)
}
