package handler

import (
	"net/http"
	"strconv"

	sharedError "github.com/changhyeonkim/project-board/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/project-board/go-api-server/internal/shared/middleware"
	"github.com/changhyeonkim/project-board/go-api-server/internal/shared/validator"
	"github.com/gin-gonic/gin"
)

// BindJSON parses and validates JSON request body
// Returns true if binding succeeded, false if failed (response already sent)
//
// Usage:
//
//	var req SaveArticleRequest
//	if !handler.BindJSON(c, &req) {
//	    return
//	}
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		// Add error to context for middleware logging
		c.Error(err)

		// Check if it's a validation error
		if resp, ok := validator.ToErrorResponse(err); ok {
			c.JSON(http.StatusBadRequest, resp)
		} else {
			// JSON parsing error or other binding errors
			c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		}
		return false
	}
	return true
}

// PathID parses a positive int64 path parameter
// Returns false if the parameter is missing or malformed (response already sent)
func PathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		if err != nil {
			c.Error(err)
		}
		c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		return 0, false
	}
	return id, true
}

// RespondError sends an error response with logging
//
// Usage:
//
//	if err := service.DoSomething(); err != nil {
//	    handler.RespondError(c, err, sharedError.InternalServerError)
//	    return
//	}
func RespondError(c *gin.Context, err error, errResp sharedError.ErrorResponse) {
	// Add error to context for middleware logging
	c.Error(err)

	// Send error response
	c.JSON(errResp.Status, errResp)
}

// RespondDomainError sends the registered response for a domain error.
// Unmapped errors become RequestTimeoutResponse once the request deadline has passed, InternalServerError otherwise.
func RespondDomainError(c *gin.Context, err error) {
	fallback := sharedError.InternalServerError
	if middleware.IsTimeout(c) {
		fallback = middleware.RequestTimeoutResponse
	}
	RespondError(c, err, sharedError.Resolve(err, fallback))
}
