package middleware

import (
	"strings"

	sharedContext "github.com/changhyeonkim/project-board/go-api-server/internal/shared/context"
	"github.com/gin-gonic/gin"
)

const AuditorHeader = "X-Auditor"

// Auditor stores the name written to created_by / modified_by in the request context.
// There is no authentication, so the X-Auditor header wins over defaultAuditor.
func Auditor(defaultAuditor string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auditor := strings.TrimSpace(c.GetHeader(AuditorHeader))
		if auditor == "" {
			auditor = defaultAuditor
		}

		ctx := sharedContext.WithAuditor(c.Request.Context(), auditor)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
