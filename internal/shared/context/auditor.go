package context

import (
	"context"
	"strings"
)

type auditorKey struct{}

// WithAuditor returns a new context carrying the name recorded in created_by / modified_by
func WithAuditor(ctx context.Context, auditor string) context.Context {
	return context.WithValue(ctx, auditorKey{}, auditor)
}

// AuditorFromContext returns the auditor stored in ctx.
// Returns false when ctx is nil or no non-blank auditor was set.
func AuditorFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	auditor, ok := ctx.Value(auditorKey{}).(string)
	if !ok || strings.TrimSpace(auditor) == "" {
		return "", false
	}
	return auditor, true
}
