package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const requestIDKey = contextKey("requestID")

// GetRequestIDFromContext returns the request ID assigned by StructuredLoggingMiddleware.
func GetRequestIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(requestIDKey)); exists {
		id, ok := v.(string)
		return id, ok
	}
	return GetRequestIDFromCtx(c.Request.Context())
}

// GetRequestIDFromCtx is GetRequestIDFromContext for code that only has a context.Context.
func GetRequestIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok && id != ""
}
