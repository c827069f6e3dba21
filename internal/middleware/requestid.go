package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key the request identifier is stored under.
const RequestIDKey = "request_id"

// RequestID injects a UUID into each request's context and echoes it in the
// X-Request-ID response header so log lines and client reports can be
// correlated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(RequestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
