package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// RequestID reads or generates a request id and echoes it on the response.
func RequestID(header string) gin.HandlerFunc {
	if header == "" {
		header = "X-Request-ID"
	}
	return func(c *gin.Context) {
		rid := c.GetHeader(header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set(header, rid)
		c.Next()
	}
}

// RequestIDFromContext returns the request id stored by RequestID.
func RequestIDFromContext(c *gin.Context) string {
	if value, ok := c.Get(requestIDKey); ok {
		if id, ok := value.(string); ok {
			return id
		}
	}
	return ""
}
