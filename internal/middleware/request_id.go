package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"worklife-balance/pkg/log"
)

const RequestIDHeader = "X-Request-ID"

// RequestID propagates or generates a request id and puts it in the request context for logging.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
