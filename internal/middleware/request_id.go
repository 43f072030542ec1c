package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kingrain94/pitchcraft-api/internal/utils"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an id, reusing a well formed incoming one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}
		c.Set(string(utils.RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}
