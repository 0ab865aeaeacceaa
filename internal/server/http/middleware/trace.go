package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jaego/pkg/logger"
)

// HeaderRequestID carries the request id; client-supplied ids are kept so
// one id follows a call end to end.
const HeaderRequestID = "X-Request-ID"

// Trace middleware attaches a request id to context, logs and response.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Set("request_id", requestID)
		c.Header(HeaderRequestID, requestID)

		c.Next()
	}
}
