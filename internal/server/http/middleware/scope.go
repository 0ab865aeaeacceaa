package middleware

import (
	"github.com/gin-gonic/gin"

	"jaego/internal/core/apperror"
	"jaego/internal/core/scope"
)

// Scope middleware extracts and validates the data-partition selector every
// API call must carry, and stores it in the request context for the
// repositories.
func Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Query("scope")
		if name == "" {
			_ = c.Error(apperror.NewValidation("scope is required"))
			c.Abort()
			return
		}
		if !scope.Valid(name) {
			_ = c.Error(apperror.NewValidation("invalid scope").WithDetail("scope", name))
			c.Abort()
			return
		}

		ctx := scope.WithContext(c.Request.Context(), name)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
