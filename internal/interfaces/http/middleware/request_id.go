package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"loanflow.backend/pkg/logger"
)

// RequestIDMiddleware generates a unique ID for each request and
// threads it through both the gin and the request contexts so the
// structured logger can pick it up.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(logger.RequestIDKey, id)
		c.Header("X-Request-ID", id)

		// String key shared with pkg/logger and gin's own context.
		ctx := context.WithValue(c.Request.Context(), logger.RequestIDKey, id) //nolint:staticcheck
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
