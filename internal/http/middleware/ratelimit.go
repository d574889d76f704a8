// README: Rate-limit middleware over the injected Limiter capability.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"haulquote/internal/ratelimit"
)

// RateLimit guards one bucket. Limiter errors fail open with a warning.
func RateLimit(limiter ratelimit.Limiter, bucket string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.CheckAndRecord(c.Request.Context(), c.ClientIP(), bucket)
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.Error(err))
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
