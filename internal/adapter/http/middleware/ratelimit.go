package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"coatingshop/internal/infrastructure/ratelimit"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const RateLimitMessage = "Too many requests from this IP, please try again later."

// RateLimit allows limit requests per client IP in each fixed window. When the
// store fails the request is let through.
func RateLimit(store ratelimit.Store, limit int, window time.Duration, log *zap.Logger) gin.HandlerFunc {
	log = log.Named("ratelimit")
	return func(c *gin.Context) {
		ip := c.ClientIP()
		count, resetAt, err := store.Hit(c.Request.Context(), ip, window)
		if err != nil {
			log.Warn("rate limit store unavailable", zap.String("ip", ip), zap.Error(err))
			c.Next()
			return
		}

		remaining := int64(limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		if count > int64(limit) {
			retry := int(math.Ceil(time.Until(resetAt).Seconds()))
			if retry < 1 {
				retry = 1
			}
			c.Header("Retry-After", strconv.Itoa(retry))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": RateLimitMessage})
			return
		}
		c.Next()
	}
}
