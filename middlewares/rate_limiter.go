package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// LoginRateLimiter throttles the auth endpoints: 5 attempts per minute with a
// burst of 5, shared across callers.
func LoginRateLimiter() gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(5.0/60.0), 5)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "too many attempts, please try again later",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
