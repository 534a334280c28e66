package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/stitts-dev/gridiron-sim/pkg/utils"
)

// RateLimit guards the simulation routes with a token bucket. Batch runs are
// cheap individually but the API should not become an accidental load
// generator for whoever fronts it.
func RateLimit(perSecond float64, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			utils.SendRateLimited(c, "simulation rate limit exceeded")
			c.Abort()
			return
		}
		c.Next()
	}
}
