package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Limiter is the admission-control counter behind RateLimit; the redis
// cache implements it.
type Limiter interface {
	Allow(ctx context.Context, callerKey string, limit int64, window time.Duration) (bool, error)
}

// RateLimit caps mutating requests per caller IP per second. It fails open
// when the limiter backend errors: admission control must never take the
// API down with it.
func RateLimit(limiter Limiter, perSecond int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || perSecond <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("%s:%s", c.ClientIP(), time.Now().Format("20060102150405"))
		allowed, err := limiter.Allow(c.Request.Context(), key, int64(perSecond), time.Second)
		if err != nil {
			log.Printf("rate limiter unavailable: %v", err)
			c.Next()
			return
		}
		if !allowed {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"kind":    "rate_limited",
				"message": "too many requests, retry shortly",
			})
			return
		}
		c.Next()
	}
}
