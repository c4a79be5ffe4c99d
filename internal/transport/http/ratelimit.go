package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// rateLimiter is a fixed one-minute window counter. Coarse on purpose:
// it only exists to keep the contact form from being scripted, not to
// shape chat traffic.
type rateLimiter struct {
	mu          sync.Mutex
	limit       int
	counter     int
	windowStart time.Time
}

func newRateLimiter(limit int) *rateLimiter {
	return &rateLimiter{limit: limit, windowStart: time.Now()}
}

func (r *rateLimiter) allow() bool {
	if r == nil || r.limit <= 0 {
		return true
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if now.Sub(r.windowStart) >= time.Minute {
		r.windowStart = now
		r.counter = 0
	}
	r.counter++
	return r.counter <= r.limit
}

// RateLimitMiddleware rejects requests beyond limit per minute across
// all callers. A limit of zero disables the check.
func RateLimitMiddleware(limit int) gin.HandlerFunc {
	limiter := newRateLimiter(limit)
	return func(c *gin.Context) {
		if !limiter.allow() {
			c.JSON(http.StatusTooManyRequests, ContactResponse{
				Success: false,
				Message: "Too many requests. Please try again later.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
