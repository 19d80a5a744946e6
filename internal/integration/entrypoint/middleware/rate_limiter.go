// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bk-finance/backend/internal/integration/entrypoint/dto"
)

// The digest trigger sends email, so it gets a small fixed window per
// client address. Every other endpoint is unthrottled.
const (
	digestMaxAttempts = 5
	digestWindow      = time.Minute
)

type clientWindow struct {
	count   int
	resetAt time.Time
}

// RateLimiter throttles requests per client IP over a fixed window.
type RateLimiter struct {
	mu          sync.Mutex
	windows     map[string]*clientWindow
	maxAttempts int
	window      time.Duration
}

// NewRateLimiter creates a limiter with the digest-trigger defaults.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		windows:     make(map[string]*clientWindow),
		maxAttempts: digestMaxAttempts,
		window:      digestWindow,
	}
}

// Middleware returns the gin handler enforcing the limit. ENV=test
// bypasses it so the integration harness can hammer the endpoint.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if os.Getenv("ENV") == "test" {
			ctx.Next()
			return
		}

		key := ctx.ClientIP()
		if key == "" {
			key = ctx.Request.RemoteAddr
		}

		allowed, retryAfter := rl.take(key)
		if !allowed {
			ctx.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
			})
			return
		}

		ctx.Next()
	}
}

// take consumes one attempt for key, reporting whether it fit in the
// current window and how long until the window resets when it did not.
func (rl *RateLimiter) take(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	w, ok := rl.windows[key]
	if !ok || now.After(w.resetAt) {
		rl.windows[key] = &clientWindow{count: 1, resetAt: now.Add(rl.window)}
		return true, 0
	}

	if w.count >= rl.maxAttempts {
		return false, time.Until(w.resetAt)
	}
	w.count++
	return true, 0
}

// Reset drops all tracked windows.
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.windows = make(map[string]*clientWindow)
}
