package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/protectedpay/protectedpay-api/internal/logger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimitConfig configures a per-client token bucket
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
	// Limiters idle for longer than IdleTTL are dropped every CleanupInterval
	CleanupInterval time.Duration
	IdleTTL         time.Duration
}

// RateLimiter keeps one token bucket per client
type RateLimiter struct {
	limiters sync.Map
	config   RateLimitConfig
}

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess atomic.Int64
}

func (e *limiterEntry) touch(now time.Time) {
	e.lastAccess.Store(now.UnixNano())
}

// NewRateLimiter creates a limiter whose cleanup loop runs until ctx is done
func NewRateLimiter(ctx context.Context, config RateLimitConfig) *RateLimiter {
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = 5 * time.Minute
	}
	if config.IdleTTL <= 0 {
		config.IdleTTL = 10 * time.Minute
	}
	if config.Burst <= 0 {
		config.Burst = 1
	}

	rl := &RateLimiter{config: config}
	go rl.cleanup(ctx)
	return rl
}

func (rl *RateLimiter) cleanup(ctx context.Context) {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			rl.evictIdle(now)
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	cutoff := now.Add(-rl.config.IdleTTL).UnixNano()
	rl.limiters.Range(func(key, value interface{}) bool {
		if entry, ok := value.(*limiterEntry); ok && entry.lastAccess.Load() < cutoff {
			rl.limiters.Delete(key)
		}
		return true
	})
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	now := time.Now()
	if val, ok := rl.limiters.Load(key); ok {
		entry := val.(*limiterEntry)
		entry.touch(now)
		return entry.limiter
	}

	entry := &limiterEntry{limiter: rate.NewLimiter(rate.Limit(rl.config.RequestsPerSecond), rl.config.Burst)}
	entry.touch(now)
	actual, _ := rl.limiters.LoadOrStore(key, entry)
	return actual.(*limiterEntry).limiter
}

func getClientIdentifier(c *gin.Context) string {
	if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
		return "ip:" + forwardedFor
	}
	clientIP := c.ClientIP()
	if clientIP == "" {
		clientIP = "unknown"
	}
	return "ip:" + clientIP
}

// Middleware returns a Gin handler that rejects clients over their limit
// with 429. Health and metrics endpoints are never limited.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	limit := strconv.FormatFloat(rl.config.RequestsPerSecond, 'f', -1, 64)

	return func(c *gin.Context) {
		switch c.Request.URL.Path {
		case "/health", "/healthz", "/metrics":
			c.Next()
			return
		}

		clientID := getClientIdentifier(c)
		limiter := rl.getLimiter(clientID)
		reset := fmt.Sprintf("%d", time.Now().Add(time.Second).Unix())

		if !limiter.Allow() {
			logger.Log.Warn("Rate limit exceeded",
				zap.String("client_id", clientID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.String("correlation_id", GetCorrelationID(c)),
			)

			c.Header("X-RateLimit-Limit", limit)
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", reset)
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests. Please try again later.",
				"retry_after": 1,
			})
			return
		}

		remaining := int(limiter.Tokens())
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", reset)

		c.Next()
	}
}
