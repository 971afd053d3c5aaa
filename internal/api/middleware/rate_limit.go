package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"brixia-rugby/backend/pkg/redis"
	"brixia-rugby/backend/pkg/response"
)

// RateLimit allows limit requests per window for each client IP and route.
// With Redis the window is shared across instances; without it (or when a
// Redis call fails) an in-process token bucket per IP takes over.
func RateLimit(rdb *redis.Client, limit int, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	local := newLocalLimiter(limit, window)

	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())

		allowed := false
		if rdb != nil {
			ok, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
			if err != nil {
				logger.Warn("redis rate limit failed, using local limiter", zap.Error(err))
				allowed = local.allow(key)
			} else {
				allowed = ok
			}
		} else {
			allowed = local.allow(key)
		}

		if !allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			response.Error(c, http.StatusTooManyRequests, 10004, "too many requests, retry later")
			c.Abort()
			return
		}

		c.Next()
	}
}

// localLimiter token bucket per key, refilled at limit/window with a burst
// of limit. Idle buckets are dropped after a few windows.
type localLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	every   rate.Limit
	burst   int
	idle    time.Duration
	swept   time.Time
}

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

func newLocalLimiter(limit int, window time.Duration) *localLimiter {
	if limit <= 0 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &localLimiter{
		buckets: make(map[string]*bucket),
		every:   rate.Every(window / time.Duration(limit)),
		burst:   limit,
		idle:    3 * window,
		swept:   time.Now(),
	}
}

func (l *localLimiter) allow(key string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.swept) > l.idle {
		for k, b := range l.buckets {
			if now.Sub(b.seen) > l.idle {
				delete(l.buckets, k)
			}
		}
		l.swept = now
	}

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(l.every, l.burst)}
		l.buckets[key] = b
	}
	b.seen = now
	return b.lim.AllowN(now, 1)
}
