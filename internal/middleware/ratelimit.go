package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/sliceinsights/picklematch-backend/internal/logger"
)

const (
	pruneInterval = time.Minute
	clientMaxIdle = 3 * time.Minute
)

// RateLimiter enforces a per-client-IP requests-per-minute limit on the
// routes it wraps. Stale client buckets are pruned opportunistically on
// lookup, so the type holds no background goroutine.
type RateLimiter struct {
	log       *logger.Logger
	perMinute int

	mu        sync.Mutex
	clients   map[string]*clientBucket
	lastPrune time.Time
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(baseLog *logger.Logger, perMinute int) *RateLimiter {
	return &RateLimiter{
		log:       baseLog.With("middleware", "RateLimiter", "per_minute", perMinute),
		perMinute: perMinute,
		clients:   map[string]*clientBucket{},
		lastPrune: time.Now(),
	}
}

func (rl *RateLimiter) limiterFor(clientIP string) *rate.Limiter {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastPrune) >= pruneInterval {
		cutoff := now.Add(-clientMaxIdle)
		for ip, bucket := range rl.clients {
			if bucket.lastSeen.Before(cutoff) {
				delete(rl.clients, ip)
			}
		}
		rl.lastPrune = now
	}

	bucket, ok := rl.clients[clientIP]
	if !ok {
		bucket = &clientBucket{
			limiter: rate.NewLimiter(rate.Limit(float64(rl.perMinute)/60.0), rl.perMinute),
		}
		rl.clients[clientIP] = bucket
	}
	bucket.lastSeen = now
	return bucket.limiter
}

func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiterFor(c.ClientIP()).Allow() {
			rl.log.Warn("rate limit exceeded", "client_ip", c.ClientIP(), "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
