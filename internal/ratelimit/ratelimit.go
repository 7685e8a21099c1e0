// Package ratelimit throttles requests per client IP using Redis counters,
// so the limit holds across restarts and replicas.
package ratelimit

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

type Limiter struct {
	client *redis.Client
	name   string
	limit  int
	window time.Duration
}

// New builds a limiter allowing limit requests per window per IP. The name
// namespaces the counters so different routes can carry different limits.
func New(client *redis.Client, name string, limit int, window time.Duration) *Limiter {
	return &Limiter{client: client, name: name, limit: limit, window: window}
}

// Middleware rejects callers over the limit with 429. A Redis outage lets
// requests through: the limiter protects against brute force, it is not an
// auth gate.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := keyPrefix + l.name + ":" + c.ClientIP()

		n, err := l.client.Incr(c.Request.Context(), key).Result()
		if err != nil {
			log.Printf("rate limiter unavailable: %v", err)
			c.Next()
			return
		}
		if n == 1 {
			l.client.Expire(c.Request.Context(), key, l.window)
		}

		if n > int64(l.limit) {
			c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "message": "Too many attempts, try again later"})
			c.Abort()
			return
		}

		c.Next()
	}
}
