// Package ratelimit implements a fixed-window request limiter backed by
// Redis, applied per client IP and route group.
package ratelimit

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"expohall/internal/shared/response"
	"expohall/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Config controls window size and per-group quotas.
type Config struct {
	Enabled             bool
	WindowDuration      time.Duration
	AuthRequests        int
	ReservationRequests int
	DefaultRequests     int
}

// RateLimiter counts requests in Redis fixed windows.
type RateLimiter struct {
	rdb    *redis.Client
	config *Config
	log    *logger.Logger
}

func NewRateLimiter(rdb *redis.Client, config *Config) *RateLimiter {
	return &RateLimiter{
		rdb:    rdb,
		config: config,
		log:    logger.GetDefault().WithComponent("ratelimit"),
	}
}

// Allow increments the window counter for key and reports whether the request
// fits the limit. Fails open on Redis errors.
func (rl *RateLimiter) Allow(c *gin.Context, group string, limit int) bool {
	window := time.Now().Unix() / int64(rl.config.WindowDuration.Seconds())
	key := fmt.Sprintf("ratelimit:%s:%s:%d", group, c.ClientIP(), window)

	count, err := rl.rdb.Incr(c.Request.Context(), key).Result()
	if err != nil {
		rl.log.Warn("rate limit counter unavailable", slog.Any("error", err))
		return true
	}
	if count == 1 {
		rl.rdb.Expire(c.Request.Context(), key, rl.config.WindowDuration)
	}

	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	remaining := int64(limit) - count
	if remaining < 0 {
		remaining = 0
	}
	c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

	return count <= int64(limit)
}

// Middleware returns a gin middleware limiting the named route group.
func (rl *RateLimiter) Middleware(group string, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || !rl.config.Enabled {
			c.Next()
			return
		}
		if !rl.Allow(c, group, limit) {
			rl.log.Warn("rate limit exceeded",
				slog.String("group", group),
				slog.String("ip", c.ClientIP()),
			)
			response.AbortError(c, http.StatusTooManyRequests, "too many requests")
			return
		}
		c.Next()
	}
}
