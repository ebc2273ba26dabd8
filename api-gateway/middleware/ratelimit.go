package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/skavtech/ict-platform/pkg/logger"
)

// RateLimiter implements a sliding window limit per client in Redis.
type RateLimiter struct {
	redis       *redis.Client
	maxRequests int
	window      time.Duration
	now         func() time.Time
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(redisClient *redis.Client, maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		redis:       redisClient,
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
	}
}

// Middleware returns the rate limiting middleware. Clients are identified by
// user id when authenticated and by IP otherwise.
func (rl *RateLimiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identifier := "ip:" + c.IP()
		if userID := c.Locals(LocalUserID); userID != nil {
			identifier = fmt.Sprintf("user:%v", userID)
		}

		allowed, remaining, resetTime, err := rl.checkLimit(c.UserContext(), identifier)
		if err != nil {
			// Redis outages must not take the gateway down.
			logger.Error(c.UserContext()).Err(err).Str("identifier", identifier).Msg("Rate limiter error")
			return c.Next()
		}

		c.Set("X-RateLimit-Limit", strconv.Itoa(rl.maxRequests))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			retryAfter := resetTime.Sub(rl.now())
			logger.Warn(c.UserContext()).
				Str("identifier", identifier).
				Int("limit", rl.maxRequests).
				Msg("Rate limit exceeded")

			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(retryAfter.Seconds())))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success":     false,
				"error":       "Rate limit exceeded",
				"message":     fmt.Sprintf("Too many requests. Try again in %v", retryAfter.Round(time.Second)),
				"retry_after": retryAfter.Seconds(),
			})
		}

		return c.Next()
	}
}

// checkLimit records the request and reports whether it fits in the window.
// Rejected requests are recorded too, so a client that keeps hammering stays
// blocked.
func (rl *RateLimiter) checkLimit(ctx context.Context, identifier string) (bool, int, time.Time, error) {
	key := "ratelimit:" + identifier
	now := rl.now()
	windowStart := now.Add(-rl.window)

	pipe := rl.redis.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(windowStart.UnixNano(), 10))
	countCmd := pipe.ZCard(ctx, key)
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: strconv.FormatInt(now.UnixNano(), 10) + "-" + uuid.NewString(),
	})
	oldestCmd := pipe.ZRangeWithScores(ctx, key, 0, 0)
	pipe.Expire(ctx, key, rl.window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, time.Time{}, err
	}

	count := int(countCmd.Val())
	remaining := max(rl.maxRequests-count-1, 0)

	resetTime := now.Add(rl.window)
	if oldest := oldestCmd.Val(); len(oldest) > 0 {
		resetTime = time.Unix(0, int64(oldest[0].Score)).Add(rl.window)
	}

	return count < rl.maxRequests, remaining, resetTime, nil
}
