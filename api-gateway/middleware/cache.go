package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/skavtech/ict-platform/pkg/logger"
)

// CacheConfig holds cache configuration
type CacheConfig struct {
	TTL             time.Duration
	CacheableStatus []int
}

// DefaultCacheConfig returns default cache configuration
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		TTL:             5 * time.Minute,
		CacheableStatus: []int{fiber.StatusOK},
	}
}

// Cache stores GET responses of one backend service in Redis. Keys are
// namespaced by service so a write can drop everything cached for it.
type Cache struct {
	redis  *redis.Client
	config CacheConfig
}

func NewCache(redisClient *redis.Client, config CacheConfig) *Cache {
	return &Cache{redis: redisClient, config: config}
}

// Middleware serves and fills the cache for GET requests to service.
func (rc *Cache) Middleware(service string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rc.redis == nil || c.Method() != fiber.MethodGet {
			return c.Next()
		}

		ctx := c.UserContext()
		key := CacheKey(service, c)
		cached, err := rc.redis.Get(ctx, key).Bytes()
		if err == nil && len(cached) > 0 {
			logger.Debug(ctx).Str("path", c.Path()).Str("cache_key", key).Msg("Cache hit")
			c.Set("X-Cache", "HIT")
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Send(cached)
		}

		if err := c.Next(); err != nil {
			return err
		}

		if slices.Contains(rc.config.CacheableStatus, c.Response().StatusCode()) {
			body := c.Response().Body()
			if err := rc.redis.Set(ctx, key, body, rc.config.TTL).Err(); err != nil {
				logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Failed to cache response")
			}
		}
		c.Set("X-Cache", "MISS")
		return nil
	}
}

// InvalidateOnWrite drops the service's cached responses after a successful
// non-GET request.
func (rc *Cache) InvalidateOnWrite(service string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			return err
		}
		if rc.redis == nil || c.Method() == fiber.MethodGet || c.Method() == fiber.MethodHead {
			return nil
		}
		if status := c.Response().StatusCode(); status < 200 || status >= 300 {
			return nil
		}
		if err := InvalidateCache(c.UserContext(), rc.redis, fmt.Sprintf("cache:%s:*", service)); err != nil {
			logger.Warn(c.UserContext()).Err(err).Str("service", service).Msg("Cache invalidation failed")
		}
		return nil
	}
}

// CacheKey hashes method, path, query and credentials under the service
// namespace.
func CacheKey(service string, c *fiber.Ctx) string {
	components := fmt.Sprintf("%s:%s:%s:%s",
		c.Method(),
		c.Path(),
		string(c.Request().URI().QueryString()),
		c.Get(fiber.HeaderAuthorization),
	)
	hash := sha256.Sum256([]byte(components))
	return fmt.Sprintf("cache:%s:%s", service, hex.EncodeToString(hash[:]))
}

// InvalidateCache deletes every key matching pattern.
func InvalidateCache(ctx context.Context, redisClient *redis.Client, pattern string) error {
	iter := redisClient.Scan(ctx, 0, pattern, 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) > 0 {
		if err := redisClient.Del(ctx, keys...).Err(); err != nil {
			return err
		}
		logger.Info(ctx).
			Int("count", len(keys)).
			Str("pattern", pattern).
			Msg("Cache invalidated")
	}
	return nil
}
