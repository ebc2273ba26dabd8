package middleware

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/skavtech/ict-platform/pkg/auth"
	"github.com/skavtech/ict-platform/pkg/logger"
)

// Locals keys set by AuthMiddleware.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalRole     = "role"
	// LocalService is set by the router to the backend service name.
	LocalService = "service"
)

// AuthMiddleware validates JWT tokens and forwards the caller identity to
// backend services as X-User-* headers.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Authorization header required",
			})
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid authorization header format",
			})
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			logger.Warn(c.UserContext()).Err(err).Str("path", c.Path()).Msg("Rejected token at gateway")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid token",
			})
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalRole, claims.Role)

		c.Request().Header.Set("X-User-ID", strconv.FormatUint(uint64(claims.UserID), 10))
		c.Request().Header.Set("X-Username", claims.Username)
		c.Request().Header.Set("X-User-Role", claims.Role)

		return c.Next()
	}
}

// AdminMiddleware must run after AuthMiddleware.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if role, _ := c.Locals(LocalRole).(string); role != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"error":   "Insufficient permissions",
			})
		}
		return c.Next()
	}
}

// StripIdentityHeaders drops client supplied X-User-* headers so that only
// AuthMiddleware can set them.
func StripIdentityHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, h := range []string{"X-User-ID", "X-Username", "X-User-Role"} {
			c.Request().Header.Del(h)
		}
		return c.Next()
	}
}
