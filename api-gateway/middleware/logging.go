package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/trace"

	"github.com/skavtech/ict-platform/pkg/logger"
)

// RequestLogger logs one line per proxied request. The level follows the
// response status.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		ctx := c.UserContext()
		status := c.Response().StatusCode()
		duration := time.Since(start)

		event := logger.WithContext(ctx).Info()
		switch {
		case err != nil || status >= fiber.StatusInternalServerError:
			event = logger.WithContext(ctx).Error().Err(err)
		case status >= fiber.StatusBadRequest:
			event = logger.WithContext(ctx).Warn()
		}

		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
			event = event.Str("trace_id", sc.TraceID().String())
		}
		if userID := c.Locals(LocalUserID); userID != nil {
			event = event.Interface("user_id", userID)
		}

		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("ip", c.IP()).
			Int("status", status).
			Int64("duration_ms", duration.Milliseconds()).
			Int("response_size", len(c.Response().Body())).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Str("cache", c.GetRespHeader("X-Cache")).
			Msg("Gateway request")

		return err
	}
}
