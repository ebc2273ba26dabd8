package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"

	"github.com/skavtech/ict-platform/api-gateway/config"
	"github.com/skavtech/ict-platform/api-gateway/health"
	"github.com/skavtech/ict-platform/api-gateway/middleware"
	"github.com/skavtech/ict-platform/api-gateway/proxy"
	"github.com/skavtech/ict-platform/api-gateway/routes"
	"github.com/skavtech/ict-platform/pkg/auth"
	"github.com/skavtech/ict-platform/pkg/logger"
	"github.com/skavtech/ict-platform/pkg/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)
	auth.Configure(cfg.JWT.Secret, cfg.JWT.TTL)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Msg("Starting API Gateway")

	tp, err := tracing.InitTracer(cfg.ServiceName, cfg.JaegerEndpoint)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	deps := routes.Dependencies{
		Proxy:    proxy.NewReverseProxy(cfg),
		Health:   health.NewHealthChecker(cfg),
		Breakers: middleware.NewCircuitBreakerManager(cfg.Breaker.MaxFailures, cfg.Breaker.OpenTimeout),
	}

	if redisClient := connectRedis(cfg); redisClient != nil {
		defer redisClient.Close()
		deps.Cache = middleware.NewCache(redisClient, middleware.CacheConfig{
			TTL:             cfg.CacheTTL,
			CacheableStatus: []int{fiber.StatusOK},
		})
		deps.RateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit.Requests, cfg.RateLimit.Window)
		logger.Logger.Info().
			Dur("cache_ttl", cfg.CacheTTL).
			Int("rate_limit", cfg.RateLimit.Requests).
			Dur("rate_window", cfg.RateLimit.Window).
			Msg("Response caching and rate limiting enabled")
	} else {
		logger.Logger.Warn().Msg("Redis unavailable, caching and rate limiting disabled")
	}

	app := fiber.New(fiber.Config{
		AppName:      "ICT Platform API Gateway",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  30 * time.Second,
		ErrorHandler: errorHandler,
	})
	setupMiddleware(app, cfg.CORSOrigins)
	routes.SetupRoutes(app, deps)

	go func() {
		for name, svc := range cfg.Services {
			logger.Logger.Info().Str("service", name).Strs("instances", svc.Instances).Msg("Routing to service")
		}
		logger.Logger.Info().Str("port", cfg.HTTPPort).Msg("API Gateway listening")

		if err := app.Listen(":" + cfg.HTTPPort); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down API Gateway...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}
}

func connectRedis(cfg *config.GatewayConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Logger.Warn().Err(err).Str("redis_addr", cfg.Redis.Addr).Msg("Failed to connect to Redis")
		client.Close()
		return nil
	}
	logger.Logger.Info().Str("redis_addr", cfg.Redis.Addr).Msg("Connected to Redis")
	return client
}

// setupMiddleware installs the global chain. Compression sits outside the
// tracing and logging layers so they observe uncompressed bodies.
func setupMiddleware(app *fiber.App, corsOrigins string) {
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  corsOrigins,
		AllowMethods:  "GET,POST,PUT,DELETE,PATCH,OPTIONS,HEAD",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, X-Request-Id, traceparent, tracestate",
		ExposeHeaders: "X-Request-Id, X-Trace-Id, X-Cache, X-RateLimit-Limit, X-RateLimit-Remaining, X-RateLimit-Reset",
		MaxAge:        86400,
	}))
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	app.Use(middleware.StripIdentityHeaders())
	app.Use(middleware.Tracing())
	app.Use(middleware.RequestLogger())
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		logger.Error(c.UserContext()).Err(err).Str("path", c.Path()).Msg("Unhandled gateway error")
	}
	return c.Status(code).JSON(fiber.Map{
		"success":   false,
		"error":     err.Error(),
		"path":      c.Path(),
		"requestId": c.GetRespHeader(fiber.HeaderXRequestID),
	})
}
