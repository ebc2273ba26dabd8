package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/skavtech/ict-platform/internal/user"
	httpDelivery "github.com/skavtech/ict-platform/internal/user/delivery/http"
	_ "github.com/skavtech/ict-platform/internal/user/docs"
	"github.com/skavtech/ict-platform/internal/user/repository"
	"github.com/skavtech/ict-platform/internal/user/usecase/command"
	"github.com/skavtech/ict-platform/pkg/auth"
	"github.com/skavtech/ict-platform/pkg/config"
	"github.com/skavtech/ict-platform/pkg/database"
	"github.com/skavtech/ict-platform/pkg/logger"
	"github.com/skavtech/ict-platform/pkg/middleware"
	"github.com/skavtech/ict-platform/pkg/tracing"
)

func main() {
	cfg, err := config.Load(config.Defaults{
		ServiceName: "user-service",
		HTTPPort:    "8080",
		DBName:      "userdb",
	})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)
	auth.Configure(cfg.JWT.Secret, cfg.JWT.TTL)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Msg("Starting user service")

	tp, err := tracing.InitTracer(cfg.ServiceName, cfg.JaegerEndpoint)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
		}
	}()

	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	if err := repository.NewGormUserRepository(db).AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	if cfg.Admin.Username != "" {
		created, err := command.NewBootstrapAdminHandler(user.ProvideUserRepository(db)).
			Handle(context.Background(), cfg.Admin.Username, cfg.Admin.Password)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to bootstrap admin account")
		}
		if created {
			logger.Logger.Info().Str("username", cfg.Admin.Username).Msg("Bootstrap admin account created")
		}
	}

	handler, err := user.InitializeHTTPHandler(db, prometheus.DefaultRegisterer)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handler")
	}

	mwConfig := middleware.DefaultConfig(cfg.ServiceName)
	router := mux.NewRouter()
	middleware.Register(router, mwConfig)
	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router, sqlDB)
	router.Handle("/metrics", promhttp.Handler())
	httpDelivery.RegisterSwaggerDocs(router, httpSwagger.WrapHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           middleware.CORS(mwConfig)(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger", "/swagger/index.html").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}
}
