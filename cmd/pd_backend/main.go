package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/patient_decisions_app/internal/core/ports/repositories"
	"github.com/SscSPs/patient_decisions_app/internal/core/services"
	"github.com/SscSPs/patient_decisions_app/internal/handlers"
	"github.com/SscSPs/patient_decisions_app/internal/middleware"
	"github.com/SscSPs/patient_decisions_app/internal/platform/clock"
	"github.com/SscSPs/patient_decisions_app/internal/platform/config"
	"github.com/SscSPs/patient_decisions_app/internal/platform/identity"
	"github.com/SscSPs/patient_decisions_app/internal/platform/logger"
	"github.com/SscSPs/patient_decisions_app/internal/platform/metrics"
	"github.com/SscSPs/patient_decisions_app/internal/platform/ratelimit"
	"github.com/SscSPs/patient_decisions_app/internal/platform/redis"
	"github.com/SscSPs/patient_decisions_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/patient_decisions_app/internal/repositories/memory"
	"github.com/SscSPs/patient_decisions_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title Patient Decisions API
// @version 1.0
// @description Foundation services for patient decisions, decision types and consumer adoptions.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(os.Stdout, cfg.IsProduction)
	slog.SetDefault(log)

	ctx := context.Background()
	checks := map[string]handlers.HealthCheck{}

	var repos repositories.RepositoryProvider
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		log.Warn("Using in-memory storage; data is lost on restart")
		repos = memory.NewRepositoryProvider()
	default:
		if cfg.RunMigrations {
			if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, database.MigrateUp, log); err != nil {
				log.Error("Failed to apply migrations", slog.String("error", err.Error()))
				os.Exit(1)
			}
		}

		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			log.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.ClosePgxPool(dbPool, log)

		checks["database"] = dbPool.Ping
		repos = pgsql.NewRepositoryProvider(dbPool)
	}

	redisClient, err := redis.New(ctx, cfg.RedisURL)
	if err != nil {
		log.Error("Failed to connect to redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		checks["redis"] = redisClient.Health
		log.Info("Rate limiting backed by redis")
	}

	rateLimiter, err := ratelimit.New(cfg.RateLimit, redisClient)
	if err != nil {
		log.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	serviceContainer := services.NewServiceContainer(
		cfg,
		repos,
		clock.System{},
		identity.ContextProvider{},
		metrics.New(registry),
	)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AddAllowHeaders("Authorization")

	// Global middleware (logging, recovery, cors, rate limiting)
	r.Use(
		middleware.StructuredLoggingMiddleware(log),
		gin.Recovery(),
		cors.New(corsConfig),
		middleware.RateLimit(rateLimiter),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, registry, checks)

	log.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("storage", cfg.StorageDriver))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
