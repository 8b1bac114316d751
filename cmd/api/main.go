package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fx-deals/config"
	httpHandler "fx-deals/internal/adapter/http/handler"
	"fx-deals/internal/adapter/http/middleware"
	"fx-deals/internal/adapter/metrics"
	memStorage "fx-deals/internal/adapter/storage/memory"
	pgStorage "fx-deals/internal/adapter/storage/postgres"
	redisStorage "fx-deals/internal/adapter/storage/redis"
	"fx-deals/internal/core/ports"
	"fx-deals/internal/service"
	"fx-deals/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("FXD_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("storage", cfg.Storage.Driver).
		Bool("redis", cfg.Redis.Enabled).
		Msg("Starting FX Deals service")

	ctx := context.Background()

	var (
		dealRepo       ports.DealRepository
		auditRepo      ports.AuditRepository
		healthCheckers []ports.HealthChecker
	)

	// Initialize deal store
	switch cfg.Storage.Driver {
	case "postgres":
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()

		if cfg.Database.AutoMigrate {
			if err := pgStorage.Migrate(ctx, pool); err != nil {
				log.Fatal().Err(err).Msg("Failed to apply database schema")
			}
			log.Info().Msg("Database schema applied")
		}

		dealRepo = pgStorage.NewDealRepo(pool)
		auditRepo = pgStorage.NewAuditRepo(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
	case "memory":
		log.Warn().Msg("Using in-memory deal store, data is lost on restart")
		dealRepo = memStorage.NewDealRepo()
	}

	// Initialize Redis stores (dealId fast path + rate limit counters)
	var (
		dealCache      ports.DealCache
		rateLimitStore ports.RateLimitStore
	)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		dealCache = redisStorage.NewDealCache(rdb)
		if cfg.RateLimit.Enabled {
			rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		}
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	} else if cfg.RateLimit.Enabled {
		log.Warn().Msg("Redis disabled, rate limits are enforced per instance")
		rateLimitStore = middleware.NewLocalRateLimitStore()
	}

	// Metrics
	var (
		recorder ports.AdmissionRecorder
		exporter httpHandler.MetricsExporter
	)
	if cfg.Metrics.Enabled {
		prom := metrics.NewPrometheus()
		recorder = prom
		exporter = prom
	}

	// Initialize business services
	dealSvc := service.NewDealService(
		dealRepo,
		dealCache,
		recorder,
		cfg.Cache.DealTTL,
		logger.Component(log, "deal_service"),
	)
	auditSvc := service.NewAuditService(auditRepo, logger.Component(log, "audit"))

	gin.SetMode(cfg.Server.Mode)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		DealSvc:        dealSvc,
		AuditSvc:       auditSvc,
		RateLimitStore: rateLimitStore,
		RateLimit: middleware.RateLimitRule{
			Limit:  cfg.RateLimit.Limit,
			Window: cfg.RateLimit.Window,
		},
		HealthCheckers: healthCheckers,
		Metrics:        exporter,
		MetricsPath:    cfg.Metrics.Path,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
