package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/dentalcloud/console/internal/api/router"
	"github.com/dentalcloud/console/internal/billing"
	"github.com/dentalcloud/console/internal/clinic"
	appconfig "github.com/dentalcloud/console/internal/config"
	"github.com/dentalcloud/console/internal/imaging"
	"github.com/dentalcloud/console/internal/navigation"
	"github.com/dentalcloud/console/internal/observability/metrics"
	"github.com/dentalcloud/console/internal/patients"
	"github.com/dentalcloud/console/internal/schedule"
	"github.com/dentalcloud/console/internal/tenancy"
	"github.com/dentalcloud/console/internal/treatment"
	"github.com/dentalcloud/console/internal/users"
	"github.com/dentalcloud/console/pkg/logging"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting dentalcloud console API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	if cfg.DatabaseURL == "" {
		logger.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	var cache *redis.Client
	if cfg.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := cache.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unavailable, tenant cache disabled", "addr", cfg.RedisAddr, "error", err)
			cache = nil
		}
	}

	directory := tenancy.NewDirectory(pool, tenancy.DirectoryConfig{
		Cache:               cache,
		CacheTTL:            cfg.TenantCacheTTL,
		CoverageRateDefault: cfg.CoverageRateDefault,
		Logger:              logger,
	})

	calendarMetrics := metrics.NewCalendarMetrics(nil)
	tenantMetrics := metrics.NewTenantMetrics(nil)

	scheduleService := schedule.NewService(schedule.NewRepository(pool), calendarMetrics, logger)

	routerCfg := &router.Config{
		Logger:             logger,
		Directory:          directory,
		TenantMetrics:      tenantMetrics,
		NavigationHandler:  navigation.NewHandler(logger),
		PatientsHandler:    patients.NewHandler(patients.NewRepository(pool), logger),
		ScheduleHandler:    schedule.NewHandler(scheduleService, logger),
		TreatmentHandler:   treatment.NewHandler(treatment.NewRepository(pool), logger),
		ImagingHandler:     imaging.NewHandler(imaging.NewRepository(pool), logger),
		BillingHandler:     billing.NewHandler(billing.NewRepository(pool), logger),
		UsersHandler:       users.NewHandler(users.NewRepository(pool), logger),
		StatsHandler:       clinic.NewStatsHandler(clinic.NewStatsRepository(pool), logger),
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
