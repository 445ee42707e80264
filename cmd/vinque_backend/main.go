package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	portsrepo "github.com/vinque/vinque_backend/internal/core/ports/repositories"
	"github.com/vinque/vinque_backend/internal/core/services"
	"github.com/vinque/vinque_backend/internal/handlers"
	"github.com/vinque/vinque_backend/internal/middleware"
	"github.com/vinque/vinque_backend/internal/platform/config"
	"github.com/vinque/vinque_backend/internal/platform/mailer"
	"github.com/vinque/vinque_backend/internal/platform/metrics"
	"github.com/vinque/vinque_backend/internal/platform/ratelimit"
	"github.com/vinque/vinque_backend/internal/repositories/database/pgsql"
	"github.com/vinque/vinque_backend/internal/repositories/storage"
	"github.com/vinque/vinque_backend/internal/utils"
	"github.com/vinque/vinque_backend/pkg/database"
)

// authRate is the per-IP allowance on credential endpoints.
const authRate = "5-M"

// @title Vinque API
// @version 1.0
// @description REST backend of the Vinque antiques marketplace.

// @host localhost:5000
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Server stopped")
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.DBConnectTimeout, logger)
	if err != nil {
		return fmt.Errorf("initialize database pool: %w", err)
	}
	defer database.ClosePgxPool(dbPool, logger)

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, "file://migrations", logger); err != nil {
		return err
	}

	store, err := newFileStore(ctx, cfg)
	if err != nil {
		return err
	}

	limiterStore, closeLimiterStore, err := ratelimit.NewStore(ctx, cfg.RedisURL, "vinque", logger)
	if err != nil {
		return fmt.Errorf("initialize rate limiter: %w", err)
	}
	defer func() {
		if err := closeLimiterStore(); err != nil {
			logger.Error("Error closing rate limiter store", slog.String("error", err.Error()))
		}
	}()
	ipLimiter, err := ratelimit.NewIPLimiter(limiterStore, authRate)
	if err != nil {
		return err
	}
	attempts := ratelimit.NewAttemptLimiter(limiterStore, cfg.RateLimitAttempts, cfg.RateLimitWindow)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	fileMetrics, err := metrics.NewFileMetrics(registry)
	if err != nil {
		return fmt.Errorf("register file metrics: %w", err)
	}
	httpMetrics, err := middleware.NewHTTPMetrics(middleware.HTTPMetricsOptions{
		Registerer: registry,
		Namespace:  metrics.Namespace,
	})
	if err != nil {
		return fmt.Errorf("register http metrics: %w", err)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)

	sweeper := services.NewCleanupSweeper(repos.CleanupQueue, store, fileMetrics, cfg.CleanupSweepInterval, logger)
	go sweeper.Run(ctx)

	mail := mailer.New(mailer.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.EmailUser,
		Password: cfg.EmailPass,
	}, logger)

	svc := services.NewServiceContainer(cfg, repos, services.Dependencies{
		Store:    store,
		Mailer:   mail,
		Attempts: attempts,
		Metrics:  fileMetrics,
		Sweeper:  sweeper,
	})

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.MaxMultipartMemory = cfg.MaxPermitBytes

	// Global middleware (logging, recovery)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.AllowedOrigins),
		httpMetrics.Handler(),
		middleware.ErrorHandler(),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("set trusted proxies: %w", err)
	}

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	handlers.RegisterRoutes(r, cfg, svc, ipLimiter)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.StorageDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

// newFileStore opens the upload store selected by STORAGE_DRIVER.
func newFileStore(ctx context.Context, cfg *config.Config) (portsrepo.FileStore, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMinio:
		store, err := storage.NewMinioStore(ctx, cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
		if err != nil {
			return nil, fmt.Errorf("initialize minio store: %w", err)
		}
		return store, nil
	default:
		store, err := storage.NewLocalStore(cfg.UploadsDir)
		if err != nil {
			return nil, fmt.Errorf("initialize local store: %w", err)
		}
		return store, nil
	}
}
