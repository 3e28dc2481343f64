package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/books_ledger/internal/core/services"
	"github.com/SscSPs/books_ledger/internal/dto"
	"github.com/SscSPs/books_ledger/internal/handlers"
	"github.com/SscSPs/books_ledger/internal/middleware"
	"github.com/SscSPs/books_ledger/internal/platform/config"
	"github.com/SscSPs/books_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/books_ledger/internal/repositories/lock"
	"github.com/SscSPs/books_ledger/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Books Ledger API
// @version 1.0
// @description Multi-tenant general ledger: posting ingestion, stock valuation and financial statements.

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logger.Warn("Unknown LOG_LEVEL, keeping info", slog.String("log_level", cfg.LogLevel))
	}

	if err := dto.RegisterValidators(); err != nil {
		logger.Error("Failed to register request validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	logger.Info("Running database migrations...")
	changed, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, database.MigrateUp)
	if err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if changed {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	locker, closeLocker, err := newDocumentLocker(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize document locker", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeLocker()

	serviceContainer, err := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool), locker)
	if err != nil {
		logger.Error("Failed to initialize services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to initialize rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if corsMiddleware, ok := newCORS(cfg); ok {
		r.Use(corsMiddleware)
	} else {
		logger.Warn("CORS_ALLOWED_ORIGINS is empty, cross-origin requests are refused")
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, rateLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newDocumentLocker returns the redis locker when redis is configured and the
// in-process locker otherwise.
func newDocumentLocker(ctx context.Context, cfg *config.Config) (portsrepo.DocumentLocker, func(), error) {
	if !cfg.Redis.Enabled() {
		return lock.NewMemoryLocker(cfg.DocumentLockTTL), func() {}, nil
	}

	rdb, err := lock.ConnectRedisWithRetry(ctx, cfg.Redis, 5)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if cerr := rdb.Close(); cerr != nil {
			slog.Error("Error closing redis client", slog.String("error", cerr.Error()))
		}
	}
	return lock.NewRedisLocker(rdb, cfg.DocumentLockTTL, cfg.DocumentLockTTL), closeFn, nil
}

// newCORS builds the CORS middleware. Development allows any origin when none is configured.
func newCORS(cfg *config.Config) (gin.HandlerFunc, bool) {
	corsConfig := cors.DefaultConfig()
	switch {
	case len(cfg.CORSAllowedOrigins) > 0:
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	case !cfg.IsProduction:
		corsConfig.AllowAllOrigins = true
	default:
		return nil, false
	}
	corsConfig.AddAllowMethods("GET", "POST", "PUT", "DELETE", "OPTIONS")
	corsConfig.AddAllowHeaders("Origin", "Content-Type", "Authorization", "X-Request-ID")
	corsConfig.AddExposeHeaders("Content-Length", "Content-Disposition", "X-Request-ID",
		"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset")
	corsConfig.MaxAge = 12 * time.Hour
	return cors.New(corsConfig), true
}
