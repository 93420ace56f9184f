package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/mma_web/internal/adapters/backend"
	"github.com/SscSPs/mma_web/internal/adapters/database/pgsql"
	portsrepo "github.com/SscSPs/mma_web/internal/core/ports/repositories"
	"github.com/SscSPs/mma_web/internal/core/services"
	"github.com/SscSPs/mma_web/internal/handlers"
	"github.com/SscSPs/mma_web/internal/middleware"
	"github.com/SscSPs/mma_web/internal/platform/config"
	"github.com/SscSPs/mma_web/internal/utils"
	"github.com/SscSPs/mma_web/internal/utils/accounting"
	"github.com/SscSPs/mma_web/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const sessionCleanupInterval = 15 * time.Minute

// @title MMA Web API
// @version 1.0
// @description Web layer for double-entry bookkeeping against an accounting backend.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(dbPool)

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		return err
	}

	kinds, err := accounting.LoadKinds(cfg.EntryKindsFile)
	if err != nil {
		return err
	}

	cipher, err := utils.NewTokenCipher(cfg.SessionEncryptionKey)
	if err != nil {
		return err
	}

	backendClient, err := backend.NewClient(backend.Config{
		BaseURL:            cfg.BackendBaseURL,
		Timeout:            cfg.BackendTimeout,
		BreakerMaxFailures: cfg.BackendBreakerMaxFailures,
		BreakerTimeout:     cfg.BackendBreakerTimeout,
		Logger:             logger,
	})
	if err != nil {
		return err
	}

	var redisClient redis.UniversalClient
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return err
		}
		client := redis.NewClient(opts)
		defer client.Close()
		redisClient = client
		logger.Info("Using redis for rate limiting")
	}
	loginLimiter, err := middleware.NewLimiter(cfg.LoginRateLimit, redisClient)
	if err != nil {
		return err
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, backendClient, cipher, kinds, posthogClient)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, handlers.RouteOptions{
		DB:           dbPool,
		LoginLimiter: loginLimiter,
		Tracker:      posthogClient,
	})

	go cleanupExpiredSessions(ctx, repos.SessionRepo, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// cleanupExpiredSessions removes expired sessions until ctx is cancelled.
func cleanupExpiredSessions(ctx context.Context, sessions portsrepo.SessionLifecycleManager, logger *slog.Logger) {
	ticker := time.NewTicker(sessionCleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			removed, err := sessions.DeleteExpiredSessions(ctx, now)
			if err != nil {
				logger.Warn("Failed to delete expired sessions", slog.String("error", err.Error()))
				continue
			}
			if removed > 0 {
				logger.Info("Deleted expired sessions", slog.Int64("count", removed))
			}
		}
	}
}
