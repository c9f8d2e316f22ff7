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

	"github.com/SscSPs/pto_ledger_service/internal/core/services"
	"github.com/SscSPs/pto_ledger_service/internal/handlers"
	"github.com/SscSPs/pto_ledger_service/internal/middleware"
	"github.com/SscSPs/pto_ledger_service/internal/platform/bootstrap"
	"github.com/SscSPs/pto_ledger_service/internal/platform/config"
	"github.com/SscSPs/pto_ledger_service/internal/repositories/recordstore"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// @title PTO Ledger API
// @version 1.0
// @description Keeps employee PTO balances and their audit trail in the record store.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := bootstrap.NewLogger(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	// balances and day counts go out as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()

	store, closeStore, err := bootstrap.OpenRecordStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize record store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	locker, closeLocker, err := bootstrap.NewLocker(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize balance lock", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeLocker()

	publisher := bootstrap.NewPublisher(cfg, logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Failed to close event publisher", slog.String("error", err.Error()))
		}
	}()

	repos := recordstore.NewRepositoryProvider(store)
	serviceContainer := services.NewServiceContainer(cfg, repos, locker, publisher)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	corsConfig.AddAllowHeaders(middleware.RequestIDHeader)
	corsConfig.AddExposeHeaders(middleware.RequestIDHeader)

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(corsConfig),
		middleware.RateLimit(rateLimiter),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("record_store", cfg.RecordStore))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shut down", slog.String("error", err.Error()))
	}
}
