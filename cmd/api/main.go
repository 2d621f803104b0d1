package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/herbtrace/internal/api/middleware"
	"github.com/linskybing/herbtrace/internal/api/routes"
	"github.com/linskybing/herbtrace/internal/config"
	"github.com/linskybing/herbtrace/internal/config/db"
	"github.com/linskybing/herbtrace/internal/cron"
	"github.com/linskybing/herbtrace/pkg/logger"
	"github.com/linskybing/herbtrace/pkg/storage"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	zl, err := logger.Init(config.LogLevel, config.IsProduction)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	// Initialize JWT signing key
	middleware.Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db.Init()
	if err := db.Migrate(db.DB); err != nil {
		zl.Fatal("Failed to migrate database", zap.Error(err))
	}

	var store storage.ObjectStore
	if config.MinioEnabled {
		ms, err := storage.NewMinioStore(ctx, storage.MinioConfig{
			Endpoint:  config.MinioEndpoint,
			AccessKey: config.MinioAccessKey,
			SecretKey: config.MinioSecretKey,
			Bucket:    config.MinioBucket,
			UseSSL:    config.MinioUseSSL,
		})
		if err != nil {
			// Archiving is optional; keep serving without it.
			zl.Warn("Object storage unavailable, archiving disabled", zap.Error(err))
		} else {
			store = ms
			zl.Info("Archiving to object storage", zap.String("bucket", config.MinioBucket))
		}
	}

	if config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware())

	services, err := routes.RegisterRoutes(router, db.DB, store)
	if err != nil {
		zl.Fatal("Failed to register routes", zap.Error(err))
	}

	cron.StartCleanupTask(ctx, services.Audit, config.AuditRetentionDays)

	srv := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("Starting API server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("Failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("Graceful shutdown failed", zap.Error(err))
	}
}
