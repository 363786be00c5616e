package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/country-explorer/internal/config"
	"github.com/country-explorer/internal/infrastructure/restcountries"
	"github.com/country-explorer/internal/pkg/logger"
	"github.com/country-explorer/internal/repository/cache"
	"github.com/country-explorer/internal/usecase"
	"github.com/country-explorer/internal/worker/catalog"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Catalog Refresh Worker")
	log.Info("Configuration loaded",
		zap.Duration("refresh_interval", cfg.Worker.RefreshInterval),
		zap.String("countries_api", cfg.Countries.BaseURL))

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 4. Initialize repositories and use case
	countryRepo := restcountries.NewClient(&cfg.Countries, log)
	cacheRepo := cache.NewCacheRepository(redisClient, log)

	catalogUC := usecase.NewCatalogUseCase(
		countryRepo,
		cacheRepo,
		log,
		cfg.Cache.CatalogTTL,
	)
	defer catalogUC.Close()

	// 5. Start worker
	refreshWorker := catalog.NewRefreshWorker(catalogUC, cfg.Worker.RefreshInterval, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- refreshWorker.Start(ctx)
	}()

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case <-quit:
		log.Info("Shutting down worker gracefully...")
		if err := refreshWorker.Stop(); err != nil {
			log.Error("Worker stop error", zap.Error(err))
		}
		<-done
	case err := <-done:
		if err != nil {
			log.Error("Worker exited with error", zap.Error(err))
		}
	}

	log.Info("Worker stopped successfully")
}
