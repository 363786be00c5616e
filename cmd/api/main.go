package main

// @title Country Explorer API
// @version 1.0.0
// @description Сервис-обозреватель стран поверх публичного REST Countries API. Каталог с поиском, фильтрацией по региону и сортировкой, детальные страницы с соседями, избранное с заметками, экспортом и импортом за mock-логином.
// @description
// @description Основные возможности:
// @description - Каталог стран с регистронезависимым поиском и стабильной сортировкой
// @description - Поиск по мере ввода с дебаунсом на стороне сервиса
// @description - Детальная страница страны с обогащением стран-соседей
// @description - Сессионное избранное: заметки, недавние, экспорт/импорт
// @description - Mock-аутентификация с cookie-сессией и route guard'ом

// @contact.name API Support
// @contact.email support@country-explorer.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/country-explorer/internal/config"
	httpDelivery "github.com/country-explorer/internal/delivery/http"
	"github.com/country-explorer/internal/delivery/http/handler"
	"github.com/country-explorer/internal/infrastructure/restcountries"
	"github.com/country-explorer/internal/pkg/logger"
	"github.com/country-explorer/internal/repository/cache"
	"github.com/country-explorer/internal/usecase"
	_ "github.com/country-explorer/docs"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Country Explorer")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("countries_api", cfg.Countries.BaseURL),
	)

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

	// 4. Health check
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	// 5. Initialize Repositories
	countryRepo := restcountries.NewClient(&cfg.Countries, log)
	cacheRepo := cache.NewCacheRepository(redisClient, log)
	sessionRepo := cache.NewSessionRepository(redisClient, log)

	log.Info("Repositories initialized")

	// 6. Initialize Use Cases
	catalogUC := usecase.NewCatalogUseCase(
		countryRepo,
		cacheRepo,
		log,
		cfg.Cache.CatalogTTL,
	)
	defer catalogUC.Close()

	countryUC := usecase.NewCountryUseCase(
		countryRepo,
		cacheRepo,
		log,
		cfg.Cache.DetailTTL,
	)

	favoritesUC := usecase.NewFavoritesUseCase(
		sessionRepo,
		log,
		cfg.Session.TTL,
	)

	authUC := usecase.NewAuthUseCase(
		sessionRepo,
		log,
		cfg.Session.TTL,
	)

	liveSearchUC := usecase.NewLiveSearchUseCase(
		catalogUC,
		log,
		cfg.Search.DebounceDelay,
	)
	defer liveSearchUC.Close()

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Handlers
	countryHandler := handler.NewCountryHandler(catalogUC, countryUC, liveSearchUC, &cfg.Session, log)
	favoritesHandler := handler.NewFavoritesHandler(favoritesUC, log)
	authHandler := handler.NewAuthHandler(authUC, liveSearchUC, &cfg.Session, log)

	log.Info("HTTP handlers initialized")

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		countryHandler,
		favoritesHandler,
		authHandler,
		authUC,
	)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
