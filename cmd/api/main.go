package main

// @title Property Search Service API
// @version 1.0.0
// @description Бэкенд поиска объявлений о продаже недвижимости. Предоставляет API для фильтрации, сортировки и пагинации объявлений, поиска инфраструктуры рядом с объектом и оценки пеших маршрутов.
// @description
// @description Основные возможности:
// @description - Поиск объявлений по городу, цене, типу и числу спален
// @description - Агрегированная статистика по объявлениям
// @description - Инфраструктура рядом с объявлением с ранжированием по расстоянию
// @description - Оценка маршрута по прямой от объявления до места

// @contact.name API Support
// @contact.email support@property-search-service.com

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

	_ "github.com/property-search-service/docs"
	"github.com/property-search-service/internal/config"
	httpDelivery "github.com/property-search-service/internal/delivery/http"
	"github.com/property-search-service/internal/delivery/http/handler"
	"github.com/property-search-service/internal/domain/repository"
	"github.com/property-search-service/internal/infrastructure/places"
	"github.com/property-search-service/internal/pkg/logger"
	"github.com/property-search-service/internal/repository/cache"
	"github.com/property-search-service/internal/repository/memory"
	"github.com/property-search-service/internal/repository/postgres"
	"github.com/property-search-service/internal/usecase"
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

	log.Info("Starting Property Search Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("data_source", cfg.DataSource),
		zap.String("cache_backend", cfg.Cache.Backend),
		zap.String("places_provider", cfg.Places.Provider),
	)

	// 3. Initialize listing repository
	var listingRepo repository.ListingRepository

	switch cfg.DataSource {
	case config.DataSourcePostgres:
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		log.Info("PostgreSQL connected")

		listingRepo = postgres.NewListingRepository(db)
	default:
		listingRepo = memory.NewListingRepository(log)
		log.Info("Using in-memory listings")
	}

	// 4. Initialize amenity cache
	var cacheRepo repository.AmenityCacheRepository

	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
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

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Health(ctx); err != nil {
			cancel()
			log.Fatal("Redis health check failed", zap.Error(err))
		}
		cancel()

		cacheRepo = cache.NewRedisRepository(redisClient)
	default:
		cacheRepo = cache.NewMemoryRepository(log)
		log.Info("Using in-memory amenity cache")
	}

	// 5. Initialize places provider
	var placesRepo repository.PlacesRepository

	switch cfg.Places.Provider {
	case config.PlacesProviderGoogle:
		placesRepo = places.NewGoogleClient(&cfg.Places, log)
		log.Info("Using Google Places provider")
	default:
		placesRepo = places.NewSimulator(log)
		log.Info("Using simulated places provider")
	}

	log.Info("Repositories initialized")

	// 6. Initialize Use Cases
	searchUC := usecase.NewSearchUseCase(listingRepo, log)
	statsUC := usecase.NewStatsUseCase(listingRepo, cacheRepo, log, cfg.Cache.StatsTTL)
	amenityUC := usecase.NewAmenityUseCase(listingRepo, placesRepo, cacheRepo, log, cfg.Cache.AmenityTTL)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Handlers
	propertyHandler := handler.NewPropertyHandler(searchUC, statsUC, log)
	amenityHandler := handler.NewAmenityHandler(amenityUC, log)

	log.Info("HTTP handlers initialized")

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, propertyHandler, amenityHandler)

	log.Info("HTTP server initialized")

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
