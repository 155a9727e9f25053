package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/property-search-service/internal/domain"
	"github.com/property-search-service/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// redisRepository - кеш инфраструктуры поверх Redis. Записи хранятся как JSON,
// TTL делегируется самому Redis
type redisRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisRepository создаёт Redis-кеш
func NewRedisRepository(r *Redis) repository.AmenityCacheRepository {
	return &redisRepository{
		client: r.Client(),
		logger: r.logger,
	}
}

func (r *redisRepository) GetAmenities(ctx context.Context, listingID, category string) ([]domain.AmenityPoint, error) {
	key := "amenities:" + amenityKey(listingID, category)

	data, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get amenities from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	var points []domain.AmenityPoint
	if err := json.Unmarshal(data, &points); err != nil {
		r.logger.Error("Failed to unmarshal cached amenities", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("unmarshal amenities: %w", err)
	}

	r.logger.Debug("Amenity cache hit", zap.String("key", key))
	return points, nil
}

func (r *redisRepository) SetAmenities(ctx context.Context, listingID, category string, points []domain.AmenityPoint, ttl time.Duration) error {
	key := "amenities:" + amenityKey(listingID, category)

	data, err := json.Marshal(points)
	if err != nil {
		r.logger.Error("Failed to marshal amenities", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("marshal amenities: %w", err)
	}

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		r.logger.Error("Failed to set amenities cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Amenity cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *redisRepository) GetStats(ctx context.Context) (*domain.ListingStatistics, error) {
	data, err := r.client.Get(ctx, statsKey).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get stats from cache", zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	var stats domain.ListingStatistics
	if err := json.Unmarshal(data, &stats); err != nil {
		r.logger.Error("Failed to unmarshal stats from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal stats: %w", err)
	}

	return &stats, nil
}

func (r *redisRepository) SetStats(ctx context.Context, stats *domain.ListingStatistics, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		r.logger.Error("Failed to marshal stats", zap.Error(err))
		return fmt.Errorf("marshal stats: %w", err)
	}

	return r.client.Set(ctx, statsKey, data, ttl).Err()
}

func (r *redisRepository) Size(ctx context.Context) (int, error) {
	n, err := r.client.DBSize(ctx).Result()
	if err != nil {
		return 0, fmt.Errorf("cache size error: %w", err)
	}
	return int(n), nil
}

func (r *redisRepository) Clear(ctx context.Context) error {
	return r.client.FlushDB(ctx).Err()
}
