package repository

import (
	"context"
	"time"

	"github.com/property-search-service/internal/domain"
)

// AmenityCacheRepository определяет методы для кеша результатов поиска
// инфраструктуры. Просроченные записи вытесняются лениво при чтении
type AmenityCacheRepository interface {
	// GetAmenities получает закешированный список по паре (объявление, категория).
	// Возвращает nil, nil при промахе
	GetAmenities(ctx context.Context, listingID, category string) ([]domain.AmenityPoint, error)

	// SetAmenities сохраняет список с TTL
	SetAmenities(ctx context.Context, listingID, category string, points []domain.AmenityPoint, ttl time.Duration) error

	// GetStats получает статистику из кеша
	GetStats(ctx context.Context) (*domain.ListingStatistics, error)

	// SetStats сохраняет статистику в кеше
	SetStats(ctx context.Context, stats *domain.ListingStatistics, ttl time.Duration) error

	// Size возвращает количество записей в кеше
	Size(ctx context.Context) (int, error)

	// Clear удаляет все записи
	Clear(ctx context.Context) error
}
