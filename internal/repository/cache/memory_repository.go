package cache

import (
	"context"
	"sync"
	"time"

	"github.com/property-search-service/internal/domain"
	"github.com/property-search-service/internal/domain/repository"
	"go.uber.org/zap"
)

type entry struct {
	payload   interface{}
	timestamp time.Time
	ttl       time.Duration
}

func (e entry) expired(now time.Time) bool {
	return now.Sub(e.timestamp) > e.ttl
}

// memoryRepository - кеш в памяти процесса с ленивым вытеснением по TTL.
// Размер не ограничен, фоновой очистки нет: просроченная запись удаляется
// при чтении, которое её обнаружило. Мьютекс защищает только саму map;
// конкурирующие промахи по одному ключу допускаются (last write wins)
type memoryRepository struct {
	mu      sync.Mutex
	entries map[string]entry
	logger  *zap.Logger
}

const statsKey = "stats:current"

// NewMemoryRepository создаёт in-memory кеш
func NewMemoryRepository(logger *zap.Logger) repository.AmenityCacheRepository {
	return &memoryRepository{
		entries: make(map[string]entry),
		logger:  logger,
	}
}

func amenityKey(listingID, category string) string {
	return listingID + ":" + category
}

func (r *memoryRepository) get(key string) (interface{}, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[key]
	if !ok {
		return nil, false
	}
	if e.expired(time.Now()) {
		delete(r.entries, key)
		return nil, false
	}
	return e.payload, true
}

func (r *memoryRepository) set(key string, payload interface{}, ttl time.Duration) {
	if ttl <= 0 {
		ttl = time.Hour
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[key] = entry{
		payload:   payload,
		timestamp: time.Now(),
		ttl:       ttl,
	}
}

func (r *memoryRepository) GetAmenities(_ context.Context, listingID, category string) ([]domain.AmenityPoint, error) {
	payload, ok := r.get(amenityKey(listingID, category))
	if !ok {
		return nil, nil // Cache miss
	}

	points, ok := payload.([]domain.AmenityPoint)
	if !ok {
		return nil, nil
	}

	r.logger.Debug("Amenity cache hit",
		zap.String("listing_id", listingID),
		zap.String("category", category),
	)

	// Копия, чтобы вызывающая сторона не изменила закешированный срез
	out := make([]domain.AmenityPoint, len(points))
	copy(out, points)
	return out, nil
}

func (r *memoryRepository) SetAmenities(_ context.Context, listingID, category string, points []domain.AmenityPoint, ttl time.Duration) error {
	stored := make([]domain.AmenityPoint, len(points))
	copy(stored, points)

	r.set(amenityKey(listingID, category), stored, ttl)

	r.logger.Debug("Amenity cache set",
		zap.String("listing_id", listingID),
		zap.String("category", category),
		zap.Duration("ttl", ttl),
	)
	return nil
}

func (r *memoryRepository) GetStats(_ context.Context) (*domain.ListingStatistics, error) {
	payload, ok := r.get(statsKey)
	if !ok {
		return nil, nil // Cache miss
	}

	stats, ok := payload.(domain.ListingStatistics)
	if !ok {
		return nil, nil
	}
	return &stats, nil
}

func (r *memoryRepository) SetStats(_ context.Context, stats *domain.ListingStatistics, ttl time.Duration) error {
	r.set(statsKey, *stats, ttl)
	return nil
}

func (r *memoryRepository) Size(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries), nil
}

func (r *memoryRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[string]entry)
	return nil
}
