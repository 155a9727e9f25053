package usecase

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/property-search-service/internal/domain"
	"github.com/property-search-service/internal/domain/repository"
)

// StatsUseCase - агрегированная статистика по объявлениям с кешированием
type StatsUseCase struct {
	listingRepo repository.ListingRepository
	cacheRepo   repository.AmenityCacheRepository
	logger      *zap.Logger
	statsTTL    time.Duration
}

// NewStatsUseCase - создание нового StatsUseCase
func NewStatsUseCase(
	listingRepo repository.ListingRepository,
	cacheRepo repository.AmenityCacheRepository,
	logger *zap.Logger,
	statsTTL time.Duration,
) *StatsUseCase {
	if statsTTL <= 0 {
		statsTTL = time.Hour
	}
	return &StatsUseCase{
		listingRepo: listingRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		statsTTL:    statsTTL,
	}
}

// GetStatistics возвращает статистику из кеша или пересчитывает её
// по всем объявлениям
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.ListingStatistics, error) {
	cached, err := uc.cacheRepo.GetStats(ctx)
	if err != nil {
		uc.logger.Warn("Stats cache read failed", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	listings, err := uc.listingRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to get listings for statistics", zap.Error(err))
		return nil, err
	}

	stats := computeStatistics(listings)

	if err := uc.cacheRepo.SetStats(ctx, stats, uc.statsTTL); err != nil {
		uc.logger.Warn("Stats cache write failed", zap.Error(err))
	}

	return stats, nil
}

func computeStatistics(listings []domain.Listing) *domain.ListingStatistics {
	stats := &domain.ListingStatistics{
		TotalProperties: len(listings),
		Cities:          []string{},
		PropertyTypes:   []string{},
	}

	citySet := make(map[string]struct{})
	typeSet := make(map[string]struct{})
	var priceSum int64

	for _, l := range listings {
		if l.Status == domain.StatusAvailable {
			stats.AvailableProperties++
		}

		priceSum += l.Price
		citySet[l.Location.City] = struct{}{}
		typeSet[l.PropertyType] = struct{}{}

		switch {
		case l.Price < 5_000_000:
			stats.PriceRanges.Under5M++
		case l.Price < 10_000_000:
			stats.PriceRanges.From5M++
		case l.Price < 20_000_000:
			stats.PriceRanges.From10M++
		default:
			stats.PriceRanges.Above20M++
		}
	}

	if len(listings) > 0 {
		stats.AvgPrice = priceSum / int64(len(listings))
	}

	for city := range citySet {
		stats.Cities = append(stats.Cities, city)
	}
	for t := range typeSet {
		stats.PropertyTypes = append(stats.PropertyTypes, t)
	}
	sort.Strings(stats.Cities)
	sort.Strings(stats.PropertyTypes)

	return stats
}
