package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/property-search-service/internal/domain"
	"github.com/property-search-service/internal/domain/repository"
	"github.com/property-search-service/internal/pkg/errors"
	"github.com/property-search-service/internal/pkg/utils"
	"github.com/property-search-service/internal/usecase/dto"
)

const (
	defaultSearchRadius = 5000.0
	defaultAmenityLimit = 10
	maxAmenityLimit     = 50
)

// AmenityUseCase - поиск инфраструктуры рядом с объявлением: получение
// кандидатов от провайдера, ранжирование по расстоянию и кеширование
type AmenityUseCase struct {
	listingRepo repository.ListingRepository
	placesRepo  repository.PlacesRepository
	cacheRepo   repository.AmenityCacheRepository
	logger      *zap.Logger
	cacheTTL    time.Duration
}

// NewAmenityUseCase - создание нового AmenityUseCase
func NewAmenityUseCase(
	listingRepo repository.ListingRepository,
	placesRepo repository.PlacesRepository,
	cacheRepo repository.AmenityCacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *AmenityUseCase {
	if cacheTTL <= 0 {
		cacheTTL = time.Hour
	}
	return &AmenityUseCase{
		listingRepo: listingRepo,
		placesRepo:  placesRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// GetNearby возвращает инфраструктуру по категориям, отсортированную
// по возрастанию расстояния от объявления
func (uc *AmenityUseCase) GetNearby(ctx context.Context, req dto.NearbyAmenitiesRequest) (*dto.NearbyAmenitiesResponse, error) {
	if req.PropertyID == "" {
		return nil, errors.ErrMissingPropertyID
	}

	listing, err := uc.listingRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		uc.logger.Error("Failed to get listing", zap.String("id", req.PropertyID), zap.Error(err))
		return nil, err
	}
	if listing == nil {
		return nil, errors.ErrPropertyNotFound
	}

	radius := req.Radius
	if radius == 0 {
		radius = defaultSearchRadius
	}
	radius = utils.ClampRadius(radius)

	limit := req.Limit
	if limit == 0 {
		limit = defaultAmenityLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxAmenityLimit {
		limit = maxAmenityLimit
	}

	categories, err := resolveCategories(req.Types)
	if err != nil {
		return nil, err
	}

	// Квота на категорию от суммарного лимита
	perCategory := (limit + len(categories) - 1) / len(categories)

	origin := listing.Location.Coordinates
	amenities := make(map[string][]domain.AmenityPoint, len(categories))

	for _, category := range categories {
		points, err := uc.lookupCategory(ctx, listing.ID, origin, category, radius)
		if err != nil {
			// Отказ одной категории не срывает запрос целиком
			uc.logger.Error("Failed to search amenities",
				zap.String("listing_id", listing.ID),
				zap.String("category", category),
				zap.Error(err),
			)
			amenities[category] = []domain.AmenityPoint{}
			continue
		}

		if len(points) > perCategory {
			points = points[:perCategory]
		}
		amenities[category] = points
	}

	return &dto.NearbyAmenitiesResponse{
		Property: dto.PropertyRef{
			ID:          listing.ID,
			Title:       listing.Title,
			Coordinates: origin,
		},
		Amenities:    amenities,
		SearchRadius: radius,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// lookupCategory достаёт категорию из кеша или считает заново:
// кандидаты от провайдера, аннотация расстоянием и временем пешком,
// стабильная сортировка по возрастанию расстояния
func (uc *AmenityUseCase) lookupCategory(ctx context.Context, listingID string, origin domain.Coordinate, category string, radius float64) ([]domain.AmenityPoint, error) {
	cached, err := uc.cacheRepo.GetAmenities(ctx, listingID, category)
	if err != nil {
		uc.logger.Warn("Amenity cache read failed",
			zap.String("listing_id", listingID),
			zap.String("category", category),
			zap.Error(err),
		)
	}
	if cached != nil {
		return cached, nil
	}

	candidates, err := uc.placesRepo.LookupCandidates(ctx, origin, category, radius)
	if err != nil {
		return nil, err
	}

	points := rankByDistance(origin, candidates)

	if err := uc.cacheRepo.SetAmenities(ctx, listingID, category, points, uc.cacheTTL); err != nil {
		uc.logger.Warn("Amenity cache write failed",
			zap.String("listing_id", listingID),
			zap.String("category", category),
			zap.Error(err),
		)
	}

	return points, nil
}

// GetPlaceDetails возвращает подробности о месте от провайдера
func (uc *AmenityUseCase) GetPlaceDetails(ctx context.Context, placeID string) (*domain.PlaceDetails, error) {
	if placeID == "" {
		return nil, errors.ErrMissingPlaceID
	}

	details, err := uc.placesRepo.GetPlaceDetails(ctx, placeID)
	if err != nil {
		uc.logger.Error("Failed to get place details", zap.String("place_id", placeID), zap.Error(err))
		return nil, err
	}
	if details == nil {
		return nil, errors.ErrPlaceNotFound
	}

	return details, nil
}

// GetRoute оценивает маршрут по прямой от объявления до места
func (uc *AmenityUseCase) GetRoute(ctx context.Context, req dto.RouteRequest) (*dto.RouteResponse, error) {
	if req.PropertyID == "" || req.PlaceID == "" {
		return nil, errors.ErrInvalidRequest
	}

	listing, err := uc.listingRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, errors.ErrPropertyNotFound
	}

	details, err := uc.placesRepo.GetPlaceDetails(ctx, req.PlaceID)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, errors.ErrPlaceNotFound
	}

	origin := listing.Location.Coordinates
	dest := details.Location

	distance := math.Round(utils.HaversineDistance(origin.Lat, origin.Lng, dest.Lat, dest.Lng))
	durationMin := utils.WalkingDuration(distance)

	return &dto.RouteResponse{
		Distance: dto.ValueText{
			Text:  fmt.Sprintf("%.1f km", distance/1000),
			Value: distance,
		},
		Duration: dto.ValueText{
			Text:  fmt.Sprintf("%d mins", durationMin),
			Value: float64(durationMin * 60), // seconds
		},
		Route: []domain.Coordinate{origin, dest},
	}, nil
}

// GetCacheStats возвращает размер кеша инфраструктуры
func (uc *AmenityUseCase) GetCacheStats(ctx context.Context) (*dto.CacheStatsResponse, error) {
	size, err := uc.cacheRepo.Size(ctx)
	if err != nil {
		uc.logger.Error("Failed to get cache size", zap.Error(err))
		return nil, errors.ErrCacheError
	}

	return &dto.CacheStatsResponse{
		CacheSize: size,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// resolveCategories отбрасывает неизвестные категории молча; пустой ввод
// заменяется набором по умолчанию, полностью неизвестный - ошибка
func resolveCategories(types []string) ([]string, error) {
	if len(types) == 0 {
		return domain.DefaultAmenityCategories(), nil
	}

	valid := make([]string, 0, len(types))
	for _, t := range types {
		if domain.IsValidAmenityCategory(t) {
			valid = append(valid, t)
		}
	}

	if len(valid) == 0 {
		return nil, errors.ErrInvalidAmenityTypes.WithDetails(map[string]interface{}{
			"validTypes": domain.AmenityCategories(),
		})
	}

	return valid, nil
}

// rankByDistance аннотирует кандидатов расстоянием по формуле гаверсинуса
// и временем пешком, затем стабильно сортирует по возрастанию расстояния
func rankByDistance(origin domain.Coordinate, candidates []domain.AmenityPoint) []domain.AmenityPoint {
	points := make([]domain.AmenityPoint, len(candidates))
	copy(points, candidates)

	for i := range points {
		d := utils.HaversineDistance(
			origin.Lat, origin.Lng,
			points[i].Coordinates.Lat, points[i].Coordinates.Lng,
		)
		points[i].Distance = math.Round(d)
		points[i].Duration = utils.WalkingDuration(d)
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Distance < points[j].Distance
	})

	return points
}
