package usecase_test

import (
	"context"
	stderrors "errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/property-search-service/internal/domain"
	"github.com/property-search-service/internal/pkg/errors"
	"github.com/property-search-service/internal/pkg/utils"
	"github.com/property-search-service/internal/usecase"
	"github.com/property-search-service/internal/usecase/dto"
)

// MockPlacesRepository is a mock of PlacesRepository
type MockPlacesRepository struct {
	mock.Mock
}

func (m *MockPlacesRepository) LookupCandidates(ctx context.Context, origin domain.Coordinate, category string, radiusMeters float64) ([]domain.AmenityPoint, error) {
	args := m.Called(ctx, origin, category, radiusMeters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AmenityPoint), args.Error(1)
}

func (m *MockPlacesRepository) GetPlaceDetails(ctx context.Context, placeID string) (*domain.PlaceDetails, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlaceDetails), args.Error(1)
}

// MockAmenityCacheRepository is a mock of AmenityCacheRepository
type MockAmenityCacheRepository struct {
	mock.Mock
}

func (m *MockAmenityCacheRepository) GetAmenities(ctx context.Context, listingID, category string) ([]domain.AmenityPoint, error) {
	args := m.Called(ctx, listingID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AmenityPoint), args.Error(1)
}

func (m *MockAmenityCacheRepository) SetAmenities(ctx context.Context, listingID, category string, points []domain.AmenityPoint, ttl time.Duration) error {
	args := m.Called(ctx, listingID, category, points, ttl)
	return args.Error(0)
}

func (m *MockAmenityCacheRepository) GetStats(ctx context.Context) (*domain.ListingStatistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ListingStatistics), args.Error(1)
}

func (m *MockAmenityCacheRepository) SetStats(ctx context.Context, stats *domain.ListingStatistics, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}

func (m *MockAmenityCacheRepository) Size(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockAmenityCacheRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func candidate(category, name string, lat, lng float64) domain.AmenityPoint {
	return domain.AmenityPoint{
		Category:    category,
		Name:        name,
		PlaceID:     "place_" + name,
		Coordinates: domain.Coordinate{Lat: lat, Lng: lng},
	}
}

func TestAmenityUseCase_GetNearby(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	origin := domain.Coordinate{Lat: 12.9352, Lng: 77.6245}
	listing := newListing("bang1", "Bangalore", 8500000, domain.PropertyTypeApartment, 3, 1450, "2024-01-15", domain.StatusAvailable)
	listing.Location.Coordinates = origin

	t.Run("missing property id", func(t *testing.T) {
		uc := usecase.NewAmenityUseCase(&MockListingRepository{}, &MockPlacesRepository{}, &MockAmenityCacheRepository{}, logger, time.Hour)

		result, err := uc.GetNearby(ctx, dto.NearbyAmenitiesRequest{})
		assert.Nil(t, result)
		assert.Equal(t, errors.ErrMissingPropertyID, err)
	})

	t.Run("unknown property", func(t *testing.T) {
		mockListings := &MockListingRepository{}
		mockListings.On("GetByID", ctx, "ghost").Return(nil, nil)

		uc := usecase.NewAmenityUseCase(mockListings, &MockPlacesRepository{}, &MockAmenityCacheRepository{}, logger, time.Hour)

		result, err := uc.GetNearby(ctx, dto.NearbyAmenitiesRequest{PropertyID: "ghost"})
		assert.Nil(t, result)
		assert.Equal(t, errors.ErrPropertyNotFound, err)
	})

	t.Run("all categories unknown", func(t *testing.T) {
		mockListings := &MockListingRepository{}
		mockListings.On("GetByID", ctx, "bang1").Return(&listing, nil)

		uc := usecase.NewAmenityUseCase(mockListings, &MockPlacesRepository{}, &MockAmenityCacheRepository{}, logger, time.Hour)

		result, err := uc.GetNearby(ctx, dto.NearbyAmenitiesRequest{
			PropertyID: "bang1",
			Types:      []string{"temple", "library"},
		})
		assert.Nil(t, result)

		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.ErrInvalidAmenityTypes.Code, appErr.Code)
		assert.Contains(t, appErr.Details, "validTypes")
	})

	t.Run("ranks candidates by distance and caches the result", func(t *testing.T) {
		mockListings := &MockListingRepository{}
		mockListings.On("GetByID", ctx, "bang1").Return(&listing, nil)

		// far is ~2.2km north, near is ~550m north
		candidates := []domain.AmenityPoint{
			candidate(domain.AmenityCategorySchool, "far", origin.Lat+0.02, origin.Lng),
			candidate(domain.AmenityCategorySchool, "near", origin.Lat+0.005, origin.Lng),
		}

		mockPlaces := &MockPlacesRepository{}
		mockPlaces.On("LookupCandidates", ctx, origin, domain.AmenityCategorySchool, 5000.0).Return(candidates, nil)

		mockCache := &MockAmenityCacheRepository{}
		mockCache.On("GetAmenities", ctx, "bang1", domain.AmenityCategorySchool).Return(nil, nil)
		mockCache.On("SetAmenities", ctx, "bang1", domain.AmenityCategorySchool, mock.Anything, time.Hour).Return(nil)

		uc := usecase.NewAmenityUseCase(mockListings, mockPlaces, mockCache, logger, time.Hour)

		result, err := uc.GetNearby(ctx, dto.NearbyAmenitiesRequest{
			PropertyID: "bang1",
			Types:      []string{"school"},
		})
		require.NoError(t, err)

		points := result.Amenities["school"]
		require.Len(t, points, 2)
		assert.Equal(t, "near", points[0].Name)
		assert.Equal(t, "far", points[1].Name)
		assert.Less(t, points[0].Distance, points[1].Distance)
		assert.Equal(t, 5000.0, result.SearchRadius)

		// Расстояние и время пешком пересчитываются от координат объявления
		for _, p := range points {
			exact := utils.HaversineDistance(origin.Lat, origin.Lng, p.Coordinates.Lat, p.Coordinates.Lng)
			assert.InDelta(t, math.Round(exact), p.Distance, 1e-9, p.Name)
			assert.Equal(t, utils.WalkingDuration(exact), p.Duration, p.Name)
		}

		mockCache.AssertCalled(t, "SetAmenities", ctx, "bang1", domain.AmenityCategorySchool, mock.Anything, time.Hour)
	})

	t.Run("cache hit skips the provider", func(t *testing.T) {
		mockListings := &MockListingRepository{}
		mockListings.On("GetByID", ctx, "bang1").Return(&listing, nil)

		cached := []domain.AmenityPoint{
			{Category: "school", Name: "cached", Distance: 300, Duration: 6},
		}

		mockCache := &MockAmenityCacheRepository{}
		mockCache.On("GetAmenities", ctx, "bang1", domain.AmenityCategorySchool).Return(cached, nil)

		mockPlaces := &MockPlacesRepository{}

		uc := usecase.NewAmenityUseCase(mockListings, mockPlaces, mockCache, logger, time.Hour)

		result, err := uc.GetNearby(ctx, dto.NearbyAmenitiesRequest{
			PropertyID: "bang1",
			Types:      []string{"school"},
		})
		require.NoError(t, err)
		require.Len(t, result.Amenities["school"], 1)
		assert.Equal(t, "cached", result.Amenities["school"][0].Name)

		mockPlaces.AssertNotCalled(t, "LookupCandidates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("one failing category does not fail the request", func(t *testing.T) {
		mockListings := &MockListingRepository{}
		mockListings.On("GetByID", ctx, "bang1").Return(&listing, nil)

		mockCache := &MockAmenityCacheRepository{}
		mockCache.On("GetAmenities", ctx, "bang1", mock.Anything).Return(nil, nil)
		mockCache.On("SetAmenities", ctx, "bang1", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		mockPlaces := &MockPlacesRepository{}
		mockPlaces.On("LookupCandidates", ctx, origin, domain.AmenityCategorySchool, 5000.0).
			Return(nil, stderrors.New("provider down"))
		mockPlaces.On("LookupCandidates", ctx, origin, domain.AmenityCategoryBank, 5000.0).
			Return([]domain.AmenityPoint{candidate("bank", "hdfc", origin.Lat+0.001, origin.Lng)}, nil)

		uc := usecase.NewAmenityUseCase(mockListings, mockPlaces, mockCache, logger, time.Hour)

		result, err := uc.GetNearby(ctx, dto.NearbyAmenitiesRequest{
			PropertyID: "bang1",
			Types:      []string{"school", "bank"},
		})
		require.NoError(t, err)
		assert.Empty(t, result.Amenities["school"])
		assert.Len(t, result.Amenities["bank"], 1)
	})

	t.Run("unknown categories are silently dropped", func(t *testing.T) {
		mockListings := &MockListingRepository{}
		mockListings.On("GetByID", ctx, "bang1").Return(&listing, nil)

		mockCache := &MockAmenityCacheRepository{}
		mockCache.On("GetAmenities", ctx, "bang1", domain.AmenityCategoryBank).Return(nil, nil)
		mockCache.On("SetAmenities", ctx, "bang1", domain.AmenityCategoryBank, mock.Anything, mock.Anything).Return(nil)

		mockPlaces := &MockPlacesRepository{}
		mockPlaces.On("LookupCandidates", ctx, origin, domain.AmenityCategoryBank, 5000.0).
			Return([]domain.AmenityPoint{}, nil)

		uc := usecase.NewAmenityUseCase(mockListings, mockPlaces, mockCache, logger, time.Hour)

		result, err := uc.GetNearby(ctx, dto.NearbyAmenitiesRequest{
			PropertyID: "bang1",
			Types:      []string{"temple", "bank"},
		})
		require.NoError(t, err)
		assert.Len(t, result.Amenities, 1)
		assert.Contains(t, result.Amenities, "bank")
	})

	t.Run("radius is clamped before lookup", func(t *testing.T) {
		mockListings := &MockListingRepository{}
		mockListings.On("GetByID", ctx, "bang1").Return(&listing, nil)

		mockCache := &MockAmenityCacheRepository{}
		mockCache.On("GetAmenities", ctx, "bang1", mock.Anything).Return(nil, nil)
		mockCache.On("SetAmenities", ctx, "bang1", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		mockPlaces := &MockPlacesRepository{}
		mockPlaces.On("LookupCandidates", ctx, origin, domain.AmenityCategorySchool, 10000.0).
			Return([]domain.AmenityPoint{}, nil)

		uc := usecase.NewAmenityUseCase(mockListings, mockPlaces, mockCache, logger, time.Hour)

		result, err := uc.GetNearby(ctx, dto.NearbyAmenitiesRequest{
			PropertyID: "bang1",
			Types:      []string{"school"},
			Radius:     50000,
		})
		require.NoError(t, err)
		assert.Equal(t, 10000.0, result.SearchRadius)
	})

	t.Run("limit is split evenly across categories", func(t *testing.T) {
		mockListings := &MockListingRepository{}
		mockListings.On("GetByID", ctx, "bang1").Return(&listing, nil)

		many := []domain.AmenityPoint{
			candidate("school", "s1", origin.Lat+0.001, origin.Lng),
			candidate("school", "s2", origin.Lat+0.002, origin.Lng),
			candidate("school", "s3", origin.Lat+0.003, origin.Lng),
		}

		mockCache := &MockAmenityCacheRepository{}
		mockCache.On("GetAmenities", ctx, "bang1", mock.Anything).Return(nil, nil)
		mockCache.On("SetAmenities", ctx, "bang1", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		mockPlaces := &MockPlacesRepository{}
		mockPlaces.On("LookupCandidates", ctx, origin, domain.AmenityCategorySchool, 5000.0).Return(many, nil)
		mockPlaces.On("LookupCandidates", ctx, origin, domain.AmenityCategoryBank, 5000.0).Return(many, nil)

		uc := usecase.NewAmenityUseCase(mockListings, mockPlaces, mockCache, logger, time.Hour)

		// ceil(3/2) = 2 per category
		result, err := uc.GetNearby(ctx, dto.NearbyAmenitiesRequest{
			PropertyID: "bang1",
			Types:      []string{"school", "bank"},
			Limit:      3,
		})
		require.NoError(t, err)
		assert.Len(t, result.Amenities["school"], 2)
		assert.Len(t, result.Amenities["bank"], 2)
	})
}

func TestAmenityUseCase_GetPlaceDetails(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("missing place id", func(t *testing.T) {
		uc := usecase.NewAmenityUseCase(&MockListingRepository{}, &MockPlacesRepository{}, &MockAmenityCacheRepository{}, logger, time.Hour)

		result, err := uc.GetPlaceDetails(ctx, "")
		assert.Nil(t, result)
		assert.Equal(t, errors.ErrMissingPlaceID, err)
	})

	t.Run("unknown place", func(t *testing.T) {
		mockPlaces := &MockPlacesRepository{}
		mockPlaces.On("GetPlaceDetails", ctx, "nope").Return(nil, nil)

		uc := usecase.NewAmenityUseCase(&MockListingRepository{}, mockPlaces, &MockAmenityCacheRepository{}, logger, time.Hour)

		result, err := uc.GetPlaceDetails(ctx, "nope")
		assert.Nil(t, result)
		assert.Equal(t, errors.ErrPlaceNotFound, err)
	})

	t.Run("found", func(t *testing.T) {
		details := &domain.PlaceDetails{PlaceID: "p1", Name: "Apollo Hospital"}

		mockPlaces := &MockPlacesRepository{}
		mockPlaces.On("GetPlaceDetails", ctx, "p1").Return(details, nil)

		uc := usecase.NewAmenityUseCase(&MockListingRepository{}, mockPlaces, &MockAmenityCacheRepository{}, logger, time.Hour)

		result, err := uc.GetPlaceDetails(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "Apollo Hospital", result.Name)
	})
}

func TestAmenityUseCase_GetRoute(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	origin := domain.Coordinate{Lat: 12.9352, Lng: 77.6245}
	listing := newListing("bang1", "Bangalore", 8500000, domain.PropertyTypeApartment, 3, 1450, "2024-01-15", domain.StatusAvailable)
	listing.Location.Coordinates = origin

	t.Run("estimates straight-line route", func(t *testing.T) {
		mockListings := &MockListingRepository{}
		mockListings.On("GetByID", ctx, "bang1").Return(&listing, nil)

		// ~1.1km north of the listing
		details := &domain.PlaceDetails{
			PlaceID:  "p1",
			Name:     "school",
			Location: domain.Coordinate{Lat: origin.Lat + 0.01, Lng: origin.Lng},
		}

		mockPlaces := &MockPlacesRepository{}
		mockPlaces.On("GetPlaceDetails", ctx, "p1").Return(details, nil)

		uc := usecase.NewAmenityUseCase(mockListings, mockPlaces, &MockAmenityCacheRepository{}, logger, time.Hour)

		result, err := uc.GetRoute(ctx, dto.RouteRequest{PropertyID: "bang1", PlaceID: "p1"})
		require.NoError(t, err)

		assert.InDelta(t, 1112, result.Distance.Value, 10)
		assert.Greater(t, result.Duration.Value, 0.0)
		require.Len(t, result.Route, 2)
		assert.Equal(t, origin, result.Route[0])
		assert.Equal(t, details.Location, result.Route[1])
	})

	t.Run("missing ids", func(t *testing.T) {
		uc := usecase.NewAmenityUseCase(&MockListingRepository{}, &MockPlacesRepository{}, &MockAmenityCacheRepository{}, logger, time.Hour)

		result, err := uc.GetRoute(ctx, dto.RouteRequest{PropertyID: "bang1"})
		assert.Nil(t, result)
		assert.Equal(t, errors.ErrInvalidRequest, err)
	})

	t.Run("unknown property", func(t *testing.T) {
		mockListings := &MockListingRepository{}
		mockListings.On("GetByID", ctx, "ghost").Return(nil, nil)

		uc := usecase.NewAmenityUseCase(mockListings, &MockPlacesRepository{}, &MockAmenityCacheRepository{}, logger, time.Hour)

		result, err := uc.GetRoute(ctx, dto.RouteRequest{PropertyID: "ghost", PlaceID: "p1"})
		assert.Nil(t, result)
		assert.Equal(t, errors.ErrPropertyNotFound, err)
	})
}

func TestAmenityUseCase_GetCacheStats(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	mockCache := &MockAmenityCacheRepository{}
	mockCache.On("Size", ctx).Return(7, nil)

	uc := usecase.NewAmenityUseCase(&MockListingRepository{}, &MockPlacesRepository{}, mockCache, logger, time.Hour)

	result, err := uc.GetCacheStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, result.CacheSize)
	assert.NotEmpty(t, result.Timestamp)
}
