package places_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/property-search-service/internal/domain"
	"github.com/property-search-service/internal/infrastructure/places"
	"github.com/property-search-service/internal/pkg/errors"
	"github.com/property-search-service/internal/pkg/utils"
)

func TestSimulator_LookupCandidates(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	origin := domain.Coordinate{Lat: 12.9352, Lng: 77.6245}

	t.Run("generates at most five candidates per category", func(t *testing.T) {
		sim := places.NewSimulatorWithSeed(42, logger)

		for _, category := range domain.AmenityCategories() {
			points, err := sim.LookupCandidates(ctx, origin, category, 5000)
			require.NoError(t, err)
			assert.NotEmpty(t, points, category)
			assert.LessOrEqual(t, len(points), 5, category)
		}
	})

	t.Run("candidates land inside the requested radius", func(t *testing.T) {
		sim := places.NewSimulatorWithSeed(42, logger)

		points, err := sim.LookupCandidates(ctx, origin, domain.AmenityCategorySchool, 2000)
		require.NoError(t, err)

		for _, p := range points {
			d := utils.HaversineDistance(origin.Lat, origin.Lng, p.Coordinates.Lat, p.Coordinates.Lng)
			// Flat-earth offsets understate a degree slightly, give 1% slack
			assert.LessOrEqual(t, d, 2000*1.01, p.Name)
		}
	})

	t.Run("synthesized attributes stay in range", func(t *testing.T) {
		sim := places.NewSimulatorWithSeed(7, logger)

		points, err := sim.LookupCandidates(ctx, origin, domain.AmenityCategoryHospital, 5000)
		require.NoError(t, err)

		for i, p := range points {
			assert.Equal(t, fmt.Sprintf("sim_hospital_%d", i), p.PlaceID)
			require.NotNil(t, p.Rating)
			assert.GreaterOrEqual(t, *p.Rating, 3.0)
			assert.LessOrEqual(t, *p.Rating, 5.0)
			require.NotNil(t, p.RatingCount)
			assert.GreaterOrEqual(t, *p.RatingCount, 50)
			assert.Less(t, *p.RatingCount, 1050)
		}
	})

	t.Run("same seed gives same candidates", func(t *testing.T) {
		a, err := places.NewSimulatorWithSeed(99, logger).LookupCandidates(ctx, origin, domain.AmenityCategoryBank, 5000)
		require.NoError(t, err)
		b, err := places.NewSimulatorWithSeed(99, logger).LookupCandidates(ctx, origin, domain.AmenityCategoryBank, 5000)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("rejects non-finite coordinates", func(t *testing.T) {
		sim := places.NewSimulatorWithSeed(42, logger)

		_, err := sim.LookupCandidates(ctx, domain.Coordinate{Lat: math.NaN(), Lng: 77.6245}, "school", 5000)
		assert.Equal(t, errors.ErrInvalidCoordinates, err)
	})

	t.Run("unknown category yields no candidates", func(t *testing.T) {
		sim := places.NewSimulatorWithSeed(42, logger)

		points, err := sim.LookupCandidates(ctx, origin, "temple", 5000)
		require.NoError(t, err)
		assert.Empty(t, points)
	})
}

func TestSimulator_GetPlaceDetails(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	sim := places.NewSimulatorWithSeed(42, logger)

	t.Run("resolves simulated place ids", func(t *testing.T) {
		details, err := sim.GetPlaceDetails(ctx, "sim_school_0")
		require.NoError(t, err)
		require.NotNil(t, details)
		assert.Equal(t, "Delhi Public School", details.Name)
		assert.Contains(t, details.Types, "school")
	})

	t.Run("category with underscore", func(t *testing.T) {
		details, err := sim.GetPlaceDetails(ctx, "sim_shopping_mall_1")
		require.NoError(t, err)
		require.NotNil(t, details)
		assert.Equal(t, "Forum Mall", details.Name)
	})

	t.Run("unknown ids return nil", func(t *testing.T) {
		for _, id := range []string{"", "bogus", "sim_temple_0", "sim_school_99", "sim_school_x"} {
			details, err := sim.GetPlaceDetails(ctx, id)
			require.NoError(t, err, id)
			assert.Nil(t, details, id)
		}
	})
}
