package utils_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/property-search-service/internal/pkg/utils"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("zero distance for same point", func(t *testing.T) {
		d := utils.HaversineDistance(12.9352, 77.6245, 12.9352, 77.6245)
		assert.Equal(t, 0.0, d)
	})

	t.Run("one degree of longitude at equator", func(t *testing.T) {
		// 2*pi*R/360 = 111195 m
		d := utils.HaversineDistance(0, 0, 0, 1)
		assert.InDelta(t, 111195, d, 50)
	})

	t.Run("koramangala to indiranagar", func(t *testing.T) {
		d := utils.HaversineDistance(12.9352, 77.6245, 12.9784, 77.6408)
		assert.InDelta(t, 5120, d, 100)
	})

	t.Run("symmetric", func(t *testing.T) {
		d1 := utils.HaversineDistance(19.0596, 72.8295, 12.9352, 77.6245)
		d2 := utils.HaversineDistance(12.9352, 77.6245, 19.0596, 72.8295)
		assert.Equal(t, d1, d2)
	})
}

func TestWalkingDuration(t *testing.T) {
	assert.Equal(t, 0, utils.WalkingDuration(0))
	assert.Equal(t, 2, utils.WalkingDuration(100))
	assert.Equal(t, 20, utils.WalkingDuration(1000))
	// Rounds half away from zero
	assert.Equal(t, 3, utils.WalkingDuration(125))
}

func TestClampRadius(t *testing.T) {
	assert.Equal(t, 500.0, utils.ClampRadius(100))
	assert.Equal(t, 500.0, utils.ClampRadius(500))
	assert.Equal(t, 3000.0, utils.ClampRadius(3000))
	assert.Equal(t, 10000.0, utils.ClampRadius(20000))
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, utils.ValidateCoordinates(12.9352, 77.6245))
	assert.True(t, utils.ValidateCoordinates(-90, 180))

	assert.False(t, utils.ValidateCoordinates(91, 0))
	assert.False(t, utils.ValidateCoordinates(0, -181))
	assert.False(t, utils.ValidateCoordinates(math.NaN(), 0))
	assert.False(t, utils.ValidateCoordinates(0, math.Inf(1)))
}
