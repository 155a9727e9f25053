package places

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/property-search-service/internal/domain"
	"github.com/property-search-service/internal/domain/repository"
	"github.com/property-search-service/internal/pkg/errors"
	"go.uber.org/zap"
)

// candidateNames - статическая таблица кандидатов по категориям,
// не более пяти имён на категорию
var candidateNames = map[string][]string{
	domain.AmenityCategorySchool:       {"Delhi Public School", "Kendriya Vidyalaya", "St. Xavier's School", "Ryan International", "Narayana School"},
	domain.AmenityCategoryHospital:     {"Apollo Hospital", "Manipal Hospital", "Fortis Healthcare", "Max Healthcare", "Columbia Asia"},
	domain.AmenityCategoryRestaurant:   {"Cafe Coffee Day", "McDonald's", "Pizza Hut", "Local Restaurant", "Domino's Pizza"},
	domain.AmenityCategoryBank:         {"HDFC Bank", "ICICI Bank", "State Bank of India", "Axis Bank", "Kotak Mahindra"},
	domain.AmenityCategoryGym:          {"Cult.fit", "Gold's Gym", "Fitness First", "Talwalkar's", "Snap Fitness"},
	domain.AmenityCategoryShoppingMall: {"Phoenix Mall", "Forum Mall", "Inorbit Mall", "Express Avenue", "Select City Walk"},
	domain.AmenityCategoryPark:         {"Cubbon Park", "Lalbagh", "Neighborhood Park", "Central Park", "Rose Garden"},
	domain.AmenityCategoryMetroStation: {"Koramangala Metro", "Indiranagar Metro", "MG Road Metro", "Rajiv Chowk", "Connaught Place"},
}

const maxCandidatesPerCategory = 5

// Simulator синтезирует кандидатов вместо обращения к внешнему геосервису.
// Координаты разыгрываются равномерным азимутом и равномерным расстоянием
// в радиусе (распределение сгущается к центру - известный артефакт симуляции)
type Simulator struct {
	mu     sync.Mutex
	rng    *rand.Rand
	logger *zap.Logger
}

// NewSimulator создаёт симулятор со случайным зерном
func NewSimulator(logger *zap.Logger) repository.PlacesRepository {
	return NewSimulatorWithSeed(time.Now().UnixNano(), logger)
}

// NewSimulatorWithSeed создаёт симулятор с фиксированным зерном для тестов
func NewSimulatorWithSeed(seed int64, logger *zap.Logger) repository.PlacesRepository {
	return &Simulator{
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}
}

func (s *Simulator) LookupCandidates(_ context.Context, origin domain.Coordinate, category string, radiusMeters float64) ([]domain.AmenityPoint, error) {
	if math.IsNaN(origin.Lat) || math.IsNaN(origin.Lng) ||
		math.IsInf(origin.Lat, 0) || math.IsInf(origin.Lng, 0) {
		return nil, errors.ErrInvalidCoordinates
	}

	names := candidateNames[category]
	if len(names) > maxCandidatesPerCategory {
		names = names[:maxCandidatesPerCategory]
	}

	points := make([]domain.AmenityPoint, 0, len(names))
	for i, name := range names {
		angle, dist, rating, ratingCount := s.roll(radiusMeters)

		// Roughly 111km per degree of latitude
		latOffset := (dist / 111000) * math.Cos(angle)
		lngOffset := (dist / (111000 * math.Cos(origin.Lat*math.Pi/180))) * math.Sin(angle)

		r := rating
		rc := ratingCount
		points = append(points, domain.AmenityPoint{
			Category:    category,
			Name:        name,
			Address:     fmt.Sprintf("%s Address, Near Property", name),
			PlaceID:     fmt.Sprintf("sim_%s_%d", category, i),
			Rating:      &r,
			RatingCount: &rc,
			Coordinates: domain.Coordinate{
				Lat: origin.Lat + latOffset,
				Lng: origin.Lng + lngOffset,
			},
		})
	}

	return points, nil
}

func (s *Simulator) GetPlaceDetails(_ context.Context, placeID string) (*domain.PlaceDetails, error) {
	category, idx, ok := parseSimulatedPlaceID(placeID)
	if !ok {
		return nil, nil
	}

	names := candidateNames[category]
	if idx >= len(names) {
		return nil, nil
	}

	rating := 4.2
	ratingCount := 150
	return &domain.PlaceDetails{
		PlaceID:     placeID,
		Name:        names[idx],
		Vicinity:    fmt.Sprintf("%s Address, Near Property", names[idx]),
		Location:    domain.Coordinate{Lat: 12.9352, Lng: 77.6245},
		Rating:      &rating,
		RatingCount: &ratingCount,
		Types:       []string{"establishment", category},
	}, nil
}

// roll выполняет все обращения к генератору под мьютексом
func (s *Simulator) roll(radiusMeters float64) (angle, dist, rating float64, ratingCount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	angle = s.rng.Float64() * 2 * math.Pi
	dist = s.rng.Float64() * radiusMeters
	rating = math.Round((s.rng.Float64()*2+3)*10) / 10 // 3.0 - 5.0
	ratingCount = s.rng.Intn(1000) + 50
	return
}

func parseSimulatedPlaceID(placeID string) (category string, idx int, ok bool) {
	rest, found := strings.CutPrefix(placeID, "sim_")
	if !found {
		return "", 0, false
	}

	sep := strings.LastIndex(rest, "_")
	if sep <= 0 {
		return "", 0, false
	}

	category = rest[:sep]
	n, err := strconv.Atoi(rest[sep+1:])
	if err != nil || n < 0 {
		return "", 0, false
	}
	if _, exists := candidateNames[category]; !exists {
		return "", 0, false
	}

	return category, n, true
}
