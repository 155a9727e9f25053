package repository

import (
	"context"

	"github.com/property-search-service/internal/domain"
)

// PlacesRepository определяет стратегию получения кандидатов инфраструктуры.
// Реализация может быть симулятором или клиентом внешнего геосервиса;
// сортировка по расстоянию и расчёт времени пешком остаются на стороне usecase.
type PlacesRepository interface {
	// LookupCandidates возвращает кандидатов категории в радиусе от точки.
	// Расстояние и длительность в результатах не заполнены
	LookupCandidates(ctx context.Context, origin domain.Coordinate, category string, radiusMeters float64) ([]domain.AmenityPoint, error)

	// GetPlaceDetails возвращает подробную информацию о месте
	GetPlaceDetails(ctx context.Context, placeID string) (*domain.PlaceDetails, error)
}
