package repository

import (
	"context"

	"github.com/property-search-service/internal/domain"
)

// ListingRepository определяет методы для работы с объявлениями
type ListingRepository interface {
	// GetByID возвращает объявление по ID
	GetByID(ctx context.Context, id string) (*domain.Listing, error)

	// GetAll возвращает все объявления коллекции
	GetAll(ctx context.Context) ([]domain.Listing, error)
}
