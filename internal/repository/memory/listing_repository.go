package memory

import (
	"context"

	"github.com/property-search-service/internal/domain"
	"github.com/property-search-service/internal/domain/repository"
	"go.uber.org/zap"
)

// listingRepository - in-memory хранилище объявлений, заполняется при старте
// и не изменяется в процессе работы
type listingRepository struct {
	listings []domain.Listing
	byID     map[string]int
	logger   *zap.Logger
}

// NewListingRepository создаёт репозиторий с демо-данными
func NewListingRepository(logger *zap.Logger) repository.ListingRepository {
	return NewListingRepositoryWithData(SeedListings(), logger)
}

// NewListingRepositoryWithData создаёт репозиторий с заданной коллекцией
func NewListingRepositoryWithData(listings []domain.Listing, logger *zap.Logger) repository.ListingRepository {
	byID := make(map[string]int, len(listings))
	for i, l := range listings {
		byID[l.ID] = i
	}

	logger.Info("In-memory listing repository initialized",
		zap.Int("listings", len(listings)),
	)

	return &listingRepository{
		listings: listings,
		byID:     byID,
		logger:   logger,
	}
}

func (r *listingRepository) GetByID(_ context.Context, id string) (*domain.Listing, error) {
	idx, ok := r.byID[id]
	if !ok {
		return nil, nil
	}

	listing := r.listings[idx]
	return &listing, nil
}

func (r *listingRepository) GetAll(_ context.Context) ([]domain.Listing, error) {
	// Копия, чтобы вызывающая сторона могла свободно сортировать
	out := make([]domain.Listing, len(r.listings))
	copy(out, r.listings)
	return out, nil
}
