package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/property-search-service/internal/domain"
	"github.com/property-search-service/internal/domain/repository"
	"github.com/property-search-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type listingRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewListingRepository создаёт Postgres-репозиторий объявлений.
// Фильтрация и сортировка выполняются на стороне usecase, здесь только чтение
func NewListingRepository(db *DB) repository.ListingRepository {
	return &listingRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const listingColumns = `
	id, title, description, price,
	city, state, pincode, address, lat, lng,
	property_type, bedrooms, bathrooms, area,
	amenities, images, listed_date, status
`

func (r *listingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`

	listing, err := scanListing(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get listing by ID", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	return listing, nil
}

func (r *listingRepository) GetAll(ctx context.Context) ([]domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query listings", zap.Error(err))
		return nil, errors.ErrInternalServer
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			r.logger.Error("Failed to scan listing row", zap.Error(err))
			return nil, errors.ErrInternalServer
		}
		listings = append(listings, *listing)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Listing rows iteration failed", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	return listings, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanListing(row rowScanner) (*domain.Listing, error) {
	var l domain.Listing
	var listedDate time.Time

	err := row.Scan(
		&l.ID, &l.Title, &l.Description, &l.Price,
		&l.Location.City, &l.Location.State, &l.Location.Pincode, &l.Location.Address,
		&l.Location.Coordinates.Lat, &l.Location.Coordinates.Lng,
		&l.PropertyType, &l.Bedrooms, &l.Bathrooms, &l.Area,
		pq.Array(&l.Amenities), pq.Array(&l.Images),
		&listedDate, &l.Status,
	)
	if err != nil {
		return nil, err
	}

	l.ListedDate = listedDate
	return &l, nil
}
