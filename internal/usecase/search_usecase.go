package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/property-search-service/internal/domain"
	"github.com/property-search-service/internal/domain/repository"
	"github.com/property-search-service/internal/pkg/errors"
	"github.com/property-search-service/internal/usecase/dto"
)

// Sort keys and defaults
const (
	SortByPrice      = "price"
	SortByListedDate = "listedDate"
	SortByArea       = "area"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"

	defaultPageLimit = 12
	maxPageLimit     = 50
)

// SearchUseCase - движок фильтрации, сортировки и пагинации объявлений.
// Чистая функция над коллекцией: репозиторий отдаёт данные,
// вся логика выполняется в памяти
type SearchUseCase struct {
	listingRepo repository.ListingRepository
	logger      *zap.Logger
}

// NewSearchUseCase - создание нового SearchUseCase
func NewSearchUseCase(
	listingRepo repository.ListingRepository,
	logger *zap.Logger,
) *SearchUseCase {
	return &SearchUseCase{
		listingRepo: listingRepo,
		logger:      logger,
	}
}

// Search выполняет поиск объявлений по критериям
func (uc *SearchUseCase) Search(ctx context.Context, req dto.SearchPropertiesRequest) (*dto.PropertySearchResponse, error) {
	start := time.Now()

	// Хотя бы один положительный фильтр обязателен
	if !req.HasFilter() {
		return nil, errors.ErrMissingSearchCriteria
	}

	if req.MinPrice != nil && req.MaxPrice != nil && *req.MinPrice > *req.MaxPrice {
		return nil, errors.ErrInvalidPriceRange
	}
	if req.MinBedrooms != nil && req.MaxBedrooms != nil && *req.MinBedrooms > *req.MaxBedrooms {
		return nil, errors.ErrInvalidBedroomRange
	}

	normalizeSearchRequest(&req)

	listings, err := uc.listingRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to load listings", zap.Error(err))
		return nil, err
	}

	filtered := filterListings(listings, req)
	sortListings(filtered, req.SortBy, req.SortOrder)

	page, pagination := paginate(filtered, req.Page, req.Limit)

	return &dto.PropertySearchResponse{
		Properties: page,
		Pagination: pagination,
		Filters: dto.AppliedFilters{
			City:         req.City,
			MinPrice:     req.MinPrice,
			MaxPrice:     req.MaxPrice,
			PropertyType: req.PropertyType,
			MinBedrooms:  req.MinBedrooms,
			MaxBedrooms:  req.MaxBedrooms,
			SortBy:       req.SortBy,
			SortOrder:    req.SortOrder,
			Page:         req.Page,
			Limit:        req.Limit,
		},
		SearchTime: time.Since(start).Milliseconds(),
	}, nil
}

// GetByID возвращает объявление по идентификатору
func (uc *SearchUseCase) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	if id == "" {
		return nil, errors.ErrMissingPropertyID
	}

	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to get listing", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if listing == nil {
		return nil, errors.ErrPropertyNotFound
	}

	return listing, nil
}

// normalizeSearchRequest выставляет значения по умолчанию и зажимает
// страницу и размер страницы в допустимые границы
func normalizeSearchRequest(req *dto.SearchPropertiesRequest) {
	if req.SortBy == "" {
		req.SortBy = SortByListedDate
	}
	if req.SortOrder == "" {
		req.SortOrder = SortOrderDesc
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit == 0 {
		req.Limit = defaultPageLimit
	}
	if req.Limit < 1 {
		req.Limit = 1
	}
	if req.Limit > maxPageLimit {
		req.Limit = maxPageLimit
	}
}

// filterListings оставляет объявления, удовлетворяющие всем заданным условиям.
// Скрытый фильтр: возвращаются только объявления со статусом available
func filterListings(listings []domain.Listing, req dto.SearchPropertiesRequest) []domain.Listing {
	city := strings.ToLower(req.City)

	result := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if l.Status != domain.StatusAvailable {
			continue
		}
		if city != "" && !strings.Contains(strings.ToLower(l.Location.City), city) {
			continue
		}
		if req.MinPrice != nil && l.Price < *req.MinPrice {
			continue
		}
		if req.MaxPrice != nil && l.Price > *req.MaxPrice {
			continue
		}
		if req.PropertyType != "" && l.PropertyType != req.PropertyType {
			continue
		}
		if req.MinBedrooms != nil && l.Bedrooms < *req.MinBedrooms {
			continue
		}
		if req.MaxBedrooms != nil && l.Bedrooms > *req.MaxBedrooms {
			continue
		}

		result = append(result, l)
	}

	return result
}

// sortListings сортирует на месте стабильно: при равных ключах
// сохраняется исходный порядок
func sortListings(listings []domain.Listing, sortBy, sortOrder string) {
	desc := sortOrder == SortOrderDesc

	sort.SliceStable(listings, func(i, j int) bool {
		var cmp int
		switch sortBy {
		case SortByPrice:
			switch {
			case listings[i].Price < listings[j].Price:
				cmp = -1
			case listings[i].Price > listings[j].Price:
				cmp = 1
			}
		case SortByArea:
			cmp = listings[i].Area - listings[j].Area
		default: // listedDate
			cmp = listings[i].ListedDate.Compare(listings[j].ListedDate)
		}

		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

// paginate вычисляет общее количество до среза; страницы за пределами
// результата возвращают пустой срез без ошибки
func paginate(listings []domain.Listing, page, limit int) ([]domain.Listing, dto.PaginationInfo) {
	totalItems := len(listings)
	totalPages := (totalItems + limit - 1) / limit

	startIndex := (page - 1) * limit
	endIndex := startIndex + limit

	var items []domain.Listing
	if startIndex >= totalItems {
		items = []domain.Listing{}
	} else {
		if endIndex > totalItems {
			endIndex = totalItems
		}
		items = listings[startIndex:endIndex]
	}

	return items, dto.PaginationInfo{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		ItemsPerPage: limit,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
}
