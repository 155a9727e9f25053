package dto

import "github.com/property-search-service/internal/domain"

// PaginationInfo - сведения о странице результатов
type PaginationInfo struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}

// AppliedFilters - нормализованные критерии, вернувшиеся клиенту как эхо
type AppliedFilters struct {
	City         string `json:"city"`
	MinPrice     *int64 `json:"minPrice,omitempty"`
	MaxPrice     *int64 `json:"maxPrice,omitempty"`
	PropertyType string `json:"propertyType,omitempty"`
	MinBedrooms  *int   `json:"minBedrooms,omitempty"`
	MaxBedrooms  *int   `json:"maxBedrooms,omitempty"`
	SortBy       string `json:"sortBy"`
	SortOrder    string `json:"sortOrder"`
	Page         int    `json:"page"`
	Limit        int    `json:"limit"`
}

// PropertySearchResponse - ответ на поиск объявлений
type PropertySearchResponse struct {
	Properties []domain.Listing `json:"properties"`
	Pagination PaginationInfo   `json:"pagination"`
	Filters    AppliedFilters   `json:"filters"`
	SearchTime int64            `json:"searchTime"` // milliseconds
}

// PropertyRef - краткая ссылка на объявление в ответах по инфраструктуре
type PropertyRef struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Coordinates domain.Coordinate `json:"coordinates"`
}

// NearbyAmenitiesResponse - ответ на поиск инфраструктуры,
// сгруппированный по категориям
type NearbyAmenitiesResponse struct {
	Property     PropertyRef                      `json:"property"`
	Amenities    map[string][]domain.AmenityPoint `json:"amenities"`
	SearchRadius float64                          `json:"searchRadius"`
	Timestamp    string                           `json:"timestamp"`
}

// ValueText - численное значение с человекочитаемым представлением
type ValueText struct {
	Text  string  `json:"text"`
	Value float64 `json:"value"`
}

// RouteResponse - оценка маршрута по прямой между объявлением и местом
type RouteResponse struct {
	Distance ValueText           `json:"distance"`
	Duration ValueText           `json:"duration"`
	Route    []domain.Coordinate `json:"route"`
}

// CacheStatsResponse - состояние кеша инфраструктуры
type CacheStatsResponse struct {
	CacheSize int    `json:"cacheSize"`
	Timestamp string `json:"timestamp"`
}
