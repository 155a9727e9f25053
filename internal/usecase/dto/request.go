package dto

// SearchPropertiesRequest - параметры поиска объявлений.
// Границы диапазонов опциональны: nil означает открытую границу
type SearchPropertiesRequest struct {
	City         string `json:"city"`
	MinPrice     *int64 `json:"minPrice,omitempty"`
	MaxPrice     *int64 `json:"maxPrice,omitempty"`
	PropertyType string `json:"propertyType" validate:"omitempty,oneof=apartment villa house studio penthouse"`
	MinBedrooms  *int   `json:"minBedrooms,omitempty"`
	MaxBedrooms  *int   `json:"maxBedrooms,omitempty"`
	SortBy       string `json:"sortBy" validate:"omitempty,oneof=price listedDate area"`
	SortOrder    string `json:"sortOrder" validate:"omitempty,oneof=asc desc"`
	Page         int    `json:"page"`
	Limit        int    `json:"limit"`
}

// HasFilter проверяет, задан ли хотя бы один положительный фильтр
func (r *SearchPropertiesRequest) HasFilter() bool {
	return r.City != "" ||
		r.MinPrice != nil || r.MaxPrice != nil ||
		r.PropertyType != "" ||
		r.MinBedrooms != nil || r.MaxBedrooms != nil
}

// NearbyAmenitiesRequest - запрос на поиск инфраструктуры рядом с объявлением
type NearbyAmenitiesRequest struct {
	PropertyID string   `json:"propertyId" validate:"required"`
	Types      []string `json:"types,omitempty"`
	Radius     float64  `json:"radius"` // meters, 0 означает значение по умолчанию
	Limit      int      `json:"limit"`  // суммарно по всем категориям
}

// RouteRequest - запрос на оценку маршрута от объявления до места
type RouteRequest struct {
	PropertyID string `json:"propertyId" validate:"required"`
	PlaceID    string `json:"placeId" validate:"required"`
}
