package errors

import "net/http"

var (
	ErrMissingSearchCriteria = New(
		"MISSING_SEARCH_CRITERIA",
		"At least one search parameter is required",
		http.StatusBadRequest,
	)

	ErrInvalidPriceRange = New(
		"INVALID_PRICE_RANGE",
		"Minimum price cannot be greater than maximum price",
		http.StatusBadRequest,
	)

	ErrInvalidBedroomRange = New(
		"INVALID_BEDROOM_RANGE",
		"Minimum bedrooms cannot be greater than maximum bedrooms",
		http.StatusBadRequest,
	)

	ErrMissingPropertyID = New(
		"MISSING_PROPERTY_ID",
		"Property ID is required",
		http.StatusBadRequest,
	)

	ErrPropertyNotFound = New(
		"PROPERTY_NOT_FOUND",
		"Property not found",
		http.StatusNotFound,
	)

	ErrMissingPlaceID = New(
		"MISSING_PLACE_ID",
		"Place ID is required",
		http.StatusBadRequest,
	)

	ErrPlaceNotFound = New(
		"PLACE_NOT_FOUND",
		"Place not found",
		http.StatusNotFound,
	)

	ErrInvalidAmenityTypes = New(
		"INVALID_AMENITY_TYPES",
		"At least one valid amenity type is required",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
