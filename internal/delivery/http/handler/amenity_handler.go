package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/property-search-service/internal/pkg/utils"
	"github.com/property-search-service/internal/pkg/validator"
	"github.com/property-search-service/internal/usecase"
	"github.com/property-search-service/internal/usecase/dto"
)

// AmenityHandler - обработчик запросов по инфраструктуре вокруг объявлений
type AmenityHandler struct {
	amenityUC *usecase.AmenityUseCase
	logger    *zap.Logger
}

// NewAmenityHandler - создание нового AmenityHandler
func NewAmenityHandler(amenityUC *usecase.AmenityUseCase, logger *zap.Logger) *AmenityHandler {
	return &AmenityHandler{
		amenityUC: amenityUC,
		logger:    logger,
	}
}

// GetNearbyAmenities godoc
// @Summary Инфраструктура рядом с объявлением
// @Description Возвращает объекты инфраструктуры по категориям, отсортированные по расстоянию от объявления
// @Tags Amenities
// @Accept json
// @Produce json
// @Param id path string true "ID объявления"
// @Param types query string false "Категории через запятую или повтором параметра (school, hospital, restaurant, bank, gym, shopping_mall, park, metro_station)"
// @Param radius query number false "Радиус поиска в метрах (500-10000)" default(5000)
// @Param limit query int false "Суммарный лимит результатов (1-50)" default(10)
// @Success 200 {object} dto.NearbyAmenitiesResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/properties/{id}/nearby-amenities [get]
func (h *AmenityHandler) GetNearbyAmenities(c *fiber.Ctx) error {
	var req dto.NearbyAmenitiesRequest
	req.PropertyID = c.Params("id")
	req.Types = queryStrings(c, "types")
	req.Radius = c.QueryFloat("radius", 0)
	req.Limit = c.QueryInt("limit", 0)

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.amenityUC.GetNearby(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}

// GetPlaceDetails godoc
// @Summary Подробная информация о месте
// @Tags Amenities
// @Accept json
// @Produce json
// @Param place_id path string true "ID места"
// @Success 200 {object} domain.PlaceDetails
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/amenities/{place_id} [get]
func (h *AmenityHandler) GetPlaceDetails(c *fiber.Ctx) error {
	placeID := c.Params("place_id")

	details, err := h.amenityUC.GetPlaceDetails(c.Context(), placeID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(details)
}

// GetRoute godoc
// @Summary Оценка маршрута от объявления до места
// @Description Расстояние по прямой и оценка времени пешком
// @Tags Amenities
// @Accept json
// @Produce json
// @Param property_id path string true "ID объявления"
// @Param place_id path string true "ID места"
// @Success 200 {object} dto.RouteResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/routes/{property_id}/{place_id} [get]
func (h *AmenityHandler) GetRoute(c *fiber.Ctx) error {
	req := dto.RouteRequest{
		PropertyID: c.Params("property_id"),
		PlaceID:    c.Params("place_id"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.amenityUC.GetRoute(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}

// GetCacheStats godoc
// @Summary Состояние кеша инфраструктуры
// @Tags Amenities
// @Accept json
// @Produce json
// @Success 200 {object} dto.CacheStatsResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/cache/stats [get]
func (h *AmenityHandler) GetCacheStats(c *fiber.Ctx) error {
	result, err := h.amenityUC.GetCacheStats(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}

// queryStrings собирает значения повторяющегося query-параметра,
// дополнительно разбивая каждое по запятым
func queryStrings(c *fiber.Ctx, key string) []string {
	var values []string
	for _, raw := range c.Context().QueryArgs().PeekMulti(key) {
		for _, part := range strings.Split(string(raw), ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				values = append(values, part)
			}
		}
	}
	return values
}
