package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/property-search-service/internal/pkg/utils"
	"github.com/property-search-service/internal/pkg/validator"
	"github.com/property-search-service/internal/usecase"
	"github.com/property-search-service/internal/usecase/dto"
)

// PropertyHandler - обработчик запросов по объявлениям
type PropertyHandler struct {
	searchUC *usecase.SearchUseCase
	statsUC  *usecase.StatsUseCase
	logger   *zap.Logger
}

// NewPropertyHandler - создание нового PropertyHandler
func NewPropertyHandler(searchUC *usecase.SearchUseCase, statsUC *usecase.StatsUseCase, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{
		searchUC: searchUC,
		statsUC:  statsUC,
		logger:   logger,
	}
}

// Search godoc
// @Summary Поиск объявлений о продаже недвижимости
// @Description Фильтрация по городу, цене, типу и числу спален с сортировкой и пагинацией. Требуется хотя бы один фильтр.
// @Tags Properties
// @Accept json
// @Produce json
// @Param city query string false "Город (поиск по подстроке, без учёта регистра)"
// @Param minPrice query int false "Минимальная цена"
// @Param maxPrice query int false "Максимальная цена"
// @Param propertyType query string false "Тип недвижимости (apartment, villa, house, studio, penthouse)"
// @Param minBedrooms query int false "Минимум спален"
// @Param maxBedrooms query int false "Максимум спален"
// @Param sortBy query string false "Поле сортировки (price, listedDate, area)" default(listedDate)
// @Param sortOrder query string false "Порядок сортировки (asc, desc)" default(desc)
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы (1-50)" default(12)
// @Success 200 {object} dto.PropertySearchResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/properties/search [get]
func (h *PropertyHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchPropertiesRequest
	req.City = c.Query("city")
	req.MinPrice = queryInt64Ptr(c, "minPrice")
	req.MaxPrice = queryInt64Ptr(c, "maxPrice")
	req.PropertyType = c.Query("propertyType")
	req.MinBedrooms = queryIntPtr(c, "minBedrooms")
	req.MaxBedrooms = queryIntPtr(c, "maxBedrooms")
	req.SortBy = c.Query("sortBy")
	req.SortOrder = c.Query("sortOrder")
	req.Page = c.QueryInt("page", 0)
	req.Limit = c.QueryInt("limit", 0)

	// Валидация
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	// Выполнение use case
	result, err := h.searchUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}

// GetByID godoc
// @Summary Получение объявления по ID
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path string true "ID объявления"
// @Success 200 {object} domain.Listing
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/properties/{id} [get]
func (h *PropertyHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	listing, err := h.searchUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(listing)
}

// GetStats godoc
// @Summary Агрегированная статистика по объявлениям
// @Description Количество объявлений, средняя цена, города, типы и распределение по ценовым диапазонам
// @Tags Properties
// @Accept json
// @Produce json
// @Success 200 {object} domain.ListingStatistics
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/properties/stats [get]
func (h *PropertyHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.statsUC.GetStatistics(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(stats)
}

// queryIntPtr парсит опциональный числовой query-параметр.
// Отсутствие и мусорное значение означают открытую границу
func queryIntPtr(c *fiber.Ctx, key string) *int {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func queryInt64Ptr(c *fiber.Ctx, key string) *int64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
