package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/country-explorer/internal/config"
	"github.com/country-explorer/internal/pkg/utils"
	"github.com/country-explorer/internal/pkg/validator"
	"github.com/country-explorer/internal/usecase"
	"github.com/country-explorer/internal/usecase/dto"
)

// CountryHandler - обработчик каталога и детальных страниц стран
type CountryHandler struct {
	catalogUC    *usecase.CatalogUseCase
	countryUC    *usecase.CountryUseCase
	liveSearchUC *usecase.LiveSearchUseCase
	sessionCfg   *config.SessionConfig
	logger       *zap.Logger
}

// NewCountryHandler - создание нового CountryHandler
func NewCountryHandler(
	catalogUC *usecase.CatalogUseCase,
	countryUC *usecase.CountryUseCase,
	liveSearchUC *usecase.LiveSearchUseCase,
	sessionCfg *config.SessionConfig,
	logger *zap.Logger,
) *CountryHandler {
	return &CountryHandler{
		catalogUC:    catalogUC,
		countryUC:    countryUC,
		liveSearchUC: liveSearchUC,
		sessionCfg:   sessionCfg,
		logger:       logger,
	}
}

// List godoc
// @Summary Каталог стран
// @Description Возвращает каталог стран, отфильтрованный и отсортированный по критериям. Поиск регистронезависимый по названиям, столицам и региону.
// @Tags Countries
// @Produce json
// @Param search query string false "Поисковый запрос"
// @Param region query string false "Точное название региона"
// @Param sort_by query string false "Ключ сортировки (name, population, area)" default(name)
// @Param sort_order query string false "Направление (asc, desc)" default(asc)
// @Success 200 {object} utils.SuccessResponse{data=dto.CountryListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/countries [get]
func (h *CountryHandler) List(c *fiber.Ctx) error {
	var req dto.CountryListRequest
	req.Search = c.Query("search")
	req.Region = c.Query("region")
	req.SortBy = c.Query("sort_by", "name")
	req.SortOrder = c.Query("sort_order", "asc")

	// Валидация
	if err := validator.Validate(&req); err != nil {
		return utils.SendValidationError(c, err)
	}

	view, total, err := h.catalogUC.List(c.Context(), req.ToCriteria())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.CountryListResponse{
		Countries: view,
		Total:     total,
	}, &utils.Meta{
		Total:    total,
		Filtered: len(view),
	})
}

// Live godoc
// @Summary Поиск по мере ввода
// @Description Принимает очередное значение поискового запроса сессии. Результаты пересчитываются только после паузы во вводе (дебаунс), сырое значение отражается сразу.
// @Tags Countries
// @Produce json
// @Param term query string false "Текущее значение запроса"
// @Param region query string false "Точное название региона"
// @Param sort_by query string false "Ключ сортировки (name, population, area)" default(name)
// @Param sort_order query string false "Направление (asc, desc)" default(asc)
// @Success 200 {object} utils.SuccessResponse{data=dto.LiveSearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/countries/live [get]
func (h *CountryHandler) Live(c *fiber.Ctx) error {
	var req dto.CountryListRequest
	req.Region = c.Query("region")
	req.SortBy = c.Query("sort_by", "name")
	req.SortOrder = c.Query("sort_order", "asc")

	if err := validator.Validate(&req); err != nil {
		return utils.SendValidationError(c, err)
	}

	result, err := h.liveSearchUC.Update(
		c.Context(),
		h.browserSession(c),
		c.Query("term"),
		req.ToCriteria(),
	)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}

// GetByCode godoc
// @Summary Детальная запись страны
// @Description Возвращает детальную запись по 2-буквенному alpha-коду с обогащением стран-соседей. Неуспех обогащения не фатален: запись отдается без соседей.
// @Tags Countries
// @Produce json
// @Param code path string true "Alpha-код страны (регистронезависимый)"
// @Success 200 {object} utils.SuccessResponse{data=domain.DetailedCountry}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/countries/{code} [get]
func (h *CountryHandler) GetByCode(c *fiber.Ctx) error {
	country, err := h.countryUC.GetByCode(c.Context(), c.Params("code"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, country, nil)
}

// Regions godoc
// @Summary Список регионов
// @Description Возвращает уникальные регионы каталога для фильтра
// @Tags Countries
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.RegionsResponse}
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/regions [get]
func (h *CountryHandler) Regions(c *fiber.Ctx) error {
	regions, err := h.catalogUC.Regions(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.RegionsResponse{Regions: regions}, &utils.Meta{
		Total: len(regions),
	})
}

// browserSession возвращает идентификатор браузерной сессии, создавая
// cookie при первом обращении. Сессия - это не аутентификация: live-поиск
// доступен и анонимно.
func (h *CountryHandler) browserSession(c *fiber.Ctx) string {
	if id := c.Cookies(h.sessionCfg.CookieName); id != "" {
		return id
	}

	id := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     h.sessionCfg.CookieName,
		Value:    id,
		MaxAge:   int(h.sessionCfg.TTL.Seconds()),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return id
}
