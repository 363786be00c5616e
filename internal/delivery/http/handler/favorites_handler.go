package handler

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/country-explorer/internal/delivery/http/middleware"
	"github.com/country-explorer/internal/pkg/utils"
	"github.com/country-explorer/internal/pkg/validator"
	"github.com/country-explorer/internal/usecase"
	"github.com/country-explorer/internal/usecase/dto"
)

// FavoritesHandler - обработчик избранного. Все маршруты за guard'ом:
// идентификатор сессии берется из Locals.
type FavoritesHandler struct {
	favoritesUC *usecase.FavoritesUseCase
	logger      *zap.Logger
}

// NewFavoritesHandler - создание нового FavoritesHandler
func NewFavoritesHandler(favoritesUC *usecase.FavoritesUseCase, logger *zap.Logger) *FavoritesHandler {
	return &FavoritesHandler{
		favoritesUC: favoritesUC,
		logger:      logger,
	}
}

// List godoc
// @Summary Избранные страны
// @Description Возвращает избранное сессии, упорядоченное по времени добавления (по умолчанию новые первыми)
// @Tags Favorites
// @Produce json
// @Param order query string false "Порядок по времени добавления (asc, desc)" default(desc)
// @Success 200 {object} utils.SuccessResponse{data=dto.FavoritesResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/favorites [get]
func (h *FavoritesHandler) List(c *fiber.Ctx) error {
	ascending := c.Query("order") == "asc"

	result, err := h.favoritesUC.List(c.Context(), middleware.SessionID(c), ascending)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}

// Recent godoc
// @Summary Недавно добавленные
// @Description Возвращает до limit недавно добавленных кодов, самые новые первыми
// @Tags Favorites
// @Produce json
// @Param limit query int false "Максимум кодов" default(5)
// @Success 200 {object} utils.SuccessResponse{data=dto.RecentResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/favorites/recent [get]
func (h *FavoritesHandler) Recent(c *fiber.Ctx) error {
	codes, err := h.favoritesUC.Recent(c.Context(), middleware.SessionID(c), c.QueryInt("limit", 0))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.RecentResponse{Codes: codes}, nil)
}

// Toggle godoc
// @Summary Переключить избранность
// @Description Добавляет страну в избранное, если ее там нет, и удаляет, если есть
// @Tags Favorites
// @Produce json
// @Param code path string true "Alpha-код страны"
// @Success 200 {object} utils.SuccessResponse{data=dto.ToggleResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/favorites/{code}/toggle [post]
func (h *FavoritesHandler) Toggle(c *fiber.Ctx) error {
	code := c.Params("code")

	favorited, err := h.favoritesUC.Toggle(c.Context(), middleware.SessionID(c), code)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ToggleResponse{
		Code:      utils.NormalizeCode(code),
		Favorited: favorited,
	}, nil)
}

// Add godoc
// @Summary Добавить в избранное
// @Description Добавляет страну с опциональной заметкой; повторное добавление - no-op
// @Tags Favorites
// @Accept json
// @Produce json
// @Param code path string true "Alpha-код страны"
// @Param request body dto.AddFavoriteRequest false "Опциональная заметка"
// @Success 200 {object} utils.SuccessResponse{data=dto.ToggleResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/favorites/{code} [put]
func (h *FavoritesHandler) Add(c *fiber.Ctx) error {
	var req dto.AddFavoriteRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := validator.Validate(&req); err != nil {
			return utils.SendValidationError(c, err)
		}
	}

	code := c.Params("code")
	if err := h.favoritesUC.Add(c.Context(), middleware.SessionID(c), code, req.Notes); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ToggleResponse{
		Code:      utils.NormalizeCode(code),
		Favorited: true,
	}, nil)
}

// Remove godoc
// @Summary Удалить из избранного
// @Description Удаляет страну; отсутствующий код - no-op
// @Tags Favorites
// @Produce json
// @Param code path string true "Alpha-код страны"
// @Success 200 {object} utils.SuccessResponse{data=dto.ToggleResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/favorites/{code} [delete]
func (h *FavoritesHandler) Remove(c *fiber.Ctx) error {
	code := c.Params("code")

	if err := h.favoritesUC.Remove(c.Context(), middleware.SessionID(c), code); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ToggleResponse{
		Code:      utils.NormalizeCode(code),
		Favorited: false,
	}, nil)
}

// SetNote godoc
// @Summary Заметка к избранному
// @Description Устанавливает заметку, сохраняя время добавления. Неизвестный код молча игнорируется.
// @Tags Favorites
// @Accept json
// @Produce json
// @Param code path string true "Alpha-код страны"
// @Param request body dto.NoteRequest true "Заметка"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/favorites/{code}/note [put]
func (h *FavoritesHandler) SetNote(c *fiber.Ctx) error {
	var req dto.NoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendValidationError(c, err)
	}

	if err := h.favoritesUC.SetNote(c.Context(), middleware.SessionID(c), c.Params("code"), req.Note); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"ok": true}, nil)
}

// ClearNote godoc
// @Summary Удалить заметку
// @Description Очищает заметку, сохраняя время добавления. Неизвестный код молча игнорируется.
// @Tags Favorites
// @Produce json
// @Param code path string true "Alpha-код страны"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/favorites/{code}/note [delete]
func (h *FavoritesHandler) ClearNote(c *fiber.Ctx) error {
	if err := h.favoritesUC.ClearNote(c.Context(), middleware.SessionID(c), c.Params("code")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"ok": true}, nil)
}

// ClearAll godoc
// @Summary Очистить избранное
// @Description Атомарно очищает избранное, метаданные и очередь недавних
// @Tags Favorites
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/favorites [delete]
func (h *FavoritesHandler) ClearAll(c *fiber.Ctx) error {
	if err := h.favoritesUC.ClearAll(c.Context(), middleware.SessionID(c)); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"ok": true}, nil)
}

// Export godoc
// @Summary Экспорт избранного
// @Description Отдает документ экспорта {version, exportedAt, favorites} как скачиваемый файл
// @Tags Favorites
// @Produce json
// @Success 200 {object} domain.FavoritesExport
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/favorites/export [get]
func (h *FavoritesHandler) Export(c *fiber.Ctx) error {
	doc, err := h.favoritesUC.Export(c.Context(), middleware.SessionID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		h.logger.Error("Failed to marshal export document", zap.Error(err))
		return utils.SendError(c, err)
	}

	filename := fmt.Sprintf("favorites-%s.json", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}

// Import godoc
// @Summary Импорт избранного
// @Description Вливает документ экспорта: дубликаты пропускаются, малформированный документ отклоняется без изменения состояния
// @Tags Favorites
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.ImportResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/favorites/import [post]
func (h *FavoritesHandler) Import(c *fiber.Ctx) error {
	result, err := h.favoritesUC.Import(c.Context(), middleware.SessionID(c), c.Body())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
