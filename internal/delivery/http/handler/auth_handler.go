package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/country-explorer/internal/config"
	"github.com/country-explorer/internal/pkg/utils"
	"github.com/country-explorer/internal/pkg/validator"
	"github.com/country-explorer/internal/usecase"
	"github.com/country-explorer/internal/usecase/dto"
)

// AuthHandler - обработчик mock-аутентификации. Блоб сессии - источник
// истины; обе cookie (сессия и короткоживущий auth-маркер) пишутся только
// здесь, на login/logout.
type AuthHandler struct {
	authUC       *usecase.AuthUseCase
	liveSearchUC *usecase.LiveSearchUseCase
	sessionCfg   *config.SessionConfig
	logger       *zap.Logger
}

// NewAuthHandler - создание нового AuthHandler
func NewAuthHandler(
	authUC *usecase.AuthUseCase,
	liveSearchUC *usecase.LiveSearchUseCase,
	sessionCfg *config.SessionConfig,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUC:       authUC,
		liveSearchUC: liveSearchUC,
		sessionCfg:   sessionCfg,
		logger:       logger,
	}
}

// Login godoc
// @Summary Mock-логин
// @Description Принимает любые непустые креденшелы, помечает сессию аутентифицированной и выставляет cookie сессии и производный auth-маркер
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Креденшелы"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendValidationError(c, err)
	}

	sessionID, err := h.authUC.Login(c.Context(), c.Cookies(h.sessionCfg.CookieName))
	if err != nil {
		return utils.SendError(c, err)
	}

	h.setSessionCookies(c, sessionID)

	return utils.SendSuccess(c, dto.SessionResponse{IsAuthenticated: true}, nil)
}

// Logout godoc
// @Summary Logout
// @Description Снимает флаг аутентификации, полностью очищает избранное сессии и гасит обе cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sessionID := c.Cookies(h.sessionCfg.CookieName)

	if err := h.authUC.Logout(c.Context(), sessionID); err != nil {
		return utils.SendError(c, err)
	}

	// Состояние live-поиска умирает вместе с сессией
	if sessionID != "" {
		h.liveSearchUC.Drop(sessionID)
	}

	h.clearSessionCookies(c)

	return utils.SendSuccess(c, dto.SessionResponse{IsAuthenticated: false}, nil)
}

func (h *AuthHandler) setSessionCookies(c *fiber.Ctx, sessionID string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.sessionCfg.CookieName,
		Value:    sessionID,
		MaxAge:   int(h.sessionCfg.TTL.Seconds()),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	// Производная проекция флага для внешних проверок границы маршрутов.
	// Не источник истины: короткий TTL, перечитывается только через login.
	c.Cookie(&fiber.Cookie{
		Name:     h.sessionCfg.AuthCookieName,
		Value:    "1",
		MaxAge:   int(h.sessionCfg.AuthCookieTTL.Seconds()),
		SameSite: "Lax",
	})
}

func (h *AuthHandler) clearSessionCookies(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     h.sessionCfg.CookieName,
		Value:    "",
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: "Lax",
	})
	c.Cookie(&fiber.Cookie{
		Name:     h.sessionCfg.AuthCookieName,
		Value:    "",
		MaxAge:   -1,
		SameSite: "Lax",
	})
}
