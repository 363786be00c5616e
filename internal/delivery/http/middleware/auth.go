package middleware

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/country-explorer/internal/pkg/errors"
	"github.com/country-explorer/internal/pkg/utils"
	"github.com/country-explorer/internal/usecase"
)

// SessionIDKey - ключ c.Locals, под которым guard кладет идентификатор
// сессии для охраняемых обработчиков
const SessionIDKey = "session_id"

// RequireAuth - route guard: пропускает только аутентифицированные сессии.
// Unknown (хранилище сессий недоступно) отвечает заглушкой 503, а
// неаутентифицированный запрос получает 401 с путем возврата для редиректа.
func RequireAuth(authUC *usecase.AuthUseCase, cookieName string, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(cookieName)

		switch authUC.Resolve(c.Context(), sessionID) {
		case usecase.StatusAuthenticated:
			c.Locals(SessionIDKey, sessionID)
			return c.Next()

		case usecase.StatusUnknown:
			return utils.SendError(c, errors.ErrSessionUnavailable)

		default:
			logger.Debug("Unauthenticated request to guarded route",
				zap.String("path", c.Path()))
			return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
				Error: errors.ErrUnauthorized.WithDetails(map[string]interface{}{
					"redirect": "/login?return_to=" + url.QueryEscape(c.OriginalURL()),
				}),
			})
		}
	}
}

// SessionID достает идентификатор сессии, положенный guard'ом
func SessionID(c *fiber.Ctx) string {
	if id, ok := c.Locals(SessionIDKey).(string); ok {
		return id
	}
	return ""
}
