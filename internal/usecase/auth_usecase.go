package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/country-explorer/internal/domain"
	"github.com/country-explorer/internal/domain/repository"
	"github.com/country-explorer/internal/pkg/errors"
)

// AuthStatus - состояние сессии после гидратации
type AuthStatus string

const (
	// StatusUnknown - состояние прочитать не удалось (хранилище недоступно);
	// охраняемые маршруты отвечают заглушкой, а не отказом
	StatusUnknown AuthStatus = "unknown"

	StatusUnauthenticated AuthStatus = "unauthenticated"
	StatusAuthenticated   AuthStatus = "authenticated"
)

// AuthUseCase - use case mock-аутентификации. Сессионный блоб - единственный
// источник истины; cookie-маркер пишется только на login/logout как
// производная проекция.
type AuthUseCase struct {
	sessionRepo repository.SessionRepository
	logger      *zap.Logger
	sessionTTL  time.Duration
}

// NewAuthUseCase - создание нового AuthUseCase
func NewAuthUseCase(
	sessionRepo repository.SessionRepository,
	logger *zap.Logger,
	sessionTTL time.Duration,
) *AuthUseCase {
	return &AuthUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
		sessionTTL:  sessionTTL,
	}
}

// Resolve - гидратация флага аутентификации для запроса.
// Переход из Unknown происходит ровно один раз на запрос - здесь.
func (uc *AuthUseCase) Resolve(ctx context.Context, sessionID string) AuthStatus {
	if sessionID == "" {
		return StatusUnauthenticated
	}

	state, err := uc.sessionRepo.Load(ctx, sessionID)
	if err != nil {
		uc.logger.Error("Failed to hydrate session",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return StatusUnknown
	}
	if state == nil || !state.Authenticated {
		return StatusUnauthenticated
	}
	return StatusAuthenticated
}

// Login выставляет флаг аутентификации в блобе сессии. Пустой sessionID
// означает новую сессию. Возвращает идентификатор сессии.
func (uc *AuthUseCase) Login(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	state, err := uc.sessionRepo.Load(ctx, sessionID)
	if err != nil {
		uc.logger.Error("Failed to load session on login",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return "", errors.ErrSessionUnavailable
	}
	if state == nil {
		state = domain.NewFavoritesState()
	}

	state.Login()

	// Логин обязан зафиксировать состояние, иначе маркер и блоб разъедутся
	if err := uc.sessionRepo.Save(ctx, sessionID, state, uc.sessionTTL); err != nil {
		uc.logger.Error("Failed to persist session on login",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return "", errors.ErrSessionUnavailable
	}

	uc.logger.Info("Session authenticated", zap.String("session_id", sessionID))
	return sessionID, nil
}

// Logout снимает флаг и полностью очищает избранное сессии
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	state, err := uc.sessionRepo.Load(ctx, sessionID)
	if err != nil {
		uc.logger.Error("Failed to load session on logout",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return errors.ErrSessionUnavailable
	}
	if state == nil {
		return nil
	}

	state.Logout()

	if err := uc.sessionRepo.Save(ctx, sessionID, state, uc.sessionTTL); err != nil {
		uc.logger.Error("Failed to persist session on logout",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return errors.ErrSessionUnavailable
	}

	uc.logger.Info("Session logged out", zap.String("session_id", sessionID))
	return nil
}
