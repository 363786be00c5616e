package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/country-explorer/internal/domain"
	"github.com/country-explorer/internal/domain/repository"
	"github.com/country-explorer/internal/pkg/errors"
	"github.com/country-explorer/internal/pkg/utils"
	"github.com/country-explorer/internal/usecase/dto"
)

// FavoritesUseCase - use case избранного. Состояние живет в сессионном
// блобе: загрузка перед операцией, write-through запись после каждой мутации.
type FavoritesUseCase struct {
	sessionRepo repository.SessionRepository
	logger      *zap.Logger
	sessionTTL  time.Duration

	// now подменяется в тестах
	now func() time.Time
}

// NewFavoritesUseCase - создание нового FavoritesUseCase
func NewFavoritesUseCase(
	sessionRepo repository.SessionRepository,
	logger *zap.Logger,
	sessionTTL time.Duration,
) *FavoritesUseCase {
	return &FavoritesUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
		sessionTTL:  sessionTTL,
		now:         time.Now,
	}
}

// Toggle переключает избранность кода. Возвращает true, если код добавлен.
func (uc *FavoritesUseCase) Toggle(ctx context.Context, sessionID, code string) (bool, error) {
	if !utils.ValidateCode(code) {
		return false, errors.ErrInvalidCountryCode
	}

	state, err := uc.load(ctx, sessionID)
	if err != nil {
		return false, err
	}

	added := state.Toggle(code, uc.now())
	uc.persist(ctx, sessionID, state)
	return added, nil
}

// Add добавляет код с опциональной заметкой; повторное добавление - no-op
func (uc *FavoritesUseCase) Add(ctx context.Context, sessionID, code, notes string) error {
	if !utils.ValidateCode(code) {
		return errors.ErrInvalidCountryCode
	}

	state, err := uc.load(ctx, sessionID)
	if err != nil {
		return err
	}

	if state.Add(code, notes, uc.now()) {
		uc.persist(ctx, sessionID, state)
	}
	return nil
}

// Remove удаляет код; отсутствующий код - no-op
func (uc *FavoritesUseCase) Remove(ctx context.Context, sessionID, code string) error {
	state, err := uc.load(ctx, sessionID)
	if err != nil {
		return err
	}

	if state.Remove(code) {
		uc.persist(ctx, sessionID, state)
	}
	return nil
}

// SetNote устанавливает заметку; неизвестный код молча игнорируется
func (uc *FavoritesUseCase) SetNote(ctx context.Context, sessionID, code, note string) error {
	state, err := uc.load(ctx, sessionID)
	if err != nil {
		return err
	}

	if state.SetNote(code, note) {
		uc.persist(ctx, sessionID, state)
	}
	return nil
}

// ClearNote очищает заметку; неизвестный код молча игнорируется
func (uc *FavoritesUseCase) ClearNote(ctx context.Context, sessionID, code string) error {
	state, err := uc.load(ctx, sessionID)
	if err != nil {
		return err
	}

	if state.ClearNote(code) {
		uc.persist(ctx, sessionID, state)
	}
	return nil
}

// ClearAll очищает избранное целиком
func (uc *FavoritesUseCase) ClearAll(ctx context.Context, sessionID string) error {
	state, err := uc.load(ctx, sessionID)
	if err != nil {
		return err
	}

	state.ClearAll()
	uc.persist(ctx, sessionID, state)
	return nil
}

// List возвращает избранное, упорядоченное по времени добавления
func (uc *FavoritesUseCase) List(ctx context.Context, sessionID string, ascending bool) (*dto.FavoritesResponse, error) {
	state, err := uc.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	codes := state.CodesByDate(ascending)
	return &dto.FavoritesResponse{
		Favorites: dto.ConvertFavorites(state, codes),
		Total:     len(codes),
	}, nil
}

// Recent возвращает до limit недавно добавленных кодов
func (uc *FavoritesUseCase) Recent(ctx context.Context, sessionID string, limit int) ([]string, error) {
	state, err := uc.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return state.RecentCodes(limit), nil
}

// Export сериализует текущее избранное в транспортный документ
func (uc *FavoritesUseCase) Export(ctx context.Context, sessionID string) (*domain.FavoritesExport, error) {
	state, err := uc.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return state.Export(uc.now()), nil
}

// Import вливает документ экспорта. Малформированный документ -
// типизированная ошибка, состояние не меняется.
func (uc *FavoritesUseCase) Import(ctx context.Context, sessionID string, doc []byte) (*dto.ImportResponse, error) {
	state, err := uc.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	merged, err := state.Import(doc, uc.now())
	if err != nil {
		uc.logger.Warn("Favorites import rejected",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return nil, err
	}

	if merged > 0 {
		uc.persist(ctx, sessionID, state)
	}

	uc.logger.Info("Favorites imported",
		zap.String("session_id", sessionID),
		zap.Int("merged", merged),
		zap.Int("total", len(state.Favorites)))

	return &dto.ImportResponse{
		Imported: merged,
		Total:    len(state.Favorites),
	}, nil
}

func (uc *FavoritesUseCase) load(ctx context.Context, sessionID string) (*domain.FavoritesState, error) {
	state, err := uc.sessionRepo.Load(ctx, sessionID)
	if err != nil {
		uc.logger.Error("Failed to load session state",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return nil, errors.ErrSessionUnavailable
	}
	if state == nil {
		state = domain.NewFavoritesState()
	}
	return state, nil
}

// persist - write-through запись блоба. Best-effort: неуспех логируется и
// не превращается в пользовательскую ошибку.
func (uc *FavoritesUseCase) persist(ctx context.Context, sessionID string, state *domain.FavoritesState) {
	if err := uc.sessionRepo.Save(ctx, sessionID, state, uc.sessionTTL); err != nil {
		uc.logger.Error("Failed to persist session state",
			zap.String("session_id", sessionID),
			zap.Error(err))
	}
}
