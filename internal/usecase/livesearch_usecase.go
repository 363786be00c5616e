package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/country-explorer/internal/domain"
	"github.com/country-explorer/internal/pkg/debounce"
	"github.com/country-explorer/internal/usecase/dto"
)

// LiveSearchUseCase - поиск-по-мере-ввода. На сессию держится один
// дебаунсер запроса: сырой ввод виден сразу, результаты пересчитываются
// только по устоявшемуся значению. Запоздавший пересчет перекрывается
// следующим (last-applied-wins).
type LiveSearchUseCase struct {
	catalogUC *CatalogUseCase
	logger    *zap.Logger
	delay     time.Duration

	mu       sync.Mutex
	sessions map[string]*debounce.Search
}

// NewLiveSearchUseCase - создание нового LiveSearchUseCase
func NewLiveSearchUseCase(
	catalogUC *CatalogUseCase,
	logger *zap.Logger,
	delay time.Duration,
) *LiveSearchUseCase {
	return &LiveSearchUseCase{
		catalogUC: catalogUC,
		logger:    logger,
		delay:     delay,
		sessions:  make(map[string]*debounce.Search),
	}
}

// Update принимает очередное значение запроса сессии и возвращает состояние
// поиска плюс результаты по устоявшемуся запросу
func (uc *LiveSearchUseCase) Update(
	ctx context.Context,
	sessionID, term string,
	criteria domain.SearchCriteria,
) (*dto.LiveSearchResponse, error) {
	search := uc.searchFor(sessionID)
	search.Update(term)

	// Результаты всегда по устоявшемуся значению, не по сырому вводу
	criteria.SearchTerm = search.Settled()

	view, _, err := uc.catalogUC.List(ctx, criteria)
	if err != nil {
		return nil, err
	}

	return &dto.LiveSearchResponse{
		Term:        search.Term(),
		SettledTerm: search.Settled(),
		IsPending:   search.Pending(),
		HasActive:   search.Active(),
		Countries:   view,
		Total:       len(view),
	}, nil
}

// Drop выбрасывает состояние поиска сессии (вызывается на logout), отменяя
// ожидающее обновление
func (uc *LiveSearchUseCase) Drop(sessionID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if search, ok := uc.sessions[sessionID]; ok {
		search.Stop()
		delete(uc.sessions, sessionID)
	}
}

// Close останавливает дебаунсеры всех сессий
func (uc *LiveSearchUseCase) Close() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for id, search := range uc.sessions {
		search.Stop()
		delete(uc.sessions, id)
	}
}

func (uc *LiveSearchUseCase) searchFor(sessionID string) *debounce.Search {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if search, ok := uc.sessions[sessionID]; ok {
		return search
	}
	search := debounce.NewSearch(uc.delay)
	uc.sessions[sessionID] = search
	return search
}
