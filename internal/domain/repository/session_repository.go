package repository

import (
	"context"
	"time"

	"github.com/country-explorer/internal/domain"
)

// SessionRepository определяет хранилище сессионных блобов: единственный
// источник истины для флага аутентификации и избранного. Блоб читается при
// гидратации сессии и перезаписывается целиком при каждой мутации.
type SessionRepository interface {
	// Load читает состояние сессии. Отсутствующая сессия - (nil, nil).
	Load(ctx context.Context, sessionID string) (*domain.FavoritesState, error)

	// Save перезаписывает состояние сессии с TTL
	Save(ctx context.Context, sessionID string, state *domain.FavoritesState, ttl time.Duration) error

	// Delete удаляет состояние сессии
	Delete(ctx context.Context, sessionID string) error
}
