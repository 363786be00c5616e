package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/country-explorer/internal/domain"
	"github.com/country-explorer/internal/domain/repository"
)

const sessionKeyPrefix = "session:state:"

type sessionRepository struct {
	redis  *Redis
	logger *zap.Logger
}

// NewSessionRepository создает хранилище сессионных блобов поверх Redis.
// Один namespaced-ключ на сессию, блоб перезаписывается целиком.
func NewSessionRepository(r *Redis, logger *zap.Logger) repository.SessionRepository {
	return &sessionRepository{
		redis:  r,
		logger: logger,
	}
}

func (s *sessionRepository) Load(ctx context.Context, sessionID string) (*domain.FavoritesState, error) {
	data, err := s.redis.Client().Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session load %q: %w", sessionID, err)
	}

	var state domain.FavoritesState
	if err := json.Unmarshal(data, &state); err != nil {
		// Нечитаемый блоб отбрасывается: сессия начинает с чистого состояния
		s.logger.Warn("Dropping corrupted session blob",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return nil, nil
	}

	if state.Favorites == nil {
		state.Favorites = make(map[string]domain.FavoriteMeta)
	}
	if state.RecentlyAdded == nil {
		state.RecentlyAdded = make([]string, 0)
	}
	return &state, nil
}

func (s *sessionRepository) Save(ctx context.Context, sessionID string, state *domain.FavoritesState, ttl time.Duration) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session %q: %w", sessionID, err)
	}
	if err := s.redis.Client().Set(ctx, sessionKeyPrefix+sessionID, data, ttl).Err(); err != nil {
		return fmt.Errorf("session save %q: %w", sessionID, err)
	}
	return nil
}

func (s *sessionRepository) Delete(ctx context.Context, sessionID string) error {
	if err := s.redis.Client().Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("session delete %q: %w", sessionID, err)
	}
	return nil
}
