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
	"github.com/country-explorer/internal/pkg/utils"
)

const (
	catalogKey      = "countries:catalog"
	detailKeyPrefix = "countries:detail:"
)

type cacheRepository struct {
	redis  *Redis
	logger *zap.Logger
}

// NewCacheRepository создает репозиторий кеша каталога поверх Redis
func NewCacheRepository(r *Redis, logger *zap.Logger) repository.CacheRepository {
	return &cacheRepository{
		redis:  r,
		logger: logger,
	}
}

func (c *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.redis.Client().Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		// Промах кеша - не ошибка
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get %q: %w", key, err)
	}
	return data, nil
}

func (c *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.redis.Client().Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %q: %w", key, err)
	}
	return nil
}

func (c *cacheRepository) Delete(ctx context.Context, key string) error {
	if err := c.redis.Client().Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache delete %q: %w", key, err)
	}
	return nil
}

func (c *cacheRepository) GetCatalog(ctx context.Context) ([]domain.BasicCountry, error) {
	data, err := c.Get(ctx, catalogKey)
	if err != nil || data == nil {
		return nil, err
	}

	var countries []domain.BasicCountry
	if err := json.Unmarshal(data, &countries); err != nil {
		// Битая запись кеша равносильна промаху
		c.logger.Warn("Dropping corrupted catalog cache entry", zap.Error(err))
		return nil, nil
	}
	return countries, nil
}

func (c *cacheRepository) SetCatalog(ctx context.Context, countries []domain.BasicCountry, ttl time.Duration) error {
	data, err := json.Marshal(countries)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	return c.Set(ctx, catalogKey, data, ttl)
}

func (c *cacheRepository) GetCountry(ctx context.Context, code string) (*domain.DetailedCountry, error) {
	data, err := c.Get(ctx, detailKeyPrefix+utils.NormalizeCode(code))
	if err != nil || data == nil {
		return nil, err
	}

	var country domain.DetailedCountry
	if err := json.Unmarshal(data, &country); err != nil {
		c.logger.Warn("Dropping corrupted detail cache entry",
			zap.String("code", code),
			zap.Error(err))
		return nil, nil
	}
	return &country, nil
}

func (c *cacheRepository) SetCountry(ctx context.Context, country *domain.DetailedCountry, ttl time.Duration) error {
	data, err := json.Marshal(country)
	if err != nil {
		return fmt.Errorf("marshal country %q: %w", country.Code, err)
	}
	return c.Set(ctx, detailKeyPrefix+country.Code, data, ttl)
}
