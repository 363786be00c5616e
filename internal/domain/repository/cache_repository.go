package repository

import (
	"context"
	"time"

	"github.com/country-explorer/internal/domain"
)

// CacheRepository определяет методы для работы с кешем. Промах кеша - это
// (nil, nil), а не ошибка.
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetCatalog получает каталог стран из кеша
	GetCatalog(ctx context.Context) ([]domain.BasicCountry, error)

	// SetCatalog сохраняет каталог стран в кеше
	SetCatalog(ctx context.Context, countries []domain.BasicCountry, ttl time.Duration) error

	// GetCountry получает детальную запись из кеша
	GetCountry(ctx context.Context, code string) (*domain.DetailedCountry, error)

	// SetCountry сохраняет детальную запись в кеше
	SetCountry(ctx context.Context, country *domain.DetailedCountry, ttl time.Duration) error
}
