package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/country-explorer/internal/domain"
	"github.com/country-explorer/internal/domain/repository"
	"github.com/country-explorer/internal/pkg/debounce"
	"github.com/country-explorer/internal/pkg/errors"
)

// refreshDebounce - окно коалесинга фоновых ревалидаций каталога: всплеск
// запросов при недоступном кеше порождает одно обновление, не шторм
const refreshDebounce = 5 * time.Second

// CatalogUseCase - use case каталога стран: cache-aside загрузка,
// фильтрация/сортировка, список регионов
type CatalogUseCase struct {
	countryRepo repository.CountryRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	catalogTTL  time.Duration

	refresher *debounce.Debouncer[struct{}]
}

// NewCatalogUseCase - создание нового CatalogUseCase
func NewCatalogUseCase(
	countryRepo repository.CountryRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	catalogTTL time.Duration,
) *CatalogUseCase {
	uc := &CatalogUseCase{
		countryRepo: countryRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		catalogTTL:  catalogTTL,
	}

	uc.refresher = debounce.New(refreshDebounce, func(struct{}) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := uc.Refresh(ctx); err != nil {
			uc.logger.Warn("Background catalog revalidation failed", zap.Error(err))
		}
	})

	return uc
}

// Catalog возвращает полный каталог: из кеша, при промахе - с загрузкой
// от upstream и записью в кеш
func (uc *CatalogUseCase) Catalog(ctx context.Context) ([]domain.BasicCountry, error) {
	cached, err := uc.cacheRepo.GetCatalog(ctx)
	if err != nil {
		// Кеш недоступен: отвечаем прямой загрузкой и планируем
		// коалесцированную ревалидацию на момент восстановления кеша
		uc.logger.Warn("Catalog cache unavailable", zap.Error(err))
		uc.ScheduleRevalidation()
	}
	if cached != nil {
		return cached, nil
	}

	return uc.fetchAndCache(ctx)
}

// List возвращает представление каталога по критериям и полный размер каталога
func (uc *CatalogUseCase) List(ctx context.Context, criteria domain.SearchCriteria) ([]domain.BasicCountry, int, error) {
	if !criteria.Valid() {
		return nil, 0, errors.ErrInvalidRequest
	}

	catalog, err := uc.Catalog(ctx)
	if err != nil {
		return nil, 0, err
	}

	return domain.ApplyCriteria(catalog, criteria), len(catalog), nil
}

// Regions возвращает список регионов для фильтра
func (uc *CatalogUseCase) Regions(ctx context.Context) ([]string, error) {
	catalog, err := uc.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Regions(catalog), nil
}

// Refresh принудительно перечитывает каталог от upstream в кеш.
// Используется воркером периодической ревалидации.
func (uc *CatalogUseCase) Refresh(ctx context.Context) error {
	_, err := uc.fetchAndCache(ctx)
	return err
}

// ScheduleRevalidation планирует фоновое обновление каталога; повторные
// вызовы в окне дебаунса схлопываются в одно
func (uc *CatalogUseCase) ScheduleRevalidation() {
	uc.refresher.Set(struct{}{})
}

// Close отменяет запланированную ревалидацию
func (uc *CatalogUseCase) Close() {
	uc.refresher.Stop()
}

func (uc *CatalogUseCase) fetchAndCache(ctx context.Context) ([]domain.BasicCountry, error) {
	countries, err := uc.countryRepo.FetchAllBasic(ctx)
	if err != nil {
		uc.logger.Error("Failed to fetch country catalog", zap.Error(err))
		return nil, err
	}

	// Запись в кеш - best-effort: неуспех логируется, ответ не страдает
	if err := uc.cacheRepo.SetCatalog(ctx, countries, uc.catalogTTL); err != nil {
		uc.logger.Warn("Failed to cache country catalog", zap.Error(err))
	}

	return countries, nil
}
