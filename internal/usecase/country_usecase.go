package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/country-explorer/internal/domain"
	"github.com/country-explorer/internal/domain/repository"
	"github.com/country-explorer/internal/pkg/errors"
	"github.com/country-explorer/internal/pkg/utils"
)

// CountryUseCase - use case детальной страницы страны
type CountryUseCase struct {
	countryRepo repository.CountryRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	detailTTL   time.Duration
}

// NewCountryUseCase - создание нового CountryUseCase
func NewCountryUseCase(
	countryRepo repository.CountryRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	detailTTL time.Duration,
) *CountryUseCase {
	return &CountryUseCase{
		countryRepo: countryRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		detailTTL:   detailTTL,
	}
}

// GetByCode возвращает детальную запись с обогащением соседей. Неуспех
// вторичного запроса (детали стран-соседей) не фатален для основного.
func (uc *CountryUseCase) GetByCode(ctx context.Context, code string) (*domain.DetailedCountry, error) {
	if !utils.ValidateCode(code) {
		return nil, errors.ErrInvalidCountryCode
	}
	normalized := utils.NormalizeCode(code)

	cached, err := uc.cacheRepo.GetCountry(ctx, normalized)
	if err != nil {
		uc.logger.Warn("Detail cache unavailable",
			zap.String("code", normalized),
			zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	country, err := uc.countryRepo.FetchByCode(ctx, normalized)
	if err != nil {
		uc.logger.Error("Failed to fetch country",
			zap.String("code", normalized),
			zap.Error(err))
		return nil, err
	}

	uc.enrichBorders(ctx, country)

	if err := uc.cacheRepo.SetCountry(ctx, country, uc.detailTTL); err != nil {
		uc.logger.Warn("Failed to cache country detail",
			zap.String("code", normalized),
			zap.Error(err))
	}

	return country, nil
}

// enrichBorders подгружает базовые записи стран-соседей. Деградирует молча
// (с логом): детальная страница отдается и без списка соседей.
func (uc *CountryUseCase) enrichBorders(ctx context.Context, country *domain.DetailedCountry) {
	if len(country.Borders) == 0 {
		return
	}

	borders, err := uc.countryRepo.FetchManyByCodes(ctx, country.Borders)
	if err != nil {
		uc.logger.Warn("Border enrichment failed, serving detail without it",
			zap.String("code", country.Code),
			zap.Strings("borders", country.Borders),
			zap.Error(err))
		return
	}

	basics := make([]domain.BasicCountry, 0, len(borders))
	for _, b := range borders {
		basics = append(basics, b.BasicCountry)
	}
	country.BorderCountries = basics
}
