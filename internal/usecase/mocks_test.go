package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/country-explorer/internal/domain"
)

// MockCountryRepository is a mock of CountryRepository
type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) FetchAllBasic(ctx context.Context) ([]domain.BasicCountry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BasicCountry), args.Error(1)
}

func (m *MockCountryRepository) FetchByCode(ctx context.Context, code string) (*domain.DetailedCountry, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DetailedCountry), args.Error(1)
}

func (m *MockCountryRepository) FetchManyByCodes(ctx context.Context, codes []string) ([]domain.DetailedCountry, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DetailedCountry), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetCatalog(ctx context.Context) ([]domain.BasicCountry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BasicCountry), args.Error(1)
}

func (m *MockCacheRepository) SetCatalog(ctx context.Context, countries []domain.BasicCountry, ttl time.Duration) error {
	args := m.Called(ctx, countries, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetCountry(ctx context.Context, code string) (*domain.DetailedCountry, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DetailedCountry), args.Error(1)
}

func (m *MockCacheRepository) SetCountry(ctx context.Context, country *domain.DetailedCountry, ttl time.Duration) error {
	args := m.Called(ctx, country, ttl)
	return args.Error(0)
}

// MockSessionRepository is a mock of SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Load(ctx context.Context, sessionID string) (*domain.FavoritesState, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FavoritesState), args.Error(1)
}

func (m *MockSessionRepository) Save(ctx context.Context, sessionID string, state *domain.FavoritesState, ttl time.Duration) error {
	args := m.Called(ctx, sessionID, state, ttl)
	return args.Error(0)
}

func (m *MockSessionRepository) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
