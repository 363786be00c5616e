package repository

import (
	"context"

	"github.com/country-explorer/internal/domain"
)

// CountryRepository определяет методы доступа к внешнему источнику данных
// о странах
type CountryRepository interface {
	// FetchAllBasic загружает каталог стран с базовым набором полей.
	// Записи, не прошедшие валидацию, отбрасываются с логированием.
	FetchAllBasic(ctx context.Context) ([]domain.BasicCountry, error)

	// FetchByCode загружает детальную запись по alpha-коду.
	// Отсутствие страны и невалидная запись - различимые типизированные ошибки.
	FetchByCode(ctx context.Context, code string) (*domain.DetailedCountry, error)

	// FetchManyByCodes загружает детальные записи по набору кодов.
	// Пустой вход возвращает пустой срез без сетевого запроса.
	FetchManyByCodes(ctx context.Context, codes []string) ([]domain.DetailedCountry, error)
}
