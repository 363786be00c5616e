package domain

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/country-explorer/internal/pkg/utils"
)

// ApplyCriteria - чистая функция представления каталога: фильтрует и
// сортирует копию входного среза по критериям. Вход не модифицируется,
// повторный вызов с теми же аргументами дает идентичный результат.
func ApplyCriteria(countries []BasicCountry, criteria SearchCriteria) []BasicCountry {
	term := utils.NormalizeTerm(criteria.SearchTerm)

	result := make([]BasicCountry, 0, len(countries))
	for _, c := range countries {
		if criteria.Region != "" && c.Region != criteria.Region {
			continue
		}
		if term != "" && !matchesTerm(c, term) {
			continue
		}
		result = append(result, c)
	}

	cmp := comparatorFor(criteria.SortBy)
	desc := criteria.SortOrder == SortDesc

	// Стабильная сортировка: при равных ключах сохраняется входной порядок
	sort.SliceStable(result, func(i, j int) bool {
		v := cmp(result[i], result[j])
		if desc {
			return v > 0
		}
		return v < 0
	})

	return result
}

// matchesTerm - регистронезависимое вхождение подстроки в любое из: общее
// название, официальное название, любая столица, регион
func matchesTerm(c BasicCountry, term string) bool {
	if strings.Contains(strings.ToLower(c.CommonName), term) {
		return true
	}
	if strings.Contains(strings.ToLower(c.OfficialName), term) {
		return true
	}
	for _, capital := range c.Capitals {
		if strings.Contains(strings.ToLower(capital), term) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(c.Region), term)
}

func comparatorFor(key SortBy) func(a, b BasicCountry) int {
	switch key {
	case SortByPopulation, SortByArea:
		// SortByArea сравнивает население: в базовой записи каталога нет
		// поля площади, реальная площадь доступна только в детальной записи
		return func(a, b BasicCountry) int {
			switch {
			case a.Population < b.Population:
				return -1
			case a.Population > b.Population:
				return 1
			}
			return 0
		}
	default:
		// Локале-зависимое сравнение названий
		col := collate.New(language.English, collate.Loose)
		return func(a, b BasicCountry) int {
			return col.CompareString(a.CommonName, b.CommonName)
		}
	}
}

// Regions возвращает отсортированный список уникальных регионов каталога
func Regions(countries []BasicCountry) []string {
	seen := make(map[string]struct{})
	regions := make([]string, 0)
	for _, c := range countries {
		if c.Region == "" {
			continue
		}
		if _, ok := seen[c.Region]; ok {
			continue
		}
		seen[c.Region] = struct{}{}
		regions = append(regions, c.Region)
	}
	sort.Strings(regions)
	return regions
}
