package domain

// SortBy - ключ сортировки каталога
type SortBy string

const (
	SortByName       SortBy = "name"
	SortByPopulation SortBy = "population"
	SortByArea       SortBy = "area"
)

// SortOrder - направление сортировки
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SearchCriteria - состояние поиска/фильтра/сортировки. Чистые данные без
// скрытого состояния: результат пересчитывается при каждом изменении.
type SearchCriteria struct {
	SearchTerm string    `json:"search_term"`
	Region     string    `json:"region"`
	SortBy     SortBy    `json:"sort_by"`
	SortOrder  SortOrder `json:"sort_order"`
}

// Valid проверяет значения перечислений; пустые считаются значениями по
// умолчанию (name/asc)
func (c SearchCriteria) Valid() bool {
	switch c.SortBy {
	case "", SortByName, SortByPopulation, SortByArea:
	default:
		return false
	}
	switch c.SortOrder {
	case "", SortAsc, SortDesc:
	default:
		return false
	}
	return true
}
