package domain

// BasicCountry - запись каталога стран. Поле Code (2-буквенный alpha-код)
// является идентичностью записи; хранится и сравнивается в lowercase.
type BasicCountry struct {
	Code         string   `json:"code"`
	CommonName   string   `json:"common_name"`
	OfficialName string   `json:"official_name"`
	FlagURL      string   `json:"flag_url"`
	Population   int64    `json:"population"`
	Region       string   `json:"region"`
	Capitals     []string `json:"capitals,omitempty"`
}

// Currency - валюта страны
type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
}

// Demonym - название жителей страны
type Demonym struct {
	Female string `json:"f,omitempty"`
	Male   string `json:"m,omitempty"`
}

// LatLng - координаты центра страны
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DetailedCountry - расширенная запись для страницы страны. Отсутствующее
// опциональное поле - это nil, а не пустая коллекция: upstream различает
// "нет данных" и "пустой список".
type DetailedCountry struct {
	BasicCountry

	Subregion   string              `json:"subregion,omitempty"`
	Area        float64             `json:"area,omitempty"`
	Languages   map[string]string   `json:"languages,omitempty"`
	Currencies  map[string]Currency `json:"currencies,omitempty"`
	Borders     []string            `json:"borders,omitempty"`
	Timezones   []string            `json:"timezones,omitempty"`
	Coordinates *LatLng             `json:"coordinates,omitempty"`
	Demonyms    map[string]Demonym  `json:"demonyms,omitempty"`

	// BorderCountries заполняется отдельным запросом и может отсутствовать,
	// если обогащение не удалось - это не ошибка основного запроса
	BorderCountries []BasicCountry `json:"border_countries,omitempty"`
}
