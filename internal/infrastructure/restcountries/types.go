package restcountries

import (
	"github.com/country-explorer/internal/domain"
	"github.com/country-explorer/internal/pkg/utils"
)

// apiCountry - запись REST Countries v3.1 с запрошенным подмножеством полей.
// Для каталога приходят только базовые поля, остальные остаются нулевыми.
type apiCountry struct {
	CCA2       string   `json:"cca2" validate:"required,len=2,alpha"`
	Name       apiName  `json:"name"`
	Flags      apiFlags `json:"flags"`
	Population int64    `json:"population" validate:"gte=0"`
	Region     string   `json:"region"`
	Capital    []string `json:"capital"`

	Subregion  string                 `json:"subregion"`
	Area       float64                `json:"area"`
	Languages  map[string]string      `json:"languages"`
	Currencies map[string]apiCurrency `json:"currencies"`
	Borders    []string               `json:"borders"`
	Timezones  []string               `json:"timezones"`
	Latlng     []float64              `json:"latlng"`
	Demonyms   map[string]apiDemonym  `json:"demonyms"`
}

type apiName struct {
	Common   string `json:"common" validate:"required"`
	Official string `json:"official"`
}

type apiFlags struct {
	PNG string `json:"png"`
	SVG string `json:"svg"`
}

type apiCurrency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type apiDemonym struct {
	F string `json:"f"`
	M string `json:"m"`
}

func (r *apiCountry) toBasic() domain.BasicCountry {
	return domain.BasicCountry{
		Code:         utils.NormalizeCode(r.CCA2),
		CommonName:   r.Name.Common,
		OfficialName: r.Name.Official,
		FlagURL:      r.flagURL(),
		Population:   r.Population,
		Region:       r.Region,
		Capitals:     r.Capital,
	}
}

func (r *apiCountry) toDetailed() domain.DetailedCountry {
	detailed := domain.DetailedCountry{
		BasicCountry: r.toBasic(),
		Subregion:    r.Subregion,
		Area:         r.Area,
		Timezones:    r.Timezones,
	}

	// nil-коллекции остаются nil: отсутствие данных отличается от пустоты
	if r.Languages != nil {
		detailed.Languages = r.Languages
	}
	if r.Currencies != nil {
		currencies := make(map[string]domain.Currency, len(r.Currencies))
		for code, cur := range r.Currencies {
			currencies[code] = domain.Currency{Name: cur.Name, Symbol: cur.Symbol}
		}
		detailed.Currencies = currencies
	}
	if r.Borders != nil {
		borders := make([]string, 0, len(r.Borders))
		for _, b := range r.Borders {
			borders = append(borders, utils.NormalizeCode(b))
		}
		detailed.Borders = borders
	}
	if len(r.Latlng) == 2 {
		detailed.Coordinates = &domain.LatLng{Lat: r.Latlng[0], Lng: r.Latlng[1]}
	}
	if r.Demonyms != nil {
		demonyms := make(map[string]domain.Demonym, len(r.Demonyms))
		for lang, d := range r.Demonyms {
			demonyms[lang] = domain.Demonym{Female: d.F, Male: d.M}
		}
		detailed.Demonyms = demonyms
	}

	return detailed
}

func (r *apiCountry) flagURL() string {
	if r.Flags.SVG != "" {
		return r.Flags.SVG
	}
	return r.Flags.PNG
}
