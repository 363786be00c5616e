package dto

import (
	"github.com/country-explorer/internal/domain"
)

// CountryListRequest - параметры выборки каталога
type CountryListRequest struct {
	Search    string `json:"search"`
	Region    string `json:"region"`
	SortBy    string `json:"sort_by" validate:"omitempty,oneof=name population area"`
	SortOrder string `json:"sort_order" validate:"omitempty,oneof=asc desc"`
}

// ToCriteria преобразует запрос в доменные критерии с дефолтами name/asc
func (r CountryListRequest) ToCriteria() domain.SearchCriteria {
	criteria := domain.SearchCriteria{
		SearchTerm: r.Search,
		Region:     r.Region,
		SortBy:     domain.SortBy(r.SortBy),
		SortOrder:  domain.SortOrder(r.SortOrder),
	}
	if criteria.SortBy == "" {
		criteria.SortBy = domain.SortByName
	}
	if criteria.SortOrder == "" {
		criteria.SortOrder = domain.SortAsc
	}
	return criteria
}

type CountryListResponse struct {
	Countries []domain.BasicCountry `json:"countries"`
	Total     int                   `json:"total"`
}

type RegionsResponse struct {
	Regions []string `json:"regions"`
}

// LiveSearchResponse - состояние дебаунс-поиска сессии. Countries считаются
// по устоявшемуся запросу, Term отражает сырой ввод.
type LiveSearchResponse struct {
	Term        string                `json:"term"`
	SettledTerm string                `json:"settled_term"`
	IsPending   bool                  `json:"is_pending"`
	HasActive   bool                  `json:"has_active_search"`
	Countries   []domain.BasicCountry `json:"countries"`
	Total       int                   `json:"total"`
}
