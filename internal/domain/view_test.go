package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() []BasicCountry {
	return []BasicCountry{
		{Code: "us", CommonName: "United States", OfficialName: "United States of America", Population: 331000000, Region: "Americas", Capitals: []string{"Washington, D.C."}},
		{Code: "gb", CommonName: "United Kingdom", OfficialName: "United Kingdom of Great Britain and Northern Ireland", Population: 67000000, Region: "Europe", Capitals: []string{"London"}},
		{Code: "fr", CommonName: "France", OfficialName: "French Republic", Population: 67500000, Region: "Europe", Capitals: []string{"Paris"}},
		{Code: "ca", CommonName: "Canada", OfficialName: "Canada", Population: 38000000, Region: "Americas", Capitals: []string{"Ottawa"}},
		{Code: "jp", CommonName: "Japan", OfficialName: "Japan", Population: 125000000, Region: "Asia", Capitals: []string{"Tokyo"}},
	}
}

func TestApplyCriteria(t *testing.T) {
	t.Run("neutral criteria preserve length", func(t *testing.T) {
		catalog := sampleCatalog()
		result := ApplyCriteria(catalog, SearchCriteria{SortBy: SortByName, SortOrder: SortAsc})
		assert.Len(t, result, len(catalog))
	})

	t.Run("input slice is not modified", func(t *testing.T) {
		catalog := sampleCatalog()
		first := catalog[0].Code
		ApplyCriteria(catalog, SearchCriteria{SortBy: SortByPopulation, SortOrder: SortDesc})
		assert.Equal(t, first, catalog[0].Code)
	})

	t.Run("region filter matches exactly", func(t *testing.T) {
		result := ApplyCriteria(sampleCatalog(), SearchCriteria{
			Region:    "Europe",
			SortBy:    SortByName,
			SortOrder: SortAsc,
		})
		require.Len(t, result, 2)
		for _, c := range result {
			assert.Equal(t, "Europe", c.Region)
		}
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		result := ApplyCriteria(sampleCatalog(), SearchCriteria{
			SearchTerm: "UNITED",
			SortBy:     SortByName,
			SortOrder:  SortAsc,
		})
		require.Len(t, result, 2)
		assert.Equal(t, "gb", result[0].Code)
		assert.Equal(t, "us", result[1].Code)
	})

	t.Run("search matches capital city", func(t *testing.T) {
		result := ApplyCriteria(sampleCatalog(), SearchCriteria{
			SearchTerm: "tokyo",
			SortBy:     SortByName,
			SortOrder:  SortAsc,
		})
		require.Len(t, result, 1)
		assert.Equal(t, "jp", result[0].Code)
	})

	t.Run("whitespace-only term matches everything", func(t *testing.T) {
		result := ApplyCriteria(sampleCatalog(), SearchCriteria{
			SearchTerm: "   ",
			SortBy:     SortByName,
			SortOrder:  SortAsc,
		})
		assert.Len(t, result, len(sampleCatalog()))
	})

	t.Run("population desc is reverse of asc", func(t *testing.T) {
		asc := ApplyCriteria(sampleCatalog(), SearchCriteria{SortBy: SortByPopulation, SortOrder: SortAsc})
		desc := ApplyCriteria(sampleCatalog(), SearchCriteria{SortBy: SortByPopulation, SortOrder: SortDesc})
		require.Len(t, desc, len(asc))
		for i := range asc {
			assert.Equal(t, asc[i].Code, desc[len(desc)-1-i].Code)
		}
	})

	t.Run("combined filter and sort", func(t *testing.T) {
		result := ApplyCriteria(sampleCatalog(), SearchCriteria{
			SearchTerm: "a",
			Region:     "Americas",
			SortBy:     SortByPopulation,
			SortOrder:  SortAsc,
		})
		require.Len(t, result, 2)
		assert.Equal(t, "ca", result[0].Code)
		assert.Equal(t, "us", result[1].Code)
	})

	t.Run("area sorts by population", func(t *testing.T) {
		byArea := ApplyCriteria(sampleCatalog(), SearchCriteria{SortBy: SortByArea, SortOrder: SortDesc})
		byPopulation := ApplyCriteria(sampleCatalog(), SearchCriteria{SortBy: SortByPopulation, SortOrder: SortDesc})
		assert.Equal(t, byPopulation, byArea)
	})

	t.Run("equal keys keep input order", func(t *testing.T) {
		catalog := []BasicCountry{
			{Code: "aa", CommonName: "Alpha", Population: 100},
			{Code: "bb", CommonName: "Beta", Population: 100},
			{Code: "cc", CommonName: "Gamma", Population: 100},
		}
		result := ApplyCriteria(catalog, SearchCriteria{SortBy: SortByPopulation, SortOrder: SortAsc})
		require.Len(t, result, 3)
		assert.Equal(t, "aa", result[0].Code)
		assert.Equal(t, "bb", result[1].Code)
		assert.Equal(t, "cc", result[2].Code)
	})

	t.Run("idempotent for same criteria", func(t *testing.T) {
		criteria := SearchCriteria{SearchTerm: "an", SortBy: SortByName, SortOrder: SortDesc}
		first := ApplyCriteria(sampleCatalog(), criteria)
		second := ApplyCriteria(sampleCatalog(), criteria)
		assert.Equal(t, first, second)
	})
}

func TestRegions(t *testing.T) {
	t.Run("distinct and sorted", func(t *testing.T) {
		regions := Regions(sampleCatalog())
		assert.Equal(t, []string{"Americas", "Asia", "Europe"}, regions)
	})

	t.Run("empty regions are skipped", func(t *testing.T) {
		catalog := []BasicCountry{
			{Code: "aa", CommonName: "Alpha", Region: ""},
			{Code: "bb", CommonName: "Beta", Region: "Oceania"},
		}
		assert.Equal(t, []string{"Oceania"}, Regions(catalog))
	})
}

func TestSearchCriteriaValid(t *testing.T) {
	assert.True(t, SearchCriteria{}.Valid())
	assert.True(t, SearchCriteria{SortBy: SortByName, SortOrder: SortAsc}.Valid())
	assert.False(t, SearchCriteria{SortBy: "capital"}.Valid())
	assert.False(t, SearchCriteria{SortOrder: "sideways"}.Valid())
}
