package crisis

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveKnownCountry(t *testing.T) {
	entry := Resolve("PK")
	assert.Equal(t, "15", entry.Emergency)
	assert.NotEmpty(t, entry.Hotlines)
}

func TestResolveNormalizesCode(t *testing.T) {
	assert.Equal(t, Resolve("GB"), Resolve("  gb "))
}

func TestResolveFallsBackToUS(t *testing.T) {
	us := Resolve("US")
	assert.Equal(t, us, Resolve("ZZ"))
	assert.Equal(t, us, Resolve(""))
	assert.Equal(t, us, Resolve("not-a-code"))
	assert.Equal(t, "911", us.Emergency)
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "PK", NormalizeCode("  pk "))
	assert.Equal(t, "US", NormalizeCode(""))
	assert.Equal(t, "US", NormalizeCode("ZZ"))
}

func TestCountryName(t *testing.T) {
	assert.Equal(t, "United States", CountryName("US"))
	assert.Equal(t, "Pakistan", CountryName("PK"))
	assert.Equal(t, "", CountryName("ZZ"))
}

func TestCountriesSortedByName(t *testing.T) {
	list := Countries()
	assert.Len(t, list, 41)
	assert.True(t, sort.SliceIsSorted(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	}))
	for _, c := range list {
		entry, ok := resources[c.Code]
		assert.True(t, ok, c.Code)
		assert.NotEmpty(t, entry.Emergency, c.Code)
	}
}

func TestCountriesReturnsCopy(t *testing.T) {
	list := Countries()
	list[0].Name = "mutated"
	assert.Equal(t, "Argentina", Countries()[0].Name)
}
