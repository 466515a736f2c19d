package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-city-lookup/internal/weather"
)

func record(city, state, country, summary string, temp, high, low float64) weather.WeatherRecord {
	return weather.WeatherRecord{
		CityName:            city,
		StateName:           state,
		CountryAbbreviation: country,
		WeatherSummary:      summary,
		CurrentTemperature:  temp,
		DailyHigh:           high,
		DailyLow:            low,
	}
}

func TestNewCityCollectionIsEmpty(t *testing.T) {
	c := NewCityCollection()
	assert.Equal(t, 0, c.Size())
	assert.Empty(t, c.List())
}

func TestAddCity(t *testing.T) {
	c := NewCityCollection()
	c.Add(record("Chicago", "Illinois", "US", "cloudy", 75.6, 78.9, 65.2))

	require.Equal(t, 1, c.Size())
	want := []weather.WeatherRecord{{
		CityName:            "Chicago",
		StateName:           "Illinois",
		CountryAbbreviation: "US",
		WeatherSummary:      "cloudy",
		CurrentTemperature:  75.6,
		DailyHigh:           78.9,
		DailyLow:            65.2,
	}}
	if diff := cmp.Diff(want, c.List()); diff != "" {
		t.Fatalf("unexpected records (-want +got):\n%s", diff)
	}
}

func TestAddDuplicateKeepsFirst(t *testing.T) {
	c := NewCityCollection()
	first := record("New Orleans", "Louisiana", "US", "sunny", 87.6, 78.9, 65.2)
	c.Add(first)
	c.Add(first)
	c.Add(record("New Orleans", "Louisiana", "US", "rain", 60.1, 61.0, 55.5))

	require.Equal(t, 1, c.Size())
	if diff := cmp.Diff(first, c.List()[0]); diff != "" {
		t.Fatalf("first record was modified (-want +got):\n%s", diff)
	}
}

func TestAddIsCaseSensitive(t *testing.T) {
	c := NewCityCollection()
	c.Add(record("Paris", "", "FR", "clear", 1, 2, 0))
	c.Add(record("paris", "", "FR", "clear", 1, 2, 0))

	assert.Equal(t, 2, c.Size())
}

func TestAddPreservesFirstInsertionOrder(t *testing.T) {
	c := NewCityCollection()
	for _, name := range []string{"Denver", "Dublin", "Denver", "Austin", "Dublin"} {
		c.Add(record(name, "", "US", "", 0, 0, 0))
	}

	var got []string
	for _, r := range c.List() {
		got = append(got, r.CityName)
	}
	assert.Equal(t, []string{"Denver", "Dublin", "Austin"}, got)
}

func TestClearAll(t *testing.T) {
	c := NewCityCollection()
	c.Add(record("New Orleans", "Louisiana", "US", "sunny", 87.6, 78.9, 65.2))
	c.Add(record("Denver", "Colorado", "US", "windy", 94.5, 95.6, 56.7))
	require.Equal(t, 2, c.Size())

	c.ClearAll()
	assert.Equal(t, 0, c.Size())

	c.ClearAll()
	assert.Equal(t, 0, c.Size())
	assert.Empty(t, c.List())
}

func TestClearAllLeavesNoResidue(t *testing.T) {
	c := NewCityCollection()
	c.Add(record("A", "", "", "", 0, 0, 0))
	c.Add(record("B", "", "", "", 0, 0, 0))
	c.ClearAll()
	require.Equal(t, 0, c.Size())

	c.Add(record("C", "", "", "", 0, 0, 0))
	c.Add(record("A", "", "", "", 0, 0, 0))

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, "C", list[0].CityName)
	assert.Equal(t, "A", list[1].CityName)
}

func TestListReturnsCopy(t *testing.T) {
	c := NewCityCollection()
	c.Add(record("Chicago", "Illinois", "US", "cloudy", 1, 2, 0))

	list := c.List()
	list[0].CityName = "Mutated"

	assert.Equal(t, "Chicago", c.List()[0].CityName)
}

func TestConcurrentAddKeepsNamesUnique(t *testing.T) {
	c := NewCityCollection()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Add(record(fmt.Sprintf("city-%d", i%10), "", "", "", 0, 0, 0))
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool)
	for _, r := range c.List() {
		assert.False(t, seen[r.CityName], "duplicate %s", r.CityName)
		seen[r.CityName] = true
	}
	assert.Equal(t, 10, c.Size())
}
