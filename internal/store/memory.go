package store

import (
	"sync"

	"github.com/i474232898/weather-city-lookup/internal/weather"
)

// CityCollection is a concurrency-safe, insertion-ordered set of weather
// records keyed by city name.
type CityCollection struct {
	mu sync.RWMutex

	records []weather.WeatherRecord
	// key: exact city name
	index map[string]struct{}
}

// NewCityCollection creates an empty CityCollection.
func NewCityCollection() *CityCollection {
	return &CityCollection{
		index: make(map[string]struct{}),
	}
}

// Add appends record unless a record with the same city name is already
// saved. A duplicate is silently ignored: the existing entry keeps its
// payload and position.
func (c *CityCollection) Add(record weather.WeatherRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.index[record.CityName]; ok {
		return
	}
	c.index[record.CityName] = struct{}{}
	c.records = append(c.records, record)
}

// ClearAll removes every record.
func (c *CityCollection) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = nil
	c.index = make(map[string]struct{})
}

// Size returns the number of saved records.
func (c *CityCollection) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// List returns a copy of the saved records in insertion order.
func (c *CityCollection) List() []weather.WeatherRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]weather.WeatherRecord, len(c.records))
	copy(out, c.records)
	return out
}
