package weather

import (
	"errors"
	"fmt"
)

// Units selects the temperature unit requested from upstream providers.
type Units string

const (
	UnitsImperial Units = "imperial"
	UnitsMetric   Units = "metric"
)

// Symbol returns the degree suffix used when rendering temperatures.
func (u Units) Symbol() string {
	if u == UnitsMetric {
		return "°C"
	}
	return "°F"
}

// WeatherRecord is the saved weather for a single city.
// CityName is the unique key within a collection.
type WeatherRecord struct {
	CityName            string  `json:"cityName"`
	StateName           string  `json:"stateName"`
	CountryAbbreviation string  `json:"countryAbbreviation"`
	WeatherSummary      string  `json:"weatherSummary"`
	CurrentTemperature  float64 `json:"currentTemperature"`
	DailyHigh           float64 `json:"dailyHigh"`
	DailyLow            float64 `json:"dailyLow"`
}

// GeoMatch is a single geocoding result.
// State may be empty; not every locality has a state or province.
type GeoMatch struct {
	Name    string
	Lat     float64
	Lon     float64
	Country string
	State   string
}

// Conditions is the current weather reported for a coordinate pair.
type Conditions struct {
	Summary string
	Temp    float64
	TempMin float64
	TempMax float64
}

// Stage identifies which of the two lookup requests failed.
type Stage string

const (
	StageCoordinates Stage = "coordinates"
	StageWeather     Stage = "weather"
)

var (
	// ErrCoordinates matches any lookup that failed while resolving coordinates.
	ErrCoordinates = errors.New("unable to retrieve coordinates")
	// ErrWeather matches any lookup that failed while retrieving current weather.
	ErrWeather = errors.New("unable to retrieve weather data")
)

// LookupError is returned by Service.Lookup. It carries the searched city name
// and the stage that failed.
type LookupError struct {
	Stage    Stage
	CityName string
	Err      error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s lookup for %q failed: %v", e.Stage, e.CityName, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's stage.
func (e *LookupError) Is(target error) bool {
	switch target {
	case ErrCoordinates:
		return e.Stage == StageCoordinates
	case ErrWeather:
		return e.Stage == StageWeather
	}
	return false
}
