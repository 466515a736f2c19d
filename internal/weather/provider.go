package weather

import "context"

// Geocoder resolves a free-text city name into zero or more matches.
// An empty slice with a nil error means the name was not found.
type Geocoder interface {
	Name() string
	Geocode(ctx context.Context, cityName string) ([]GeoMatch, error)
}

// WeatherSource abstracts a current-weather data source (e.g. OpenWeatherMap, Open-Meteo, WeatherAPI).
type WeatherSource interface {
	Name() string
	Current(ctx context.Context, lat, lon float64) (Conditions, error)
}

// Collection is the contract the saved-cities store must satisfy.
type Collection interface {
	Add(record WeatherRecord)
	ClearAll()
	Size() int
	List() []WeatherRecord
}
