package providers

import (
	"fmt"
	"net/http"

	"github.com/i474232898/weather-city-lookup/internal/config"
	"github.com/i474232898/weather-city-lookup/internal/weather"
)

// NewGeocoder builds the geocoder selected by cfg.Geocoder.
func NewGeocoder(client *http.Client, cfg *config.AppConfig) (weather.Geocoder, error) {
	switch cfg.Geocoder {
	case config.BackendOpenWeather:
		return NewOpenWeatherProvider(client, cfg.OpenWeatherAPIKey, cfg.OpenWeatherBaseURL, cfg.Units, cfg.GeocodingLimit), nil
	case config.BackendOpenMeteo:
		return NewOpenMeteoProvider(client, cfg.OpenMeteoGeocodingURL, cfg.OpenMeteoForecastURL, cfg.Units), nil
	case config.BackendGoogle:
		if cfg.GoogleGeocodingAPIKey == "" {
			return nil, fmt.Errorf("google %w", errMissingKey)
		}
		return NewGoogleGeocoder(client, cfg.GoogleGeocodingAPIKey), nil
	default:
		return nil, fmt.Errorf("unknown geocoder %q", cfg.Geocoder)
	}
}

// NewWeatherSource builds the weather source selected by cfg.WeatherSource.
func NewWeatherSource(client *http.Client, cfg *config.AppConfig) (weather.WeatherSource, error) {
	switch cfg.WeatherSource {
	case config.BackendOpenWeather:
		return NewOpenWeatherProvider(client, cfg.OpenWeatherAPIKey, cfg.OpenWeatherBaseURL, cfg.Units, cfg.GeocodingLimit), nil
	case config.BackendOpenMeteo:
		return NewOpenMeteoProvider(client, cfg.OpenMeteoGeocodingURL, cfg.OpenMeteoForecastURL, cfg.Units), nil
	case config.BackendWeatherAPI:
		return NewWeatherAPIProvider(client, cfg.WeatherAPIKey, cfg.WeatherAPIBaseURL, cfg.Units), nil
	default:
		return nil, fmt.Errorf("unknown weather source %q", cfg.WeatherSource)
	}
}
