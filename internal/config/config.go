package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/i474232898/weather-city-lookup/internal/weather"
)

// Provider backends selectable for each lookup stage.
const (
	BackendOpenWeather = "openweather"
	BackendOpenMeteo   = "openmeteo"
	BackendWeatherAPI  = "weatherapi"
	BackendGoogle      = "google"
)

type AppConfig struct {
	Port string `envconfig:"PORT" default:"8080"`

	OpenWeatherAPIKey     string `envconfig:"OPENWEATHER_API_KEY"`
	WeatherAPIKey         string `envconfig:"WEATHERAPI_API_KEY"`
	GoogleGeocodingAPIKey string `envconfig:"GOOGLE_GEOCODING_API_KEY"`

	// Which backend serves each stage of a lookup.
	Geocoder      string `envconfig:"GEOCODER" default:"openweather" validate:"oneof=openweather openmeteo google"`
	WeatherSource string `envconfig:"WEATHER_SOURCE" default:"openweather" validate:"oneof=openweather openmeteo weatherapi"`

	Units          weather.Units `envconfig:"UNITS" default:"imperial" validate:"oneof=imperial metric"`
	GeocodingLimit int           `envconfig:"GEOCODING_LIMIT" default:"1" validate:"min=1,max=5"`
	HTTPTimeout    time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s" validate:"gt=0"`

	OpenWeatherBaseURL    string `envconfig:"OPENWEATHER_BASE_URL" default:"https://api.openweathermap.org" validate:"url"`
	OpenMeteoGeocodingURL string `envconfig:"OPENMETEO_GEOCODING_URL" default:"https://geocoding-api.open-meteo.com" validate:"url"`
	OpenMeteoForecastURL  string `envconfig:"OPENMETEO_FORECAST_URL" default:"https://api.open-meteo.com" validate:"url"`
	WeatherAPIBaseURL     string `envconfig:"WEATHERAPI_BASE_URL" default:"https://api.weatherapi.com/v1" validate:"url"`

	// Cities looked up and saved once at startup.
	PresetCities []string `envconfig:"WEATHER_PRESET_CITIES"`

	// How often the saved cities are cleared (0 = never).
	ResetInterval time.Duration `envconfig:"COLLECTION_RESET_INTERVAL" default:"0" validate:"min=0"`
}

var validate = validator.New()

// Load reads configuration from a .env file (if any) and the environment.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	cfg.PresetCities = cleanCities(cfg.PresetCities)

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func cleanCities(cities []string) []string {
	var out []string
	for _, c := range cities {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}
