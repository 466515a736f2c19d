package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/i474232898/weather-city-lookup/internal/weather"
	"github.com/sony/gobreaker"
)

const (
	DefaultOpenMeteoGeocodingURL = "https://geocoding-api.open-meteo.com"
	DefaultOpenMeteoForecastURL  = "https://api.open-meteo.com"
)

// OpenMeteoProvider implements weather.Geocoder and weather.WeatherSource for
// Open-Meteo. It does not require an API key.
type OpenMeteoProvider struct {
	name         string
	geocodingURL string
	forecastURL  string
	units        weather.Units
	client       *http.Client
	circuit      *gobreaker.CircuitBreaker
}

func NewOpenMeteoProvider(client *http.Client, geocodingURL, forecastURL string, units weather.Units) *OpenMeteoProvider {
	if geocodingURL == "" {
		geocodingURL = DefaultOpenMeteoGeocodingURL
	}
	if forecastURL == "" {
		forecastURL = DefaultOpenMeteoForecastURL
	}
	return &OpenMeteoProvider{
		name:         "openmeteo",
		geocodingURL: strings.TrimRight(geocodingURL, "/"),
		forecastURL:  strings.TrimRight(forecastURL, "/"),
		units:        units,
		client:       client,
		circuit:      newCircuitBreaker("openmeteo"),
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

// Geocode calls the Open-Meteo search endpoint. A name with no matches comes
// back without a "results" field, which decodes to an empty slice.
func (p *OpenMeteoProvider) Geocode(ctx context.Context, cityName string) ([]weather.GeoMatch, error) {
	values := url.Values{}
	values.Set("name", cityName)
	values.Set("count", "1")
	values.Set("language", "en")
	values.Set("format", "json")

	var payload struct {
		Results []struct {
			Name        string  `json:"name"`
			Latitude    float64 `json:"latitude"`
			Longitude   float64 `json:"longitude"`
			CountryCode string  `json:"country_code"`
			Admin1      string  `json:"admin1"`
		} `json:"results"`
	}

	u := fmt.Sprintf("%s/v1/search?%s", p.geocodingURL, values.Encode())
	if err := getJSON(ctx, p.client, p.circuit, u, &payload); err != nil {
		return nil, err
	}

	matches := make([]weather.GeoMatch, 0, len(payload.Results))
	for _, r := range payload.Results {
		matches = append(matches, weather.GeoMatch{
			Name:    r.Name,
			Lat:     r.Latitude,
			Lon:     r.Longitude,
			Country: r.CountryCode,
			State:   r.Admin1,
		})
	}
	return matches, nil
}

func (p *OpenMeteoProvider) Current(ctx context.Context, lat, lon float64) (weather.Conditions, error) {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	values.Set("current", "temperature_2m,weather_code")
	values.Set("daily", "temperature_2m_max,temperature_2m_min")
	values.Set("forecast_days", "1")
	values.Set("timezone", "auto")
	if p.units == weather.UnitsImperial {
		values.Set("temperature_unit", "fahrenheit")
	}

	var payload struct {
		Current struct {
			Temperature float64 `json:"temperature_2m"`
			WeatherCode *int    `json:"weather_code"`
		} `json:"current"`
		Daily struct {
			Max []float64 `json:"temperature_2m_max"`
			Min []float64 `json:"temperature_2m_min"`
		} `json:"daily"`
	}

	u := fmt.Sprintf("%s/v1/forecast?%s", p.forecastURL, values.Encode())
	if err := getJSON(ctx, p.client, p.circuit, u, &payload); err != nil {
		return weather.Conditions{}, err
	}

	if payload.Current.WeatherCode == nil {
		return weather.Conditions{}, fmt.Errorf("openmeteo response has no weather code")
	}
	if len(payload.Daily.Max) == 0 || len(payload.Daily.Min) == 0 {
		return weather.Conditions{}, fmt.Errorf("openmeteo response has no daily temperatures")
	}

	return weather.Conditions{
		Summary: openMeteoSummary(*payload.Current.WeatherCode),
		Temp:    payload.Current.Temperature,
		TempMax: payload.Daily.Max[0],
		TempMin: payload.Daily.Min[0],
	}, nil
}

// openMeteoSummary maps a WMO weather code to a short descriptor in the style
// of OpenWeatherMap's "main" field.
func openMeteoSummary(code int) string {
	switch {
	case code == 0:
		return "Clear"
	case code >= 1 && code <= 3:
		return "Clouds"
	case code == 45 || code == 48:
		return "Fog"
	case code >= 51 && code <= 57:
		return "Drizzle"
	case (code >= 61 && code <= 67) || (code >= 80 && code <= 82):
		return "Rain"
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return "Snow"
	case code >= 95:
		return "Thunderstorm"
	default:
		return "Unknown"
	}
}
