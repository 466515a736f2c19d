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

// DefaultOpenWeatherBaseURL is the root of both the geocoding and current weather APIs.
const DefaultOpenWeatherBaseURL = "https://api.openweathermap.org"

// OpenWeatherProvider implements weather.Geocoder and weather.WeatherSource
// for OpenWeatherMap.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	units   weather.Units
	limit   int
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewOpenWeatherProvider creates an OpenWeatherMap provider. limit is the
// number of geocoding matches requested; only the first one is used.
func NewOpenWeatherProvider(client *http.Client, apiKey, baseURL string, units weather.Units, limit int) *OpenWeatherProvider {
	if baseURL == "" {
		baseURL = DefaultOpenWeatherBaseURL
	}
	if limit <= 0 {
		limit = 1
	}
	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		units:   units,
		limit:   limit,
		client:  client,
		circuit: newCircuitBreaker("openweather"),
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// Geocode calls the direct geocoding endpoint.
func (p *OpenWeatherProvider) Geocode(ctx context.Context, cityName string) ([]weather.GeoMatch, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("openweather %w", errMissingKey)
	}

	values := url.Values{}
	values.Set("q", cityName)
	values.Set("limit", strconv.Itoa(p.limit))
	values.Set("appid", p.apiKey)

	var payload []struct {
		Name    string  `json:"name"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
		Country string  `json:"country"`
		State   string  `json:"state"`
	}

	u := fmt.Sprintf("%s/geo/1.0/direct?%s", p.baseURL, values.Encode())
	if err := getJSON(ctx, p.client, p.circuit, u, &payload); err != nil {
		return nil, err
	}

	matches := make([]weather.GeoMatch, 0, len(payload))
	for _, m := range payload {
		matches = append(matches, weather.GeoMatch{
			Name:    m.Name,
			Lat:     m.Lat,
			Lon:     m.Lon,
			Country: m.Country,
			State:   m.State,
		})
	}
	return matches, nil
}

// Current calls the current weather endpoint. Temperatures come back in the
// configured units.
func (p *OpenWeatherProvider) Current(ctx context.Context, lat, lon float64) (weather.Conditions, error) {
	if p.apiKey == "" {
		return weather.Conditions{}, fmt.Errorf("openweather %w", errMissingKey)
	}

	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	values.Set("units", string(p.units))
	values.Set("appid", p.apiKey)

	var payload struct {
		Weather []struct {
			Main string `json:"main"`
		} `json:"weather"`
		Main struct {
			Temp    float64 `json:"temp"`
			TempMin float64 `json:"temp_min"`
			TempMax float64 `json:"temp_max"`
		} `json:"main"`
	}

	u := fmt.Sprintf("%s/data/2.5/weather?%s", p.baseURL, values.Encode())
	if err := getJSON(ctx, p.client, p.circuit, u, &payload); err != nil {
		return weather.Conditions{}, err
	}

	if len(payload.Weather) == 0 {
		return weather.Conditions{}, fmt.Errorf("openweather response has no weather conditions")
	}

	return weather.Conditions{
		Summary: payload.Weather[0].Main,
		Temp:    payload.Main.Temp,
		TempMin: payload.Main.TempMin,
		TempMax: payload.Main.TempMax,
	}, nil
}
