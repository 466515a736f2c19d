package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/i474232898/weather-city-lookup/internal/weather"
	"github.com/sony/gobreaker"
)

const DefaultWeatherAPIBaseURL = "https://api.weatherapi.com/v1"

// WeatherAPIProvider implements weather.WeatherSource for WeatherAPI.com.
type WeatherAPIProvider struct {
	name    string
	apiKey  string
	baseURL string
	units   weather.Units
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewWeatherAPIProvider(client *http.Client, apiKey, baseURL string, units weather.Units) *WeatherAPIProvider {
	if baseURL == "" {
		baseURL = DefaultWeatherAPIBaseURL
	}
	return &WeatherAPIProvider{
		name:    "weatherapi",
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		units:   units,
		client:  client,
		circuit: newCircuitBreaker("weatherapi"),
	}
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

// Current uses the one-day forecast endpoint, which carries both the current
// reading and today's high and low.
func (p *WeatherAPIProvider) Current(ctx context.Context, lat, lon float64) (weather.Conditions, error) {
	if p.apiKey == "" {
		return weather.Conditions{}, fmt.Errorf("weatherapi %w", errMissingKey)
	}

	values := url.Values{}
	values.Set("key", p.apiKey)
	// WeatherAPI uses "q" for location; it accepts "lat,lon".
	values.Set("q", fmt.Sprintf("%f,%f", lat, lon))
	values.Set("days", "1")

	var payload struct {
		Current struct {
			TempC     float64 `json:"temp_c"`
			TempF     float64 `json:"temp_f"`
			Condition struct {
				Text string `json:"text"`
			} `json:"condition"`
		} `json:"current"`
		Forecast struct {
			ForecastDay []struct {
				Day struct {
					MaxTempC float64 `json:"maxtemp_c"`
					MaxTempF float64 `json:"maxtemp_f"`
					MinTempC float64 `json:"mintemp_c"`
					MinTempF float64 `json:"mintemp_f"`
				} `json:"day"`
			} `json:"forecastday"`
		} `json:"forecast"`
	}

	u := fmt.Sprintf("%s/forecast.json?%s", p.baseURL, values.Encode())
	if err := getJSON(ctx, p.client, p.circuit, u, &payload); err != nil {
		return weather.Conditions{}, err
	}

	if payload.Current.Condition.Text == "" {
		return weather.Conditions{}, fmt.Errorf("weatherapi response has no condition")
	}
	if len(payload.Forecast.ForecastDay) == 0 {
		return weather.Conditions{}, fmt.Errorf("weatherapi response has no forecast day")
	}

	day := payload.Forecast.ForecastDay[0].Day
	cond := weather.Conditions{Summary: payload.Current.Condition.Text}
	if p.units == weather.UnitsMetric {
		cond.Temp, cond.TempMax, cond.TempMin = payload.Current.TempC, day.MaxTempC, day.MinTempC
	} else {
		cond.Temp, cond.TempMax, cond.TempMin = payload.Current.TempF, day.MaxTempF, day.MinTempF
	}
	return cond, nil
}
