package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-city-lookup/internal/store"
	"github.com/i474232898/weather-city-lookup/internal/weather"
)

// stubUpstream answers geocoding from a fixed table and reports the same
// conditions for every coordinate.
type stubUpstream struct {
	places     map[string]weather.GeoMatch
	weatherErr error
}

func (s *stubUpstream) Name() string { return "stub" }

func (s *stubUpstream) Geocode(_ context.Context, cityName string) ([]weather.GeoMatch, error) {
	m, ok := s.places[cityName]
	if !ok {
		return nil, errors.New("unexpected status code: 404")
	}
	return []weather.GeoMatch{m}, nil
}

func (s *stubUpstream) Current(context.Context, float64, float64) (weather.Conditions, error) {
	if s.weatherErr != nil {
		return weather.Conditions{}, s.weatherErr
	}
	return weather.Conditions{Summary: "Cloudy", Temp: 56.3, TempMax: 58.6, TempMin: 53.8}, nil
}

func newTestApp(up *stubUpstream) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	svc := weather.NewService(up, up, store.NewCityCollection(), nil)
	RegisterRoutes(app, svc, weather.UnitsImperial)
	return app
}

func defaultUpstream() *stubUpstream {
	return &stubUpstream{places: map[string]weather.GeoMatch{
		"Chicago": {Name: "Chicago", Lat: 41.8755616, Lon: -87.6244212, Country: "US", State: "Illinois"},
		"Dublin":  {Name: "Dublin", Lat: 53.3498, Lon: -6.2603, Country: "IE"},
	}}
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]any) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp.StatusCode, out
}

func TestSearchCity(t *testing.T) {
	app := newTestApp(defaultUpstream())

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/cities/search", `{"city": "Chicago"}`)
	require.Equal(t, http.StatusCreated, status)

	banner := body["banner"].(map[string]any)
	assert.Equal(t, "Success", banner["type"])
	assert.Equal(t, "green", banner["color"])

	city := body["city"].(map[string]any)
	assert.Equal(t, "Chicago", city["cityName"])
	assert.Equal(t, "Illinois", city["stateName"])
	assert.Equal(t, 56.3, city["currentTemperature"])

	status, body = doJSON(t, app, http.MethodGet, "/api/v1/banner", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Success", body["type"])
}

func TestSearchCityFromQuery(t *testing.T) {
	app := newTestApp(defaultUpstream())

	status, _ := doJSON(t, app, http.MethodPost, "/api/v1/cities/search?city=Dublin", "")
	assert.Equal(t, http.StatusCreated, status)
}

func TestSearchValidation(t *testing.T) {
	app := newTestApp(defaultUpstream())

	for _, body := range []string{`{"city": ""}`, `{"city": "   "}`, `{"city": "` + strings.Repeat("x", 101) + `"}`, `{bad json`} {
		status, resp := doJSON(t, app, http.MethodPost, "/api/v1/cities/search", body)
		assert.Equal(t, http.StatusBadRequest, status, body)
		assert.Equal(t, true, resp["error"])
	}
}

func TestSearchStageFailures(t *testing.T) {
	weatherDown := defaultUpstream()
	weatherDown.weatherErr = errors.New("unexpected status code: 404")

	cases := []struct {
		name    string
		up      *stubUpstream
		message string
	}{
		{
			name:    "coordinates",
			up:      &stubUpstream{},
			message: "ERROR! Unable to retrieve coordinates (latitude, longitude) for Chicago!",
		},
		{
			name:    "weather",
			up:      weatherDown,
			message: "ERROR! Unable to retrieve weather data for Chicago!",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(tc.up)

			status, body := doJSON(t, app, http.MethodPost, "/api/v1/cities/search", `{"city": "Chicago"}`)
			require.Equal(t, http.StatusBadGateway, status)

			banner := body["banner"].(map[string]any)
			assert.Equal(t, tc.message, banner["message"])
			assert.Equal(t, "red", banner["color"])

			_, list := doJSON(t, app, http.MethodGet, "/api/v1/cities", "")
			assert.Equal(t, float64(0), list["count"])
		})
	}
}

func TestListAndClearCities(t *testing.T) {
	app := newTestApp(defaultUpstream())

	_, body := doJSON(t, app, http.MethodGet, "/api/v1/cities", "")
	assert.Equal(t, float64(0), body["count"])
	assert.NotContains(t, body, "clearLabel")

	for _, city := range []string{"Chicago", "Dublin", "Chicago"} {
		doJSON(t, app, http.MethodPost, "/api/v1/cities/search", `{"city": "`+city+`"}`)
	}

	status, body := doJSON(t, app, http.MethodGet, "/api/v1/cities", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(2), body["count"])
	assert.Equal(t, "Clear Weather Data (2)", body["clearLabel"])

	cards := body["cards"].([]any)
	require.Len(t, cards, 2)
	assert.Equal(t, "Chicago, Illinois", cards[0].(map[string]any)["heading"])
	assert.Equal(t, "Dublin", cards[1].(map[string]any)["heading"])

	status, _ = doJSON(t, app, http.MethodDelete, "/api/v1/cities", "")
	assert.Equal(t, http.StatusNoContent, status)

	_, body = doJSON(t, app, http.MethodGet, "/api/v1/cities", "")
	assert.Equal(t, float64(0), body["count"])
}

func TestClearBanner(t *testing.T) {
	app := newTestApp(&stubUpstream{})
	doJSON(t, app, http.MethodPost, "/api/v1/cities/search", `{"city": "Chicago"}`)

	status, _ := doJSON(t, app, http.MethodDelete, "/api/v1/banner", "")
	require.Equal(t, http.StatusNoContent, status)

	_, body := doJSON(t, app, http.MethodGet, "/api/v1/banner", "")
	assert.Equal(t, "", body["message"])
	assert.Equal(t, "Info", body["type"])
	assert.Equal(t, "blue", body["color"])
}
