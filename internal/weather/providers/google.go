package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/kelvins/geocoder"
	"github.com/kelvins/geocoder/structs"
	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-city-lookup/internal/weather"
)

// GoogleGeocoder implements weather.Geocoder on top of the Google Maps
// Geocoding API. Requests go through the shared client and breaker; responses
// are decoded into the github.com/kelvins/geocoder result structures.
type GoogleGeocoder struct {
	name    string
	apiKey  string
	apiURL  string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewGoogleGeocoder creates a Google geocoder rooted at geocoder.ApiUrl.
func NewGoogleGeocoder(client *http.Client, apiKey string) *GoogleGeocoder {
	return &GoogleGeocoder{
		name:    "google",
		apiKey:  apiKey,
		apiURL:  geocoder.ApiUrl,
		client:  client,
		circuit: newCircuitBreaker("google-geocoding"),
	}
}

func (g *GoogleGeocoder) Name() string {
	return g.name
}

// Geocode runs a forward geocode. A single response carries both the
// coordinates and the address components, so no reverse call is needed.
func (g *GoogleGeocoder) Geocode(ctx context.Context, cityName string) ([]weather.GeoMatch, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("google %w", errMissingKey)
	}

	address := geocoder.Address{City: cityName}
	values := url.Values{}
	values.Set("address", address.FormatAddress())
	values.Set("key", g.apiKey)

	var payload structs.Results
	if err := getJSON(ctx, g.client, g.circuit, g.apiURL+values.Encode(), &payload); err != nil {
		return nil, err
	}

	switch strings.ToUpper(payload.Status) {
	case "OK":
	case "ZERO_RESULTS":
		return nil, nil
	default:
		if payload.ErrorMessage != "" {
			return nil, fmt.Errorf("google geocoding status %s: %s", payload.Status, payload.ErrorMessage)
		}
		return nil, fmt.Errorf("google geocoding status %q", payload.Status)
	}

	matches := make([]weather.GeoMatch, 0, len(payload.Results))
	for _, r := range payload.Results {
		m := weather.GeoMatch{
			Lat: r.Geometry.Location.Lat,
			Lon: r.Geometry.Location.Lng,
		}
		for _, c := range r.AddressComponents {
			switch {
			case slices.Contains(c.Types, "locality"):
				m.Name = c.LongName
			case slices.Contains(c.Types, "postal_town") && m.Name == "":
				m.Name = c.LongName
			case slices.Contains(c.Types, "administrative_area_level_1"):
				m.State = c.LongName
			case slices.Contains(c.Types, "country"):
				m.Country = c.ShortName
			}
		}
		if m.Name == "" {
			m.Name = cityName
		}
		matches = append(matches, m)
	}
	return matches, nil
}
