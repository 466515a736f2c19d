package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/i474232898/weather-city-lookup/internal/config"
	"github.com/i474232898/weather-city-lookup/internal/store"
	"github.com/i474232898/weather-city-lookup/internal/weather"
	"github.com/i474232898/weather-city-lookup/internal/weather/providers"
)

var searchFlags struct {
	units    string
	geocoder string
	source   string
}

var searchCmd = &cobra.Command{
	Use:   "search <city> [city...]",
	Short: "Look up each city in order and print the saved cities",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	f := searchCmd.Flags()
	f.StringVar(&searchFlags.units, "units", "", "Temperature units: imperial or metric (default from UNITS)")
	f.StringVar(&searchFlags.geocoder, "geocoder", "", "Geocoding backend (default from GEOCODER)")
	f.StringVar(&searchFlags.source, "weather-source", "", "Weather backend (default from WEATHER_SOURCE)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if searchFlags.units != "" {
		cfg.Units = weather.Units(searchFlags.units)
	}
	if searchFlags.geocoder != "" {
		cfg.Geocoder = searchFlags.geocoder
	}
	if searchFlags.source != "" {
		cfg.WeatherSource = searchFlags.source
	}
	if cfg.Units != weather.UnitsImperial && cfg.Units != weather.UnitsMetric {
		return fmt.Errorf("unknown units %q", cfg.Units)
	}

	client := &http.Client{Timeout: cfg.HTTPTimeout}
	geocoder, err := providers.NewGeocoder(client, cfg)
	if err != nil {
		return err
	}
	source, err := providers.NewWeatherSource(client, cfg)
	if err != nil {
		return err
	}

	svc := weather.NewService(geocoder, source, store.NewCityCollection(), nil)
	return searchAll(cmd.Context(), cmd.OutOrStdout(), svc, args, cfg.Units)
}

// searchAll runs one search per city, in order, then prints the saved cities.
// It fails if any search failed.
func searchAll(ctx context.Context, out io.Writer, svc *weather.Service, cities []string, units weather.Units) error {
	if ctx == nil {
		ctx = context.Background()
	}

	failed := 0
	for _, city := range cities {
		_, banner, err := svc.Search(ctx, strings.TrimSpace(city))
		if err != nil {
			failed++
		}
		fmt.Fprintf(out, "[%s] %s\n", banner.Type, banner.Message)
	}

	saved := svc.Cities()
	if len(saved) > 0 {
		fmt.Fprintln(out)
	}
	for _, card := range weather.NewCards(saved, units) {
		fmt.Fprintf(out, "%s\n  %s\n", card.Heading, card.Subheading)
		for _, line := range card.Lines {
			fmt.Fprintf(out, "  %s\n", line)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d searches failed", failed, len(cities))
	}
	return nil
}
