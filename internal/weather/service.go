package weather

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
)

var errNoMatches = errors.New("no geocoding matches")

// Service orchestrates the two-stage lookup (name -> coordinates -> weather)
// and publishes the outcome of searches.
type Service struct {
	geocoder Geocoder
	source   WeatherSource
	cities   Collection
	board    *StatusBoard
}

// NewService creates a new Service.
func NewService(geocoder Geocoder, source WeatherSource, cities Collection, board *StatusBoard) *Service {
	if board == nil {
		board = NewStatusBoard()
	}
	return &Service{
		geocoder: geocoder,
		source:   source,
		cities:   cities,
		board:    board,
	}
}

// Lookup resolves cityName to coordinates and then fetches the current weather
// for them. The two requests run strictly in order; if geocoding fails no
// weather request is made. Failures are returned as *LookupError.
//
// The returned record carries the geocoded name, state and country, not
// anything re-derived from the weather response.
func (s *Service) Lookup(ctx context.Context, cityName string) (WeatherRecord, error) {
	id := uuid.NewString()

	matches, err := s.geocoder.Geocode(ctx, cityName)
	if err == nil && len(matches) == 0 {
		err = errNoMatches
	}
	if err != nil {
		log.Printf("ERROR: lookup %s: geocoder %s failed for %q: %v", id, s.geocoder.Name(), cityName, err)
		return WeatherRecord{}, &LookupError{Stage: StageCoordinates, CityName: cityName, Err: err}
	}
	match := matches[0]
	log.Printf("DEBUG: lookup %s: %q resolved to %s (%f, %f)", id, cityName, match.Name, match.Lat, match.Lon)

	cond, err := s.source.Current(ctx, match.Lat, match.Lon)
	if err != nil {
		log.Printf("ERROR: lookup %s: weather source %s failed for %q: %v", id, s.source.Name(), cityName, err)
		return WeatherRecord{}, &LookupError{Stage: StageWeather, CityName: cityName, Err: err}
	}

	return WeatherRecord{
		CityName:            match.Name,
		StateName:           match.State,
		CountryAbbreviation: match.Country,
		WeatherSummary:      cond.Summary,
		CurrentTemperature:  cond.Temp,
		DailyHigh:           cond.TempMax,
		DailyLow:            cond.TempMin,
	}, nil
}

// Search runs a lookup, saves a successful result to the collection and
// publishes a banner describing the outcome.
func (s *Service) Search(ctx context.Context, cityName string) (WeatherRecord, Banner, error) {
	record, err := s.Lookup(ctx, cityName)
	if err == nil {
		s.cities.Add(record)
	}

	banner := BannerFor(cityName, err)
	s.board.Publish(banner)
	return record, banner, err
}

// Save adds an already resolved record to the collection.
func (s *Service) Save(record WeatherRecord) {
	s.cities.Add(record)
}

// Cities returns the saved cities in display order.
func (s *Service) Cities() []WeatherRecord {
	return s.cities.List()
}

// CityCount returns the number of saved cities.
func (s *Service) CityCount() int {
	return s.cities.Size()
}

// ClearCities removes every saved city.
func (s *Service) ClearCities() {
	s.cities.ClearAll()
	log.Println("INFO: cleared all saved cities")
}

// Banner returns the most recently published banner.
func (s *Service) Banner() Banner {
	return s.board.Current()
}

// ClearMessage resets the banner to an empty Info message.
func (s *Service) ClearMessage() {
	s.board.Clear()
}

// String is used in startup logs.
func (s *Service) String() string {
	return fmt.Sprintf("geocoder=%s weather=%s", s.geocoder.Name(), s.source.Name())
}
