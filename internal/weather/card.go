package weather

import (
	"fmt"
	"strconv"

	"github.com/i474232898/weather-city-lookup/internal/common"
)

// Card is the display form of a saved city.
type Card struct {
	Heading    string   `json:"heading"`
	Subheading string   `json:"subheading"`
	Lines      []string `json:"lines"`
}

// NewCard renders record for display. The state is left out of the heading
// when the locality has none.
func NewCard(record WeatherRecord, units Units) Card {
	deg := units.Symbol()
	return Card{
		Heading:    common.JoinNonEmpty(", ", record.CityName, record.StateName),
		Subheading: record.CountryAbbreviation,
		Lines: []string{
			"Weather Summary: " + record.WeatherSummary,
			"Current Temperature: " + formatTemp(record.CurrentTemperature) + deg,
			fmt.Sprintf("High: %s%s / Low: %s%s", formatTemp(record.DailyHigh), deg, formatTemp(record.DailyLow), deg),
		},
	}
}

// NewCards renders records in order.
func NewCards(records []WeatherRecord, units Units) []Card {
	cards := make([]Card, 0, len(records))
	for _, r := range records {
		cards = append(cards, NewCard(r, units))
	}
	return cards
}

// ClearLabel is the caption of the control that clears every saved city.
// It is empty when there is nothing to clear.
func ClearLabel(count int) string {
	if count == 0 {
		return ""
	}
	return fmt.Sprintf("Clear Weather Data (%d)", count)
}

func formatTemp(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
