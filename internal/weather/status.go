package weather

import (
	"errors"
	"fmt"
	"sync"
)

// BannerType classifies a status message shown to the user.
type BannerType string

const (
	BannerInfo    BannerType = "Info"
	BannerSuccess BannerType = "Success"
	BannerError   BannerType = "Error"
)

// Banner is a user-visible status message.
type Banner struct {
	Message string     `json:"message"`
	Type    BannerType `json:"type"`
}

// Color returns the background color used to display the banner.
func (b Banner) Color() string {
	switch b.Type {
	case BannerError:
		return "red"
	case BannerSuccess:
		return "green"
	default:
		return "blue"
	}
}

// BannerFor converts the outcome of a lookup into a banner.
func BannerFor(cityName string, err error) Banner {
	switch {
	case err == nil:
		return Banner{
			Message: fmt.Sprintf("Success! Weather data for %s retrieved.", cityName),
			Type:    BannerSuccess,
		}
	case errors.Is(err, ErrCoordinates):
		return Banner{
			Message: fmt.Sprintf("ERROR! Unable to retrieve coordinates (latitude, longitude) for %s!", cityName),
			Type:    BannerError,
		}
	default:
		return Banner{
			Message: fmt.Sprintf("ERROR! Unable to retrieve weather data for %s!", cityName),
			Type:    BannerError,
		}
	}
}

// StatusBoard holds the most recently published banner. Concurrent searches
// are not ordered; whichever publishes last wins.
type StatusBoard struct {
	mu      sync.RWMutex
	current Banner
}

// NewStatusBoard returns a board showing an empty Info banner.
func NewStatusBoard() *StatusBoard {
	return &StatusBoard{current: Banner{Type: BannerInfo}}
}

// Publish replaces the current banner.
func (b *StatusBoard) Publish(banner Banner) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = banner
}

// Current returns the most recently published banner.
func (b *StatusBoard) Current() Banner {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.current
}

// Clear resets the board to an empty Info banner.
func (b *StatusBoard) Clear() {
	b.Publish(Banner{Type: BannerInfo})
}
