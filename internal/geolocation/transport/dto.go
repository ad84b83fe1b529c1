// Package transport holds the geolocation types shared with other modules.
package transport

import (
	"errors"

	"weather_card/platform/apperr"
)

// ErrLocationUnavailable is the sentinel behind every failed IP lookup.
var ErrLocationUnavailable = errors.New("location unavailable")

// LocationGuess is the approximate position of a network address.
type LocationGuess struct {
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationUnavailable wraps cause so that errors.Is(err, ErrLocationUnavailable) holds.
func LocationUnavailable(cause error) *apperr.Error {
	if cause == nil {
		cause = ErrLocationUnavailable
	} else {
		cause = errors.Join(ErrLocationUnavailable, cause)
	}
	return apperr.Unavailable("Standort konnte nicht ermittelt werden", cause)
}
