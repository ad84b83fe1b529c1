// Package transport holds the geocoding types shared with other modules.
package transport

import (
	"errors"

	"weather_card/platform/apperr"
)

// ErrCityNotFound is the sentinel behind a forward lookup without results.
var ErrCityNotFound = errors.New("city not found")

// GeoResult is a single place match.
type GeoResult struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CityNotFound reports that name did not match any place.
func CityNotFound(name string) *apperr.Error {
	return apperr.Wrap(apperr.KindNotFound, "Stadt nicht gefunden: "+name, ErrCityNotFound).
		WithDetails(map[string]string{"city": name})
}
