// Package transport holds the weather view model shared with the presentation layer.
package transport

import (
	"errors"

	"weather_card/platform/apperr"
)

// UnknownCity is shown when neither the caller nor reverse geocoding could name the place.
const UnknownCity = "Unknown"

// ErrWeatherFetchFailed is the sentinel behind every failed observation fetch.
var ErrWeatherFetchFailed = errors.New("weather fetch failed")

// WeatherSnapshot is the canonical view model rendered by the weather card.
type WeatherSnapshot struct {
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Temperature float64  `json:"temperature"`
	FeelsLike   float64  `json:"feelsLike"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Humidity    int      `json:"humidity"`
	WindSpeed   float64  `json:"windSpeed"`
	Pressure    float64  `json:"pressure"`
	Sunrise     int64    `json:"sunrise"`
	Sunset      int64    `json:"sunset"`
	UVIndex     *float64 `json:"uvi,omitempty"`
}

// FetchFailed wraps the cause of a failed observation fetch.
func FetchFailed(cause error) *apperr.Error {
	return apperr.Upstream("Wetterdaten konnten nicht abgerufen werden", errors.Join(ErrWeatherFetchFailed, cause))
}
