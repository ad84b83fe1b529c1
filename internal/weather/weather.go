// Package weather provides the current-conditions bounded context.
// This file defines the public interface exposed to other domains.
package weather

import (
	"context"

	"weather_card/internal/weather/transport"
)

// Provider assembles weather snapshots.
type Provider interface {
	// GetWeatherByCity geocodes name and returns the conditions there.
	GetWeatherByCity(ctx context.Context, name string) (transport.WeatherSnapshot, error)

	// GetWeatherByCoordinates returns the conditions at lat/lon. Empty names
	// are filled in by reverse geocoding when possible.
	GetWeatherByCoordinates(ctx context.Context, lat, lon float64, cityName, countryName string) (transport.WeatherSnapshot, error)
}
