// Package geocoding provides the place name lookup bounded context.
// This file defines the public interface exposed to other domains.
package geocoding

import (
	"context"

	"weather_card/internal/geocoding/transport"
)

// Geocoder resolves place names to coordinates and back.
type Geocoder interface {
	// Forward returns the single best match for name or a CityNotFound error.
	Forward(ctx context.Context, name string) (transport.GeoResult, error)
	// Reverse returns the place nearest to the coordinates, or nil when
	// the service knows none.
	Reverse(ctx context.Context, lat, lon float64) (*transport.GeoResult, error)
}
