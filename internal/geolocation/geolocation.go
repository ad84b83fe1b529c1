// Package geolocation provides the IP geolocation bounded context.
// This file defines the public interface exposed to other domains.
package geolocation

import (
	"context"

	"weather_card/internal/geolocation/transport"
)

// Locator resolves an approximate location from a network address.
// Lookups are best-effort: callers treat an error as "no suggestion".
type Locator interface {
	// Locate resolves the caller's own public address.
	Locate(ctx context.Context) (transport.LocationGuess, error)
	// LocateIP resolves the given address, falling back to Locate for
	// addresses that are not publicly routable.
	LocateIP(ctx context.Context, ip string) (transport.LocationGuess, error)
}
