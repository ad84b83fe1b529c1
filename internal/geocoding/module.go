package geocoding

import (
	"weather_card/internal/geocoding/client"
	"weather_card/platform/config"
	"weather_card/platform/logger"
	"weather_card/platform/upstream"
)

// Module wires the geocoding client.
type Module struct {
	client *client.Client
}

// NewModule creates the geocoding module.
func NewModule(cfg config.GeocodingConfig, log *logger.Logger) *Module {
	cli := client.New(cfg.GetGeocodingBaseURL(), cfg.GetGeocodingLanguage(), upstream.NewFromConfig(cfg), log)
	return &Module{client: cli}
}

// Geocoder returns the geocoding client.
func (m *Module) Geocoder() Geocoder {
	return m.client
}

var _ Geocoder = (*client.Client)(nil)
