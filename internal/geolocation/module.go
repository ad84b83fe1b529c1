package geolocation

import (
	"weather_card/internal/geolocation/client"
	"weather_card/platform/config"
	"weather_card/platform/logger"
	"weather_card/platform/upstream"
)

// Module wires the geolocation client.
type Module struct {
	client *client.Client
}

// NewModule creates the geolocation module.
func NewModule(cfg config.GeolocationConfig, log *logger.Logger) *Module {
	cli := client.New(cfg.GetIPGeoBaseURL(), upstream.NewFromConfig(cfg), log)
	return &Module{client: cli}
}

// Locator returns the geolocation client.
func (m *Module) Locator() Locator {
	return m.client
}

var _ Locator = (*client.Client)(nil)
