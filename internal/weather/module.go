package weather

import (
	"weather_card/internal/geocoding"
	"weather_card/internal/weather/client"
	"weather_card/internal/weather/service"
	"weather_card/platform/config"
	"weather_card/platform/logger"
	"weather_card/platform/upstream"
)

// Module is the weather bounded context module.
type Module struct {
	service *service.Service
}

// NewModule creates the weather module on top of a geocoder.
func NewModule(cfg config.WeatherConfig, geocoder geocoding.Geocoder, log *logger.Logger) *Module {
	apiClient := client.New(cfg.GetWeatherBaseURL(), upstream.NewFromConfig(cfg), log)
	svc := service.New(apiClient, geocoder, log)
	return &Module{service: svc}
}

// Service returns the weather service for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Provider returns the service behind the public interface.
func (m *Module) Provider() Provider {
	return m.service
}

var _ Provider = (*service.Service)(nil)
