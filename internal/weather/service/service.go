// Package service assembles weather snapshots from the forecast and geocoding clients.
package service

import (
	"context"
	"errors"
	"time"

	"weather_card/internal/condition"
	geotransport "weather_card/internal/geocoding/transport"
	"weather_card/internal/weather/client"
	"weather_card/internal/weather/transport"
	"weather_card/platform/logger"

	"golang.org/x/sync/errgroup"
)

const (
	sunriseHour = 6
	sunsetHour  = 20
)

// ObservationFetcher provides current conditions at a point.
type ObservationFetcher interface {
	Current(ctx context.Context, lat, lon float64) (client.Observation, error)
}

// Geocoder is the subset of the geocoding module used here.
type Geocoder interface {
	Forward(ctx context.Context, name string) (geotransport.GeoResult, error)
	Reverse(ctx context.Context, lat, lon float64) (*geotransport.GeoResult, error)
}

// Service builds WeatherSnapshots.
type Service struct {
	weather  ObservationFetcher
	geocoder Geocoder
	log      *logger.Logger
	now      func() time.Time
}

// New creates a new weather service.
func New(weather ObservationFetcher, geocoder Geocoder, log *logger.Logger) *Service {
	return &Service{
		weather:  weather,
		geocoder: geocoder,
		log:      log,
		now:      time.Now,
	}
}

// SetClock replaces the time source used for the sunrise/sunset fields.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// GetWeatherByCity resolves name and returns the conditions there.
// A CityNotFound error from the geocoder is returned unchanged; any other
// geocoder failure is reported as a failed fetch.
func (s *Service) GetWeatherByCity(ctx context.Context, name string) (transport.WeatherSnapshot, error) {
	place, err := s.geocoder.Forward(ctx, name)
	if err != nil {
		s.log.WithContext(ctx).Warn("city lookup failed", "city", name, "error", err)
		if errors.Is(err, geotransport.ErrCityNotFound) {
			return transport.WeatherSnapshot{}, err
		}
		return transport.WeatherSnapshot{}, transport.FetchFailed(err)
	}

	return s.GetWeatherByCoordinates(ctx, place.Latitude, place.Longitude, place.Name, place.Country)
}

// GetWeatherByCoordinates returns the conditions at lat/lon.
// Missing names are filled in by reverse geocoding; a failing reverse lookup
// is logged and never aborts the fetch.
func (s *Service) GetWeatherByCoordinates(ctx context.Context, lat, lon float64, cityName, countryName string) (transport.WeatherSnapshot, error) {
	log := s.log.WithContext(ctx)

	g, gctx := errgroup.WithContext(ctx)

	var obs client.Observation
	g.Go(func() error {
		o, err := s.weather.Current(gctx, lat, lon)
		if err != nil {
			return err
		}
		obs = o
		return nil
	})

	var place *geotransport.GeoResult
	if cityName == "" || countryName == "" {
		g.Go(func() error {
			p, err := s.geocoder.Reverse(gctx, lat, lon)
			if err != nil {
				log.Warn("reverse geocoding failed", "lat", lat, "lon", lon, "error", err)
				return nil
			}
			place = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return transport.WeatherSnapshot{}, transport.FetchFailed(err)
	}

	city, country := resolveNames(cityName, countryName, place)
	sunrise, sunset := fixedDaylight(s.now())
	cond := condition.Classify(obs.WeatherCode, obs.IsDay)
	uvi := 0.0

	return transport.WeatherSnapshot{
		City:        city,
		Country:     country,
		Temperature: obs.Temperature,
		FeelsLike:   obs.ApparentTemperature,
		Description: cond.Description,
		Icon:        cond.Icon,
		Humidity:    obs.RelativeHumidity,
		WindSpeed:   obs.WindSpeed,
		Pressure:    obs.SurfacePressure,
		Sunrise:     sunrise,
		Sunset:      sunset,
		UVIndex:     &uvi,
	}, nil
}

func resolveNames(cityName, countryName string, place *geotransport.GeoResult) (string, string) {
	city, country := cityName, countryName
	if place != nil {
		if city == "" {
			city = place.Name
		}
		if country == "" {
			country = place.Country
		}
	}
	if city == "" {
		city = transport.UnknownCity
	}
	return city, country
}

// fixedDaylight reports 06:00 and 20:00 local clock time on the day of now.
// The forecast request carries no daily block, so there is no real
// sunrise/sunset to report.
func fixedDaylight(now time.Time) (int64, int64) {
	y, m, d := now.Date()
	loc := now.Location()
	sunrise := time.Date(y, m, d, sunriseHour, 0, 0, 0, loc)
	sunset := time.Date(y, m, d, sunsetHour, 0, 0, 0, loc)
	return sunrise.Unix(), sunset.Unix()
}
