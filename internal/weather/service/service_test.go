package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	geotransport "weather_card/internal/geocoding/transport"
	"weather_card/internal/weather/client"
	"weather_card/internal/weather/transport"
	"weather_card/platform/apperr"
	"weather_card/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWeather struct {
	obs client.Observation
	err error
}

func (f fakeWeather) Current(context.Context, float64, float64) (client.Observation, error) {
	return f.obs, f.err
}

type fakeGeocoder struct {
	forward      geotransport.GeoResult
	forwardErr   error
	reverse      *geotransport.GeoResult
	reverseErr   error
	reverseCalls atomic.Int32
}

func (f *fakeGeocoder) Forward(_ context.Context, name string) (geotransport.GeoResult, error) {
	if f.forwardErr != nil {
		return geotransport.GeoResult{}, f.forwardErr
	}
	return f.forward, nil
}

func (f *fakeGeocoder) Reverse(context.Context, float64, float64) (*geotransport.GeoResult, error) {
	f.reverseCalls.Add(1)
	return f.reverse, f.reverseErr
}

var berlinObservation = client.Observation{
	Temperature:         12.4,
	ApparentTemperature: 10.9,
	RelativeHumidity:    71,
	IsDay:               true,
	WeatherCode:         61,
	SurfacePressure:     1008.6,
	WindSpeed:           14.8,
}

func newService(w ObservationFetcher, g Geocoder) *Service {
	svc := New(w, g, logger.Discard())
	loc := time.FixedZone("CEST", 2*60*60)
	svc.SetClock(func() time.Time { return time.Date(2026, 10, 17, 14, 30, 0, 0, loc) })
	return svc
}

func TestGetWeatherByCityUsesGeocodedNames(t *testing.T) {
	geo := &fakeGeocoder{forward: geotransport.GeoResult{Name: "Berlin", Country: "Deutschland", Latitude: 52.52, Longitude: 13.41}}
	svc := newService(fakeWeather{obs: berlinObservation}, geo)

	snap, err := svc.GetWeatherByCity(context.Background(), "Berlin")
	require.NoError(t, err)

	assert.Equal(t, "Berlin", snap.City)
	assert.Equal(t, "Deutschland", snap.Country)
	assert.Equal(t, 12.4, snap.Temperature)
	assert.Equal(t, 10.9, snap.FeelsLike)
	assert.Equal(t, 71, snap.Humidity)
	assert.Equal(t, 14.8, snap.WindSpeed)
	assert.Equal(t, 1008.6, snap.Pressure)
	assert.Equal(t, "Leichter Regen", snap.Description)
	assert.Equal(t, "10d", snap.Icon)
	assert.Equal(t, int32(0), geo.reverseCalls.Load(), "both names known, no reverse lookup")
}

func TestGetWeatherByCityPropagatesCityNotFound(t *testing.T) {
	geo := &fakeGeocoder{forwardErr: geotransport.CityNotFound("Nonexistent City XYZ")}
	svc := newService(fakeWeather{obs: berlinObservation}, geo)

	_, err := svc.GetWeatherByCity(context.Background(), "Nonexistent City XYZ")
	require.ErrorIs(t, err, geotransport.ErrCityNotFound)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestGetWeatherByCityWrapsGeocodingFailure(t *testing.T) {
	cause := apperr.Upstream("Ortssuche fehlgeschlagen", errors.New("i/o timeout"))
	svc := newService(fakeWeather{obs: berlinObservation}, &fakeGeocoder{forwardErr: cause})

	_, err := svc.GetWeatherByCity(context.Background(), "Berlin")
	require.Error(t, err)
	assert.ErrorIs(t, err, transport.ErrWeatherFetchFailed)
	assert.ErrorIs(t, err, cause)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Wetterdaten konnten nicht abgerufen werden", appErr.Message)
	assert.Equal(t, apperr.KindUpstream, appErr.Kind)
}

func TestGetWeatherByCoordinatesFallsBackToUnknown(t *testing.T) {
	geo := &fakeGeocoder{}
	svc := newService(fakeWeather{obs: berlinObservation}, geo)

	snap, err := svc.GetWeatherByCoordinates(context.Background(), 0, 0, "", "")
	require.NoError(t, err)
	assert.Equal(t, transport.UnknownCity, snap.City)
	assert.Equal(t, "", snap.Country)
	assert.Equal(t, int32(1), geo.reverseCalls.Load())
}

func TestGetWeatherByCoordinatesIgnoresReverseFailure(t *testing.T) {
	geo := &fakeGeocoder{reverseErr: errors.New("connection reset")}
	svc := newService(fakeWeather{obs: berlinObservation}, geo)

	snap, err := svc.GetWeatherByCoordinates(context.Background(), 1, 2, "", "Deutschland")
	require.NoError(t, err)
	assert.Equal(t, transport.UnknownCity, snap.City)
	assert.Equal(t, "Deutschland", snap.Country)
}

func TestGetWeatherByCoordinatesFillsOnlyMissingNames(t *testing.T) {
	geo := &fakeGeocoder{reverse: &geotransport.GeoResult{Name: "Charlottenburg", Country: "Deutschland"}}
	svc := newService(fakeWeather{obs: berlinObservation}, geo)

	snap, err := svc.GetWeatherByCoordinates(context.Background(), 52.5, 13.3, "Berlin", "")
	require.NoError(t, err)
	assert.Equal(t, "Berlin", snap.City)
	assert.Equal(t, "Deutschland", snap.Country)
}

func TestGetWeatherByCoordinatesWrapsFetchFailure(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	svc := newService(fakeWeather{err: cause}, &fakeGeocoder{})

	_, err := svc.GetWeatherByCoordinates(context.Background(), 52.5, 13.3, "Berlin", "Deutschland")
	require.Error(t, err)
	assert.ErrorIs(t, err, transport.ErrWeatherFetchFailed)
	assert.ErrorIs(t, err, cause)
	assert.True(t, apperr.Is(err, apperr.KindUpstream))
}

func TestGetWeatherByCoordinatesFixedDaylightAndUV(t *testing.T) {
	svc := newService(fakeWeather{obs: berlinObservation}, &fakeGeocoder{})

	snap, err := svc.GetWeatherByCoordinates(context.Background(), 52.5, 13.3, "Berlin", "Deutschland")
	require.NoError(t, err)

	loc := time.FixedZone("CEST", 2*60*60)
	assert.Equal(t, time.Date(2026, 10, 17, 6, 0, 0, 0, loc).Unix(), snap.Sunrise)
	assert.Equal(t, time.Date(2026, 10, 17, 20, 0, 0, 0, loc).Unix(), snap.Sunset)
	require.NotNil(t, snap.UVIndex)
	assert.Equal(t, 0.0, *snap.UVIndex)
}

func TestGetWeatherByCoordinatesNightIcon(t *testing.T) {
	obs := berlinObservation
	obs.IsDay = false
	obs.WeatherCode = 0
	svc := newService(fakeWeather{obs: obs}, &fakeGeocoder{})

	snap, err := svc.GetWeatherByCoordinates(context.Background(), 52.5, 13.3, "Berlin", "Deutschland")
	require.NoError(t, err)
	assert.Equal(t, "Klar", snap.Description)
	assert.Equal(t, "01n", snap.Icon)
}
