package presentation_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	geocodingclient "weather_card/internal/geocoding/client"
	geolocationclient "weather_card/internal/geolocation/client"
	"weather_card/internal/presentation"
	weatherclient "weather_card/internal/weather/client"
	"weather_card/internal/weather/service"
	"weather_card/platform/logger"
	"weather_card/platform/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func fakeUpstreams(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","country":"Germany","city":"Berlin","lat":52.5196,"lon":13.4069}`))
	})
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("name") != "Berlin" {
			_, _ = w.Write([]byte(`{"generationtime_ms":0.4}`))
			return
		}
		_, _ = w.Write([]byte(`{"results":[{"id":2950159,"name":"Berlin","latitude":52.52437,"longitude":13.41053,"country":"Deutschland"}]}`))
	})
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"timezone":"Europe/Berlin","current":{"temperature_2m":12.4,"relative_humidity_2m":71,"apparent_temperature":10.9,"is_day":1,"weather_code":2,"surface_pressure":1008.6,"wind_speed_10m":14.8,"wind_direction_10m":243}}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newSession(t *testing.T) *presentation.Session {
	t.Helper()

	srv := fakeUpstreams(t)
	log := logger.Discard()
	httpClient := upstream.New(2*time.Second, "weather-card-test")

	geocoder := geocodingclient.New(srv.URL, language.German, httpClient, log)
	weather := service.New(weatherclient.New(srv.URL+"/forecast", httpClient, log), geocoder, log)
	locator := geolocationclient.New(srv.URL, httpClient, log)

	return presentation.NewSession(weather, locator, log)
}

func TestBerlinEndToEnd(t *testing.T) {
	s := newSession(t)

	st := s.Submit(context.Background(), "Berlin")
	require.Equal(t, presentation.KindLoaded, st.Kind())

	snap := st.(presentation.Loaded).Snapshot
	assert.Equal(t, "Berlin", snap.City)
	assert.Equal(t, "Deutschland", snap.Country)
	assert.Regexp(t, regexp.MustCompile(`^\d{2}[dn]$`), snap.Icon)
	assert.Equal(t, "Teilweise bewölkt", snap.Description)
	require.NotNil(t, snap.UVIndex)
	assert.Equal(t, 0.0, *snap.UVIndex)
}

func TestUnknownCityEndToEnd(t *testing.T) {
	s := newSession(t)

	st := s.Submit(context.Background(), "Nonexistent City XYZ")
	require.Equal(t, presentation.KindFailed, st.Kind())
	assert.Equal(t, "Stadt nicht gefunden: Nonexistent City XYZ", st.(presentation.Failed).Message)
}

func TestSuggestionEndToEnd(t *testing.T) {
	s := newSession(t)

	<-s.StartSuggestion(context.Background())

	city, ok := s.Suggestion()
	require.True(t, ok)
	assert.Equal(t, "Berlin", city)

	st, ok := s.AcceptSuggestion(context.Background())
	require.True(t, ok)
	assert.Equal(t, presentation.KindLoaded, st.Kind())
}
