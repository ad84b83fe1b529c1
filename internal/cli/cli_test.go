package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	geocodingtransport "weather_card/internal/geocoding/transport"
	geotransport "weather_card/internal/geolocation/transport"
	"weather_card/internal/weather/transport"
	"weather_card/platform/config"
	"weather_card/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	cities atomic.Value
	calls  atomic.Int32
}

func (f *fakeProvider) GetWeatherByCity(_ context.Context, name string) (transport.WeatherSnapshot, error) {
	f.calls.Add(1)
	f.cities.Store(name)
	if name == "Atlantis" {
		return transport.WeatherSnapshot{}, geocodingtransport.CityNotFound(name)
	}
	return snapshot(name, "Deutschland"), nil
}

func (f *fakeProvider) GetWeatherByCoordinates(_ context.Context, _, _ float64, city, country string) (transport.WeatherSnapshot, error) {
	f.calls.Add(1)
	if city == "" {
		city = transport.UnknownCity
	}
	return snapshot(city, country), nil
}

type fakeLocator struct {
	guess geotransport.LocationGuess
	err   error
}

func (f fakeLocator) Locate(context.Context) (geotransport.LocationGuess, error) {
	return f.guess, f.err
}

func (f fakeLocator) LocateIP(ctx context.Context, _ string) (geotransport.LocationGuess, error) {
	return f.Locate(ctx)
}

func snapshot(city, country string) transport.WeatherSnapshot {
	uvi := 0.0
	return transport.WeatherSnapshot{
		City:        city,
		Country:     country,
		Temperature: 12.4,
		FeelsLike:   10.9,
		Description: "Bewölkt",
		Icon:        "03d",
		Humidity:    71,
		WindSpeed:   14.8,
		Pressure:    1008.6,
		UVIndex:     &uvi,
	}
}

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, services Services, stdin string, args ...string) result {
	t.Helper()

	root := NewRootCommand(func(*config.Config, *logger.Logger) Services { return services })
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	code := Execute(root)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestCityPrintsCard(t *testing.T) {
	provider := &fakeProvider{}
	res := run(t, Services{Weather: provider, Locator: fakeLocator{}}, "", "city", "Frankfurt", "am", "Main")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "Frankfurt am Main", provider.cities.Load())
	assert.Contains(t, res.stdout, "Frankfurt am Main, Deutschland")
	assert.Contains(t, res.stdout, "14,8 km/h")
}

func TestCityJSON(t *testing.T) {
	res := run(t, Services{Weather: &fakeProvider{}, Locator: fakeLocator{}}, "", "city", "Berlin", "--json")
	require.Equal(t, 0, res.code, res.stderr)

	var snap transport.WeatherSnapshot
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &snap))
	assert.Equal(t, "Berlin", snap.City)
	require.NotNil(t, snap.UVIndex)
}

func TestCityNotFoundExitsNonZero(t *testing.T) {
	res := run(t, Services{Weather: &fakeProvider{}, Locator: fakeLocator{}}, "", "city", "Atlantis")

	assert.Equal(t, 1, res.code)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "Stadt nicht gefunden: Atlantis")
	assert.Contains(t, res.stderr, "Bitte versuchen Sie es mit einer anderen Stadt.")
	assert.NotContains(t, res.stderr, "Fehler:")
}

func TestCityRejectsBlankName(t *testing.T) {
	provider := &fakeProvider{}
	res := run(t, Services{Weather: provider, Locator: fakeLocator{}}, "", "city", "<b></b>")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "ungültiger Stadtname")
	assert.Equal(t, int32(0), provider.calls.Load())
}

func TestCoords(t *testing.T) {
	res := run(t, Services{Weather: &fakeProvider{}, Locator: fakeLocator{}}, "", "coords", "--lat", "0", "--lon", "0")

	require.Equal(t, 0, res.code, res.stderr)
	assert.True(t, strings.HasPrefix(res.stdout, "Unknown\n"))
}

func TestCoordsValidatesRange(t *testing.T) {
	provider := &fakeProvider{}
	res := run(t, Services{Weather: provider, Locator: fakeLocator{}}, "", "coords", "--lat", "95", "--lon", "0")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "--lat")
	assert.Equal(t, int32(0), provider.calls.Load())
}

func TestLocate(t *testing.T) {
	loc := fakeLocator{guess: geotransport.LocationGuess{City: "Berlin", Country: "Germany", Latitude: 52.52, Longitude: 13.405}}
	res := run(t, Services{Weather: &fakeProvider{}, Locator: loc}, "", "locate")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "Berlin, Germany (52.5200, 13.4050)\n", res.stdout)
}

func TestLocateFailure(t *testing.T) {
	loc := fakeLocator{err: geotransport.LocationUnavailable(errors.New("timeout"))}
	res := run(t, Services{Weather: &fakeProvider{}, Locator: loc}, "", "locate")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "Standort konnte nicht ermittelt werden")
}

func TestInvalidLanguageFlag(t *testing.T) {
	res := run(t, Services{Weather: &fakeProvider{}, Locator: fakeLocator{}}, "", "city", "Berlin", "--language", "!!")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "--language")
}

func TestInteractiveSearchAndQuit(t *testing.T) {
	provider := &fakeProvider{}
	res := run(t, Services{Weather: provider, Locator: fakeLocator{err: errors.New("offline")}}, "\n   \nHamburg\nAtlantis\nexit\nBerlin\n", "interactive")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, int32(2), provider.calls.Load(), "blank lines do not search and exit stops the loop")
	assert.Contains(t, res.stdout, "Lade Wetter für Hamburg")
	assert.Contains(t, res.stdout, "Hamburg, Deutschland")
	assert.Contains(t, res.stdout, "Stadt nicht gefunden: Atlantis")
	assert.NotContains(t, res.stdout, "Dein Standort")
}

func TestInteractiveAcceptsSuggestion(t *testing.T) {
	provider := &fakeProvider{}
	loc := fakeLocator{guess: geotransport.LocationGuess{City: "Leipzig", Country: "Germany"}}
	res := run(t, Services{Weather: provider, Locator: loc}, "\t\n", "--suggestion-wait", "5s")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Dein Standort: Leipzig")
	assert.Equal(t, "Leipzig", provider.cities.Load())
	assert.Contains(t, res.stdout, "Leipzig, Deutschland")
}

func TestInteractiveTabWithoutSuggestionIsIgnored(t *testing.T) {
	provider := &fakeProvider{}
	res := run(t, Services{Weather: provider, Locator: fakeLocator{err: errors.New("offline")}}, "\t\n", "interactive")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, int32(0), provider.calls.Load())
}
