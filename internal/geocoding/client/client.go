// Package client provides the HTTP client for the Open-Meteo geocoding API.
package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"weather_card/internal/geocoding/transport"
	"weather_card/platform/apperr"
	"weather_card/platform/logger"
	"weather_card/platform/upstream"

	"golang.org/x/text/language"
)

// Client handles geocoding requests.
type Client struct {
	baseURL  string
	language string
	http     *upstream.Client
	log      *logger.Logger
}

// New creates a new geocoding client. Results are localized to lang.
func New(baseURL string, lang language.Tag, httpClient *upstream.Client, log *logger.Logger) *Client {
	base, _ := lang.Base()
	return &Client{
		baseURL:  baseURL,
		language: base.String(),
		http:     httpClient,
		log:      log,
	}
}

// Forward resolves a free-text place name to its single best match.
func (c *Client) Forward(ctx context.Context, name string) (transport.GeoResult, error) {
	params := url.Values{}
	params.Set("name", name)
	params.Set("count", "1")
	params.Set("language", c.language)
	params.Set("format", "json")

	payload, err := c.fetch(ctx, "search", params)
	if err != nil {
		return transport.GeoResult{}, apperr.Upstream("Ortssuche fehlgeschlagen", err).WithOp("geocoding.forward")
	}

	if len(payload.Results) == 0 {
		c.log.Debug("geocoding found no match", "name", name)
		return transport.GeoResult{}, transport.CityNotFound(name)
	}

	return payload.Results[0].toTransport(), nil
}

// Reverse resolves coordinates to the nearest known place.
// It returns nil without error when the service has no match.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (*transport.GeoResult, error) {
	params := url.Values{}
	params.Set("latitude", formatCoordinate(lat))
	params.Set("longitude", formatCoordinate(lon))
	params.Set("language", c.language)
	params.Set("format", "json")

	payload, err := c.fetch(ctx, "reverse", params)
	if err != nil {
		return nil, apperr.Upstream("Umgekehrte Ortssuche fehlgeschlagen", err).WithOp("geocoding.reverse")
	}

	if len(payload.Results) == 0 {
		return nil, nil
	}

	result := payload.Results[0].toTransport()
	return &result, nil
}

func (c *Client) fetch(ctx context.Context, endpoint string, params url.Values) (apiResponse, error) {
	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	var payload apiResponse
	if err := c.http.GetJSON(ctx, reqURL, &payload); err != nil {
		c.log.UpstreamError("open-meteo-geocoding", endpoint, err)
		return apiResponse{}, err
	}
	return payload, nil
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// apiResponse mirrors the relevant parts of the Open-Meteo geocoding payload.
// The results key is omitted entirely when nothing matches.
type apiResponse struct {
	Results []apiResult `json:"results"`
}

type apiResult struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (a apiResult) toTransport() transport.GeoResult {
	return transport.GeoResult{
		Name:      a.Name,
		Country:   a.Country,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
	}
}
