// Package client provides the HTTP client for the ip-api.com geolocation service.
package client

import (
	"context"
	"fmt"
	"net"
	"net/url"

	"weather_card/internal/geolocation/transport"
	"weather_card/platform/logger"
	"weather_card/platform/upstream"
)

const statusSuccess = "success"

// Client resolves network addresses to an approximate location.
type Client struct {
	baseURL string
	http    *upstream.Client
	log     *logger.Logger
}

// New creates a new geolocation client.
func New(baseURL string, httpClient *upstream.Client, log *logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		log:     log,
	}
}

// Locate resolves the caller's own public address.
func (c *Client) Locate(ctx context.Context) (transport.LocationGuess, error) {
	return c.lookup(ctx, c.baseURL+"/json")
}

// LocateIP resolves a specific address. Addresses that cannot be located
// publicly (loopback, private ranges) fall back to Locate.
func (c *Client) LocateIP(ctx context.Context, ip string) (transport.LocationGuess, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil || !isPublic(parsed) {
		return c.Locate(ctx)
	}
	return c.lookup(ctx, c.baseURL+"/json/"+url.PathEscape(parsed.String()))
}

func (c *Client) lookup(ctx context.Context, reqURL string) (transport.LocationGuess, error) {
	var payload apiResponse
	if err := c.http.GetJSON(ctx, reqURL, &payload); err != nil {
		c.log.UpstreamError("ip-api", "locate", err)
		return transport.LocationGuess{}, transport.LocationUnavailable(err)
	}

	if payload.Status != statusSuccess {
		c.log.Debug("ip-api lookup unsuccessful", "status", payload.Status, "message", payload.Message)
		return transport.LocationGuess{}, transport.LocationUnavailable(
			fmt.Errorf("ip-api status %q: %s", payload.Status, payload.Message),
		)
	}

	return payload.toTransport(), nil
}

func isPublic(ip net.IP) bool {
	return !ip.IsLoopback() &&
		!ip.IsPrivate() &&
		!ip.IsUnspecified() &&
		!ip.IsLinkLocalUnicast() &&
		!ip.IsLinkLocalMulticast()
}

// apiResponse mirrors the relevant parts of the ip-api JSON payload.
type apiResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

func (a apiResponse) toTransport() transport.LocationGuess {
	return transport.LocationGuess{
		City:      a.City,
		Country:   a.Country,
		Latitude:  a.Lat,
		Longitude: a.Lon,
	}
}
