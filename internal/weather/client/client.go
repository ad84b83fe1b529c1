// Package client provides the HTTP client for the Open-Meteo forecast API.
package client

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"

	"weather_card/platform/logger"
	"weather_card/platform/upstream"
)

const currentVariables = "temperature_2m,relative_humidity_2m,apparent_temperature,is_day,precipitation,weather_code,surface_pressure,wind_speed_10m,wind_direction_10m"

var errMissingCurrent = errors.New("response has no current block")

// Observation is one set of current conditions at a point.
type Observation struct {
	Temperature         float64
	ApparentTemperature float64
	RelativeHumidity    int
	IsDay               bool
	Precipitation       float64
	WeatherCode         int
	SurfacePressure     float64
	WindSpeed           float64
	WindDirection       float64
	Timezone            string
}

// Client fetches current observations.
type Client struct {
	baseURL string
	http    *upstream.Client
	log     *logger.Logger
}

// New creates a new forecast API client.
func New(baseURL string, httpClient *upstream.Client, log *logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		log:     log,
	}
}

// Current fetches the current conditions at lat/lon in the location's own timezone.
func (c *Client) Current(ctx context.Context, lat, lon float64) (Observation, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("current", currentVariables)
	params.Set("timezone", "auto")
	params.Set("forecast_days", "1")

	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	var payload apiResponse
	if err := c.http.GetJSON(ctx, reqURL, &payload); err != nil {
		c.log.UpstreamError("open-meteo-forecast", "current", err)
		return Observation{}, err
	}

	if payload.Current == nil {
		c.log.UpstreamError("open-meteo-forecast", "current", errMissingCurrent)
		return Observation{}, errMissingCurrent
	}

	return payload.toObservation(), nil
}

// apiResponse mirrors the relevant parts of the forecast payload.
type apiResponse struct {
	Timezone string      `json:"timezone"`
	Current  *apiCurrent `json:"current"`
}

type apiCurrent struct {
	Temperature2m       float64 `json:"temperature_2m"`
	RelativeHumidity2m  float64 `json:"relative_humidity_2m"`
	ApparentTemperature float64 `json:"apparent_temperature"`
	IsDay               int     `json:"is_day"`
	Precipitation       float64 `json:"precipitation"`
	WeatherCode         int     `json:"weather_code"`
	SurfacePressure     float64 `json:"surface_pressure"`
	WindSpeed10m        float64 `json:"wind_speed_10m"`
	WindDirection10m    float64 `json:"wind_direction_10m"`
}

func (a apiResponse) toObservation() Observation {
	cur := a.Current
	return Observation{
		Temperature:         cur.Temperature2m,
		ApparentTemperature: cur.ApparentTemperature,
		RelativeHumidity:    int(math.Round(cur.RelativeHumidity2m)),
		IsDay:               cur.IsDay == 1,
		Precipitation:       cur.Precipitation,
		WeatherCode:         cur.WeatherCode,
		SurfacePressure:     cur.SurfacePressure,
		WindSpeed:           cur.WindSpeed10m,
		WindDirection:       cur.WindDirection10m,
		Timezone:            a.Timezone,
	}
}
