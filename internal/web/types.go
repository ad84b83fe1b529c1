package web

import "weather_card/internal/presentation"

// WeatherRequest is the query of GET /api/v1/weather.
type WeatherRequest struct {
	City string `form:"city" binding:"required,cityname"`
}

// CoordinatesRequest is the query of GET /api/v1/weather/coordinates.
// Pointers keep 0°/0° distinguishable from a missing value.
type CoordinatesRequest struct {
	Lat     *float64 `form:"lat" binding:"required,min=-90,max=90"`
	Lon     *float64 `form:"lon" binding:"required,min=-180,max=180"`
	City    string   `form:"city" binding:"omitempty,max=100"`
	Country string   `form:"country" binding:"omitempty,max=100"`
}

// LocationResponse is the best-effort suggestion payload.
type LocationResponse struct {
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
	Available bool   `json:"available"`
}

// pageData feeds templates/page.html.
type pageData struct {
	Query     string
	Kind      presentation.Kind
	Card      presentation.CardView
	Error     string
	RetryHint string
}
