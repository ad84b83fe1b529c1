// Package web serves the weather card page and its JSON API.
package web

import (
	"weather_card/internal/geolocation"
	apphttp "weather_card/internal/http"
	"weather_card/internal/weather"
	"weather_card/platform/logger"
	"weather_card/platform/validator"

	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"
)

// Module wires the page and API routes.
type Module struct {
	handler *Handler
}

func NewModule(provider weather.Provider, locator geolocation.Locator, log *logger.Logger) *Module {
	if engine, ok := binding.Validator.Engine().(*playground.Validate); ok {
		if err := validator.Register(engine); err != nil {
			log.Error("register binding rules failed", "error", err)
		}
	}
	return &Module{handler: NewHandler(provider, locator, log)}
}

func (m *Module) Name() string {
	return "web"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Engine.GET("/", m.handler.Page)
	ctx.Engine.GET("/static/*file", m.handler.ServeStatic)

	ctx.V1.GET("/weather", m.handler.GetWeatherByCity)
	ctx.V1.GET("/weather/coordinates", m.handler.GetWeatherByCoordinates)
	ctx.V1.GET("/location", m.handler.GetLocation)
}

var _ apphttp.Module = (*Module)(nil)
