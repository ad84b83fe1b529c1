// Package router builds the gin engine from the registered modules.
package router

import (
	"net/http"

	apphttp "weather_card/internal/http"
	"weather_card/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// New creates the engine with the shared middleware chain and mounts every module.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()
	if err := engine.SetTrustedProxies(app.Config.GetTrustedProxies()); err != nil {
		app.Logger.Error("invalid trusted proxies, trusting none", "error", err)
		_ = engine.SetTrustedProxies(nil)
	}
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	// Preflight requests never match a route, so CORS has to sit on the engine.
	engine.Use(httpkit.CORS(app.Config))

	engine.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := engine.Group("/api/v1")

	rc := &apphttp.RouterContext{
		Engine: engine,
		V1:     v1,
	}
	for _, m := range app.Modules {
		m.RegisterRoutes(rc)
		app.Logger.Debug("module routes registered", "module", m.Name())
	}

	return engine
}
