package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"path"
	"time"

	"weather_card/internal/geolocation"
	"weather_card/internal/presentation"
	"weather_card/internal/weather"
	"weather_card/platform/httpkit"
	"weather_card/platform/logger"
	"weather_card/platform/sanitize"
	"weather_card/platform/validator"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Handler serves the card page and the JSON API behind it.
type Handler struct {
	weather weather.Provider
	locator geolocation.Locator
	log     *logger.Logger
	val     *validator.Validator
	now     func() time.Time
}

func NewHandler(provider weather.Provider, locator geolocation.Locator, log *logger.Logger) *Handler {
	return &Handler{
		weather: provider,
		locator: locator,
		log:     log,
		val:     validator.New(),
		now:     time.Now,
	}
}

// Page handles GET /?city=...
// Every request runs its own session; a missing or blank city renders the idle page.
func (h *Handler) Page(c *gin.Context) {
	query := sanitize.Query(c.Query("city"))

	session := presentation.NewSession(h.weather, nil, h.log)
	state := session.Submit(c.Request.Context(), query)

	data := pageData{Query: query, Kind: state.Kind(), RetryHint: presentation.RetryHint}
	switch st := state.(type) {
	case presentation.Loaded:
		data.Card = presentation.NewCardView(st.Snapshot, h.now())
	case presentation.Failed:
		data.Error = st.Message
	}

	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, "page.html", data); err != nil {
		h.log.WithContext(c.Request.Context()).Error("render page failed", "error", err)
		httpkit.Error(c, http.StatusInternalServerError, "render failed", nil)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// GetWeatherByCity handles GET /api/v1/weather?city=...
func (h *Handler) GetWeatherByCity(c *gin.Context) {
	var req WeatherRequest
	if !httpkit.BindQuery(c, &req) {
		return
	}

	city, ok := h.cleanName(c, "city", req.City)
	if !ok {
		return
	}

	snap, err := h.weather.GetWeatherByCity(c.Request.Context(), city)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, snap)
}

// GetWeatherByCoordinates handles GET /api/v1/weather/coordinates?lat=...&lon=...
func (h *Handler) GetWeatherByCoordinates(c *gin.Context) {
	var req CoordinatesRequest
	if !httpkit.BindQuery(c, &req) {
		return
	}

	var city, country string
	if req.City != "" {
		var ok bool
		if city, ok = h.cleanName(c, "city", req.City); !ok {
			return
		}
	}
	if req.Country != "" {
		var ok bool
		if country, ok = h.cleanName(c, "country", req.Country); !ok {
			return
		}
	}

	snap, err := h.weather.GetWeatherByCoordinates(c.Request.Context(), *req.Lat, *req.Lon, city, country)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, snap)
}

// cleanName sanitizes a user-supplied place name and validates what is left.
// On failure it answers 400 and returns false.
func (h *Handler) cleanName(c *gin.Context, field, raw string) (string, bool) {
	name := sanitize.Query(raw)
	if err := h.val.CityName(name); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid query", []httpkit.FieldError{
			{Field: field, Rule: validator.TagCityName},
		})
		return "", false
	}
	return name, true
}

// GetLocation handles GET /api/v1/location.
// The lookup is best-effort, so failures answer 200 with available=false.
func (h *Handler) GetLocation(c *gin.Context) {
	guess, err := h.locator.LocateIP(c.Request.Context(), c.ClientIP())
	if err != nil || guess.City == "" {
		h.log.WithContext(c.Request.Context()).Debug("no location suggestion", "error", err)
		httpkit.OK(c, LocationResponse{Available: false})
		return
	}

	httpkit.OK(c, LocationResponse{City: guess.City, Country: guess.Country, Available: true})
}

// ServeStatic handles GET /static/*file.
func (h *Handler) ServeStatic(c *gin.Context) {
	name := c.Param("file")
	body, err := staticFS.ReadFile("static" + name)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, contentType(name), body)
}

func contentType(name string) string {
	switch path.Ext(name) {
	case ".js":
		return "application/javascript; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}
