// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetTrustedProxies() []string
}

// UpstreamConfig provides settings shared by all third-party API clients.
type UpstreamConfig interface {
	GetUpstreamTimeout() time.Duration
	GetUserAgent() string
}

// GeolocationConfig provides settings for the IP geolocation client.
type GeolocationConfig interface {
	UpstreamConfig
	GetIPGeoBaseURL() string
}

// GeocodingConfig provides settings for the geocoding client.
type GeocodingConfig interface {
	UpstreamConfig
	GetGeocodingBaseURL() string
	GetGeocodingLanguage() language.Tag
}

// WeatherConfig provides settings for the weather client.
type WeatherConfig interface {
	UpstreamConfig
	GetWeatherBaseURL() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env               string
	HTTPAddr          string
	CORSAllowAll      bool
	CORSOrigins       []string
	TrustedProxies    []string
	UpstreamTimeout   time.Duration
	UserAgent         string
	IPGeoBaseURL      string
	GeocodingBaseURL  string
	GeocodingLanguage language.Tag
	WeatherBaseURL    string
}

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

// GetTrustedProxies returns the proxies whose X-Forwarded-For is honoured.
// Empty means the peer address is always the client address.
func (c *Config) GetTrustedProxies() []string { return c.TrustedProxies }

// UpstreamConfig implementation
func (c *Config) GetUpstreamTimeout() time.Duration { return c.UpstreamTimeout }
func (c *Config) GetUserAgent() string              { return c.UserAgent }

// GeolocationConfig implementation
func (c *Config) GetIPGeoBaseURL() string { return c.IPGeoBaseURL }

// GeocodingConfig implementation
func (c *Config) GetGeocodingBaseURL() string        { return c.GeocodingBaseURL }
func (c *Config) GetGeocodingLanguage() language.Tag { return c.GeocodingLanguage }

// WeatherConfig implementation
func (c *Config) GetWeatherBaseURL() string { return c.WeatherBaseURL }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:8080"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	lang, err := language.Parse(getEnv("GEOCODING_LANGUAGE", "de"))
	if err != nil {
		return nil, fmt.Errorf("GEOCODING_LANGUAGE is not a valid language tag: %w", err)
	}

	cfg := &Config{
		Env:               getEnv("APP_ENV", "development"),
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:      corsAllowAll,
		CORSOrigins:       corsOrigins,
		TrustedProxies:    splitCSV(getEnv("TRUSTED_PROXIES", "")),
		UpstreamTimeout:   mustDuration(getEnv("UPSTREAM_TIMEOUT", "10s")),
		UserAgent:         getEnv("USER_AGENT", "WeatherCard/1.0"),
		IPGeoBaseURL:      strings.TrimRight(getEnv("IP_GEO_BASE_URL", "http://ip-api.com"), "/"),
		GeocodingBaseURL:  strings.TrimRight(getEnv("GEOCODING_BASE_URL", "https://geocoding-api.open-meteo.com/v1"), "/"),
		GeocodingLanguage: lang,
		WeatherBaseURL:    strings.TrimRight(getEnv("WEATHER_BASE_URL", "https://api.open-meteo.com/v1/forecast"), "/"),
	}

	if cfg.UpstreamTimeout <= 0 {
		return nil, fmt.Errorf("UPSTREAM_TIMEOUT must be a positive duration")
	}
	for _, proxy := range cfg.TrustedProxies {
		if err := validateProxy(proxy); err != nil {
			return nil, fmt.Errorf("TRUSTED_PROXIES: %w", err)
		}
	}
	for name, raw := range map[string]string{
		"IP_GEO_BASE_URL":    cfg.IPGeoBaseURL,
		"GEOCODING_BASE_URL": cfg.GeocodingBaseURL,
		"WEATHER_BASE_URL":   cfg.WeatherBaseURL,
	} {
		if err := validateBaseURL(raw); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}

func validateProxy(value string) error {
	if strings.Contains(value, "/") {
		_, _, err := net.ParseCIDR(value)
		return err
	}
	if net.ParseIP(value) == nil {
		return fmt.Errorf("invalid IP address %q", value)
	}
	return nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
