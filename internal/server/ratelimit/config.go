package ratelimit

import (
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/kyp-analysis/internal/config"
)

// Routes whose requests build and serialize a report.
const (
	ReportPath    = "/report"
	APIReportPath = "/api/v1/report"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// FromConfig builds the limiter configuration from the application settings.
func FromConfig(cfg config.RateLimitConfig) *Config {
	if !cfg.Enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    cfg.DefaultLimit,
		DefaultWindow:   cfg.DefaultWindow,
		CleanupInterval: cfg.CleanupInterval,
		Whitelist:       ipSet(cfg.Whitelist),
		Blacklist:       ipSet(cfg.Blacklist),
		EndpointConfigs: ReportEndpointConfigs(cfg.ReportLimit, cfg.ReportWindow, cfg.ReportBurst),
	}
}

// ReportEndpointConfigs returns the limits for the two export endpoints.
// Export is the only expensive operation; everything else falls back to the
// default limit, and the health check is unlimited.
func ReportEndpointConfigs(limit int, window time.Duration, burst int) []EndpointConfig {
	return []EndpointConfig{
		{Path: ReportPath, Method: http.MethodPost, Limit: limit, Window: window, Burst: burst},
		{Path: APIReportPath, Method: http.MethodPost, Limit: limit, Window: window, Burst: burst},
	}
}

// ipSet converts an address list into a lookup set, skipping blanks.
// Entries may themselves be comma separated, as they are when set from
// a single environment variable.
func ipSet(list []string) map[string]bool {
	result := make(map[string]bool)
	for _, entry := range list {
		for _, ip := range strings.Split(entry, ",") {
			ip = strings.TrimSpace(ip)
			if ip != "" {
				result[ip] = true
			}
		}
	}
	return result
}
