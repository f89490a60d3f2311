package ratelimit

import (
	"time"

	"github.com/Aanishnithin07/FitForge/internal/config"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// leaderboardShare is the fraction of the default limit allowed on /leaderboard,
// which runs up to 200 analyses per request
const leaderboardShare = 4

// FromConfig builds a limiter configuration from the application config.
func FromConfig(cfg config.RateLimitConfig) *Config {
	if !cfg.Enabled {
		return &Config{Enabled: false}
	}
	return &Config{
		Enabled:         true,
		DefaultLimit:    cfg.RequestsPerMinute,
		DefaultWindow:   time.Minute,
		DefaultBurst:    cfg.Burst,
		CleanupInterval: 5 * time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(cfg.RequestsPerMinute, cfg.Burst),
	}
}

// DefaultEndpointConfigs returns the endpoint-specific limits derived from the
// per-minute default.
func DefaultEndpointConfigs(requestsPerMinute, burst int) []EndpointConfig {
	return []EndpointConfig{
		// Batch analysis: strictest
		{
			Path:   "/leaderboard",
			Method: "POST",
			Limit:  max(requestsPerMinute/leaderboardShare, 1),
			Window: time.Minute,
			Burst:  max(burst/leaderboardShare, 1),
		},
		// Single analyses and annotation use the default limit
	}
}
