package ratelimit

import (
	"net/http"
	"strings"
)

// unlimitedPaths are never rate limited on GET
var unlimitedPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// unlimited is returned for probes and scrapes
var unlimited = EndpointConfig{Limit: 0}

// MatchEndpoint returns the configuration for a request, or nil when the
// default limit applies. An exact path and method match wins. A configured
// path ending in "/" also matches every path below it, so "/stats/" covers
// "/stats/labels".
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if method == http.MethodGet && unlimitedPaths[path] {
		u := unlimited
		return &u
	}

	var prefix *EndpointConfig
	for i := range configs {
		cfg := &configs[i]
		if cfg.Method != method {
			continue
		}
		if cfg.Path == path {
			return cfg
		}
		if prefix == nil && strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			prefix = cfg
		}
	}
	return prefix
}
