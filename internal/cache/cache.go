// Package cache stores analysis results keyed by the content they were computed from.
// Analysis is deterministic, so a key built from the vocabulary version and both
// input texts identifies a result exactly.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/Aanishnithin07/FitForge/internal/config"
	"github.com/Aanishnithin07/FitForge/internal/types"
)

// keyPrefix namespaces every key written to Redis
const keyPrefix = "fitforge:analysis:"

// Cache stores analysis results
type Cache interface {
	// Get returns the cached result and whether it was found
	Get(ctx context.Context, key string) (*types.AnalysisResult, bool, error)
	Set(ctx context.Context, key string, result *types.AnalysisResult) error
	Close() error
}

// Key identifies the result of analyzing resume against jd with one vocabulary version
func Key(version, jd, resume string) string {
	h := sha256.New()
	for _, part := range []string{version, jd, resume} {
		// length-prefixed so ("ab","c") and ("a","bc") differ
		fmt.Fprintf(h, "%d:%s", len(part), part)
	}
	return keyPrefix + hex.EncodeToString(h.Sum(nil))
}

// New returns a Redis cache when enabled and reachable, otherwise an error.
// A disabled cache is a Noop.
func New(ctx context.Context, cfg config.CacheConfig) (Cache, error) {
	if !cfg.Enabled {
		return Noop{}, nil
	}
	c := NewRedis(cfg)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := c.Ping(pingCtx); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

// Noop never stores anything
type Noop struct{}

// Get always misses
func (Noop) Get(context.Context, string) (*types.AnalysisResult, bool, error) {
	return nil, false, nil
}

// Set discards the result
func (Noop) Set(context.Context, string, *types.AnalysisResult) error {
	return nil
}

// Close does nothing
func (Noop) Close() error {
	return nil
}

// ErrCorruptEntry is returned when a cached value cannot be decoded
var ErrCorruptEntry = errors.New("corrupt cache entry")
