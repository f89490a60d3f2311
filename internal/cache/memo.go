package cache

import (
	"context"

	"github.com/Aanishnithin07/FitForge/internal/analysis"
	"github.com/Aanishnithin07/FitForge/internal/logger"
	"github.com/Aanishnithin07/FitForge/internal/types"
)

// Memo serves analyses from a cache, falling back to the engine on a miss.
// Cache failures are logged and never fail the analysis.
type Memo struct {
	cache       Cache
	engine      analysis.Engine
	fingerprint string
	log         logger.Logger
}

// NewMemo creates a Memo. fingerprint must change whenever the engine could
// produce a different result for the same input; see analysis.Analyzer.Fingerprint.
func NewMemo(c Cache, engine analysis.Engine, fingerprint string, log logger.Logger) *Memo {
	if c == nil {
		c = Noop{}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Memo{cache: c, engine: engine, fingerprint: fingerprint, log: log}
}

// Analyze returns the result for input and whether it came from the cache.
// Degenerate inputs are answered directly.
func (m *Memo) Analyze(ctx context.Context, input types.AnalysisInput) (*types.AnalysisResult, bool) {
	if input.JDText == "" || input.ResumeText == "" {
		return m.engine.Analyze(input), false
	}

	key := Key(m.fingerprint, input.JDText, input.ResumeText)
	if cached, ok, err := m.cache.Get(ctx, key); err != nil {
		m.log.Warn("cache read failed", logger.Fields{"error": err.Error()})
	} else if ok {
		return cached, true
	}

	result := m.engine.Analyze(input)
	if err := m.cache.Set(ctx, key, result); err != nil {
		m.log.Warn("cache write failed", logger.Fields{"error": err.Error()})
	}
	return result, false
}
