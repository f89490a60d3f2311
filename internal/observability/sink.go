package observability

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Aanishnithin07/FitForge/internal/logger"
)

// LogSink writes snapshots as a structured log entry
type LogSink struct {
	log logger.Logger
}

// NewLogSink creates a sink that logs at info level
func NewLogSink(log logger.Logger) *LogSink {
	return &LogSink{log: log}
}

// Write logs the snapshot
func (s *LogSink) Write(_ context.Context, snap Snapshot) error {
	s.log.Info("stats flushed", logger.Fields{
		"analyses":        snap.AnalysisCount,
		"avg_analysis_ms": snap.AverageAnalysisTime.Milliseconds(),
		"labels":          snap.Labels,
		"ingestions":      snap.Ingestions,
		"outputs":         snap.Outputs,
		"errors":          snap.Errors,
		"session_seconds": int64(snap.SessionDuration.Seconds()),
	})
	return nil
}

// JSONSink writes each snapshot as one JSON line
type JSONSink struct {
	out io.Writer
}

// NewJSONSink creates a sink writing JSON lines to out
func NewJSONSink(out io.Writer) *JSONSink {
	return &JSONSink{out: out}
}

// Write encodes the snapshot
func (s *JSONSink) Write(_ context.Context, snap Snapshot) error {
	if err := json.NewEncoder(s.out).Encode(snap); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}
