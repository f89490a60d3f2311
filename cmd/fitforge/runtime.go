package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Aanishnithin07/FitForge/internal/analysis"
	"github.com/Aanishnithin07/FitForge/internal/config"
	"github.com/Aanishnithin07/FitForge/internal/ingestion"
	"github.com/Aanishnithin07/FitForge/internal/logger"
	"github.com/Aanishnithin07/FitForge/internal/observability"
	"github.com/Aanishnithin07/FitForge/internal/types"
	"github.com/Aanishnithin07/FitForge/internal/vocabulary"
	"github.com/spf13/cobra"
)

// Output formats accepted by --format
const (
	formatJSON = "json"
	formatText = "text"
)

// runtime bundles what a command needs once config has been loaded
type runtime struct {
	cfg       *config.Config
	log       logger.Logger
	analyzer  *analysis.Analyzer
	engine    analysis.Engine
	collector *observability.Collector
}

// setup loads config, applies the persistent flag overrides and builds the
// logger, analyzer and stats collector.
func setup(cmd *cobra.Command, g *globalFlags) (*runtime, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = g.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	collector := observability.NewCollector(observability.WithSink(observability.NewLogSink(log)))
	if err := collector.Init(); err != nil {
		return nil, err
	}

	vocab := vocabulary.Resolve(cfg.Vocabulary.SkillsPath, cfg.Vocabulary.SynonymsPath, log)
	analyzer := analysis.New(vocab, analysis.WithKeywordLimit(cfg.Analysis.KeywordLimit))

	return &runtime{
		cfg:       cfg,
		log:       log,
		analyzer:  analyzer,
		engine:    collector.Wrap(analyzer),
		collector: collector,
	}, nil
}

// close flushes session stats and syncs the logger
func (rt *runtime) close(ctx context.Context) {
	if err := rt.collector.Flush(ctx); err != nil {
		rt.log.WithError(err).Warn("failed to flush stats", nil)
	}
	_ = rt.log.Sync()
}

// readFile ingests a resume or job description file and records the ingestion
func (rt *runtime) readFile(path string) (string, error) {
	text, meta, err := ingestion.IngestFromFile(path)
	if err != nil {
		rt.collector.TrackError(err)
		return "", err
	}
	rt.collector.TrackIngestion(string(meta.Format))
	rt.log.Debug("ingested file", logger.Fields{
		"path":   path,
		"format": meta.Format,
		"bytes":  meta.Bytes,
		"chars":  meta.Chars,
		"sha256": meta.Hash,
	})
	return text, nil
}

func checkFormat(format string) error {
	if format != formatJSON && format != formatText {
		return fmt.Errorf("invalid --format %q: must be %s or %s", format, formatJSON, formatText)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

// writeResult prints one analysis in the requested format
func (rt *runtime) writeResult(w io.Writer, format string, result *types.AnalysisResult) error {
	if format == formatText {
		observability.NewPrinter(w).PrintResult(result)
		rt.collector.TrackOutput(formatText)
		return nil
	}
	if err := writeJSON(w, result); err != nil {
		return err
	}
	rt.collector.TrackOutput(formatJSON)
	return nil
}
