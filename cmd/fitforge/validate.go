package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Aanishnithin07/FitForge/internal/schemas"
	assets "github.com/Aanishnithin07/FitForge/schemas"
	"github.com/spf13/cobra"
)

const (
	kindAnalysis    = "analysis"
	kindLeaderboard = "leaderboard"
)

var resultSchemas = map[string]string{
	kindAnalysis:    assets.AnalysisResult,
	kindLeaderboard: assets.Leaderboard,
}

func newValidateCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Validate saved analysis or leaderboard JSON against its schema",
		Long: `Validate JSON written by "analyze" or "leaderboard" against the published
result schemas. Leaderboard files written with --compare are checked on their
"leaderboard" member.`,
		Example: `  fitforge validate result.json
  fitforge validate --kind leaderboard ranking.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, ok := resultSchemas[kind]
			if !ok {
				return fmt.Errorf("invalid --kind %q: must be %s or %s", kind, kindAnalysis, kindLeaderboard)
			}
			out := cmd.OutOrStdout()
			for _, path := range args {
				if err := validateResultFile(kind, schema, path); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				fmt.Fprintf(out, "✓ %s is a valid %s result\n", path, kind)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", kindAnalysis, "Result kind (analysis or leaderboard)")
	return cmd
}

func validateResultFile(kind, schema, path string) error {
	if kind != kindLeaderboard {
		return schemas.ValidateFile(schema, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if wrapped, ok := doc["leaderboard"]; ok {
		return schemas.ValidateValue(schema, wrapped)
	}
	return schemas.ValidateValue(schema, doc)
}
