// Package main provides the fitforge command line tool and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:           "fitforge",
		Short:         "Deterministic resume to job description matching",
		Long:          "FitForge scores how well a resume matches a job description using skill, keyword and context matching plus ATS-style heuristics. No network access or ML models are involved: the same inputs always give the same result.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "Path to YAML or JSON config file")
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	rootCmd.AddCommand(
		newAnalyzeCmd(g),
		newLeaderboardCmd(g),
		newAnnotateCmd(g),
		newServeCmd(g),
		newVocabCmd(g),
		newValidateCmd(),
	)
	return rootCmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
