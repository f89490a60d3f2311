package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Aanishnithin07/FitForge/internal/leaderboard"
	"github.com/Aanishnithin07/FitForge/internal/logger"
	"github.com/Aanishnithin07/FitForge/internal/observability"
	"github.com/Aanishnithin07/FitForge/internal/types"
	"github.com/spf13/cobra"
)

type leaderboardOptions struct {
	jd          string
	resumes     []string
	compare     string
	format      string
	concurrency int
}

// leaderboardOutput is the JSON written when --compare is set
type leaderboardOutput struct {
	Leaderboard *types.Leaderboard `json:"leaderboard"`
	Comparison  *types.Comparison  `json:"comparison,omitempty"`
}

func newLeaderboardCmd(g *globalFlags) *cobra.Command {
	opts := &leaderboardOptions{}
	cmd := &cobra.Command{
		Use:   "leaderboard [resume...]",
		Short: "Rank several resumes against one job description",
		Long: `Rank several resumes against one job description, best match first.

Resumes come from repeated --resume flags and positional arguments. Each
candidate is named after its file. Files that cannot be read are skipped
with a warning. Use --compare a,b to compare two candidates by name.`,
		Example: `  fitforge leaderboard --jd posting.txt alice.md bob.txt carol.html
  fitforge leaderboard --jd posting.txt -r alice.md -r bob.txt --compare alice,bob --format text`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.resumes = append(opts.resumes, args...)
			return runLeaderboard(cmd, g, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.jd, "jd", "j", "", "Path to the job description (required)")
	cmd.Flags().StringArrayVarP(&opts.resumes, "resume", "r", nil, "Path to a resume (repeatable)")
	cmd.Flags().StringVar(&opts.compare, "compare", "", "Compare two candidates, as name-a,name-b")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatJSON, "Output format (json or text)")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 0, "Parallel analyses (overrides leaderboard.concurrency)")

	_ = cmd.MarkFlagRequired("jd")
	return cmd
}

func runLeaderboard(cmd *cobra.Command, g *globalFlags, opts *leaderboardOptions) error {
	if err := checkFormat(opts.format); err != nil {
		return err
	}
	if len(opts.resumes) == 0 {
		return fmt.Errorf("at least one resume is required")
	}
	var compareA, compareB string
	if opts.compare != "" {
		parts := strings.Split(opts.compare, ",")
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
			return fmt.Errorf("invalid --compare %q: expected two names separated by a comma", opts.compare)
		}
		compareA, compareB = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}

	rt, err := setup(cmd, g)
	if err != nil {
		return err
	}
	defer rt.close(cmd.Context())

	concurrency := rt.cfg.Leaderboard.Concurrency
	if cmd.Flags().Changed("concurrency") {
		if opts.concurrency < 1 {
			return fmt.Errorf("--concurrency must be at least 1")
		}
		concurrency = opts.concurrency
	}

	jdText, err := rt.readFile(opts.jd)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	candidates := make([]types.Candidate, 0, len(opts.resumes))
	for _, path := range opts.resumes {
		text, err := rt.readFile(path)
		if err != nil {
			rt.log.WithError(err).Warn("skipping unreadable resume", logger.Fields{"path": path})
			continue
		}
		candidates = append(candidates, types.Candidate{
			Name:       candidateName(path),
			ResumeText: text,
			Source:     path,
		})
	}
	if len(candidates) == 0 {
		return fmt.Errorf("no readable resumes")
	}

	lb, err := leaderboard.Rank(cmd.Context(), rt.engine, jdText, candidates, leaderboard.Options{
		Concurrency: concurrency,
		Logger:      rt.log,
	})
	if err != nil {
		return fmt.Errorf("failed to rank candidates: %w", err)
	}

	var comparison *types.Comparison
	if opts.compare != "" {
		a, ok := leaderboard.Lookup(lb, compareA)
		if !ok {
			return fmt.Errorf("no candidate named %q", compareA)
		}
		b, ok := leaderboard.Lookup(lb, compareB)
		if !ok {
			return fmt.Errorf("no candidate named %q", compareB)
		}
		c := leaderboard.Compare(a, b)
		comparison = &c
	}

	out := cmd.OutOrStdout()
	if opts.format == formatText {
		printer := observability.NewPrinter(out)
		printer.PrintLeaderboard(lb)
		if comparison != nil {
			printer.PrintComparison(comparison)
		}
		rt.collector.TrackOutput("leaderboard")
		return nil
	}

	if comparison != nil {
		err = writeJSON(out, leaderboardOutput{Leaderboard: lb, Comparison: comparison})
	} else {
		err = writeJSON(out, lb)
	}
	if err != nil {
		return err
	}
	rt.collector.TrackOutput("leaderboard")
	return nil
}

// candidateName derives a display name from a resume path: "cv/ada.md" is "ada"
func candidateName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
