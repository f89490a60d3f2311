package main

import (
	"fmt"
	"os"

	"github.com/Aanishnithin07/FitForge/internal/logger"
	"github.com/Aanishnithin07/FitForge/internal/rendering"
	"github.com/Aanishnithin07/FitForge/internal/types"
	"github.com/spf13/cobra"
)

type annotateOptions struct {
	resume     string
	jd         string
	highlights []string
	out        string
}

func newAnnotateCmd(g *globalFlags) *cobra.Command {
	opts := &annotateOptions{}
	cmd := &cobra.Command{
		Use:   "annotate",
		Short: "Highlight matched terms in a resume as HTML",
		Long: `Write the resume as HTML with terms wrapped in <mark> elements.

Terms come from --highlight, or from the matched skills and keywords of an
analysis against --jd. All other text is HTML-escaped.`,
		Example: `  fitforge annotate --resume resume.md --jd posting.txt --out resume.html
  fitforge annotate --resume resume.txt --highlight Go --highlight Kubernetes`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnnotate(cmd, g, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.resume, "resume", "r", "", "Path to the resume (required)")
	cmd.Flags().StringVarP(&opts.jd, "jd", "j", "", "Path to a job description whose matches are highlighted")
	cmd.Flags().StringArrayVar(&opts.highlights, "highlight", nil, "Term to highlight (repeatable)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file (default stdout)")

	_ = cmd.MarkFlagRequired("resume")
	cmd.MarkFlagsMutuallyExclusive("jd", "highlight")
	return cmd
}

func runAnnotate(cmd *cobra.Command, g *globalFlags, opts *annotateOptions) error {
	rt, err := setup(cmd, g)
	if err != nil {
		return err
	}
	defer rt.close(cmd.Context())

	resumeText, err := rt.readFile(opts.resume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	highlights := opts.highlights
	if opts.jd != "" {
		jdText, err := rt.readFile(opts.jd)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		highlights = rt.engine.Analyze(types.AnalysisInput{JDText: jdText, ResumeText: resumeText}).Highlights()
	}

	page := htmlPage("Annotated resume", rendering.Annotate(resumeText, highlights))
	if opts.out == "" {
		if _, err := fmt.Fprint(cmd.OutOrStdout(), page); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		if err := os.WriteFile(opts.out, []byte(page), 0644); err != nil {
			rt.collector.TrackError(err)
			return fmt.Errorf("failed to write annotated resume: %w", err)
		}
		rt.log.Info("annotated resume written", logger.Fields{"path": opts.out, "terms": len(highlights)})
	}
	rt.collector.TrackOutput("html")
	return nil
}
