package main

import (
	"fmt"
	"os"

	"github.com/Aanishnithin07/FitForge/internal/logger"
	"github.com/Aanishnithin07/FitForge/internal/rendering"
	"github.com/Aanishnithin07/FitForge/internal/types"
	"github.com/spf13/cobra"
)

type analyzeOptions struct {
	jd       string
	resume   string
	demo     bool
	format   string
	annotate string
}

func newAnalyzeCmd(g *globalFlags) *cobra.Command {
	opts := &analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score a resume against a job description",
		Long: `Score a resume against a job description and print the result.

Inputs are .txt, .md or .html files. Use --demo to run the bundled sample
job description and resume.`,
		Example: `  fitforge analyze --jd posting.txt --resume resume.md
  fitforge analyze --jd posting.html --resume resume.txt --format text --annotate resume.html
  fitforge analyze --demo`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, g, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.jd, "jd", "j", "", "Path to the job description")
	cmd.Flags().StringVarP(&opts.resume, "resume", "r", "", "Path to the resume")
	cmd.Flags().BoolVar(&opts.demo, "demo", false, "Analyze the bundled demo job description and resume")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatJSON, "Output format (json or text)")
	cmd.Flags().StringVar(&opts.annotate, "annotate", "", "Write the resume as HTML with matched terms highlighted to this path")
	return cmd
}

func runAnalyze(cmd *cobra.Command, g *globalFlags, opts *analyzeOptions) error {
	if err := checkFormat(opts.format); err != nil {
		return err
	}
	if opts.demo && (opts.jd != "" || opts.resume != "") {
		return fmt.Errorf("--demo cannot be combined with --jd or --resume")
	}
	if !opts.demo && (opts.jd == "" || opts.resume == "") {
		return fmt.Errorf("--jd and --resume are required unless --demo is set")
	}

	rt, err := setup(cmd, g)
	if err != nil {
		return err
	}
	defer rt.close(cmd.Context())

	input := types.AnalysisInput{JDText: demoJD, ResumeText: demoResume}
	if !opts.demo {
		if input.JDText, err = rt.readFile(opts.jd); err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		if input.ResumeText, err = rt.readFile(opts.resume); err != nil {
			return fmt.Errorf("failed to read resume: %w", err)
		}
	}

	result := rt.engine.Analyze(input)
	if err := rt.writeResult(cmd.OutOrStdout(), opts.format, result); err != nil {
		return err
	}

	if opts.annotate != "" {
		page := htmlPage("Annotated resume", rendering.AnnotateResult(input.ResumeText, result))
		if err := os.WriteFile(opts.annotate, []byte(page), 0644); err != nil {
			rt.collector.TrackError(err)
			return fmt.Errorf("failed to write annotated resume: %w", err)
		}
		rt.collector.TrackOutput("html")
		rt.log.Info("annotated resume written", logger.Fields{"path": opts.annotate})
	}
	return nil
}

// htmlPage wraps an annotated fragment in a standalone document that keeps
// the resume's line breaks
func htmlPage(title, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>mark { background: #fde68a; } pre { white-space: pre-wrap; font-family: inherit; }</style>
</head>
<body>
<pre>%s</pre>
</body>
</html>
`, rendering.EscapeHTML(title), body)
}
