// Package observability provides the text report printer used by the CLI and
// the injectable stats collector that replaces any process-wide usage tracker.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/Aanishnithin07/FitForge/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted text output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, ending in "..." when cut
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

// writeList writes up to limit items as bullets with an overflow line
func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
	sb.WriteString("\n")
}

// PrintResult outputs a human-readable summary of one analysis
func (p *Printer) PrintResult(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:      %d/100 (%s)\n", result.Score, result.Label))
	sb.WriteString(fmt.Sprintf("ATS score:  %d/100\n", result.ATSScore))
	if d := result.Details; d != nil {
		sb.WriteString(fmt.Sprintf("Skills %d · Keywords %d · Context %d · Length %d\n",
			d.SkillScore, d.KeywordScore, d.ContextScore, d.LengthScore))
		sb.WriteString(fmt.Sprintf("Resume length: %d tokens\n", d.ResumeLength))
	}
	sb.WriteString("\n")

	if e := result.Experience; e != nil {
		sb.WriteString(fmt.Sprintf("Experience: %s (required %s, candidate %s)\n",
			e.Match, formatYears(e.Required), formatYears(e.Candidate)))
	}
	if e := result.Education; e != nil {
		line := string(e.Match)
		if e.Label != "" {
			line += " · " + e.Label
		}
		sb.WriteString(fmt.Sprintf("Education:  %s\n", line))
	}
	if result.Experience != nil || result.Education != nil {
		sb.WriteString("\n")
	}

	writeList(&sb, "Matched skills", result.MatchedSkills, maxItemsToShow)
	writeList(&sb, "Missing skills", result.MissingSkills, maxItemsToShow)
	writeList(&sb, "Suggested keywords", result.SuggestedTop5, maxItemsToShow)
	writeList(&sb, "Certifications", result.Certifications, 3)

	p.printBox("MATCH ANALYSIS", strings.TrimSuffix(sb.String(), "\n\n"))
}

func formatYears(years *int) string {
	if years == nil {
		return "n/a"
	}
	return fmt.Sprintf("%d yrs", *years)
}

// PrintLeaderboard outputs ranked candidates with their top missing skills
func (p *Printer) PrintLeaderboard(lb *types.Leaderboard) {
	if lb == nil || len(lb.Entries) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates ranked: %d\n\n", len(lb.Entries)))

	for i, e := range lb.Entries {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", e.Rank, e.Name))
		sb.WriteString(fmt.Sprintf("    Score: %d (%s) · ATS %d\n", e.Score, e.Label, e.ATSScore))
		if len(e.TopMissing) > 0 {
			sb.WriteString(fmt.Sprintf("    Missing: %s\n", strings.Join(e.TopMissing, ", ")))
		}
		if i < len(lb.Entries)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("LEADERBOARD", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintComparison outputs the differences between two candidates
func (p *Printer) PrintComparison(c *types.Comparison) {
	if c == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s vs %s\n\n", c.A, c.B))
	sb.WriteString(fmt.Sprintf("Score:    %+d\n", c.ScoreDelta))
	sb.WriteString(fmt.Sprintf("Skills:   %+d\n", c.SkillDelta))
	sb.WriteString(fmt.Sprintf("Keywords: %+d\n", c.KeywordDelta))
	sb.WriteString(fmt.Sprintf("Context:  %+d\n", c.ContextDelta))
	sb.WriteString(fmt.Sprintf("ATS:      %+d\n", c.ATSDelta))
	if c.ExperienceDelta != nil {
		sb.WriteString(fmt.Sprintf("Years:    %+d\n", *c.ExperienceDelta))
	}
	sb.WriteString("\n")
	writeList(&sb, "Only "+c.A, c.OnlyAMatched, 3)
	writeList(&sb, "Only "+c.B, c.OnlyBMatched, 3)
	sb.WriteString(fmt.Sprintf("Leader: %s", c.Leader))

	p.printBox("COMPARISON", sb.String())
}

// PrintReport outputs a stats report
func (p *Printer) PrintReport(r Report) {
	var sb strings.Builder
	sb.WriteString(r.Summary + "\n\n")
	for _, line := range r.Details {
		sb.WriteString(fmt.Sprintf("%-20s %s\n", line.Name, line.Value))
	}
	p.printBox("SESSION STATS", strings.TrimSuffix(sb.String(), "\n"))
}
