package observability

import (
	"fmt"
	"time"
)

// ReportLine is one labelled value in a report
type ReportLine struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Report is a human-readable summary of a snapshot
type Report struct {
	Summary string       `json:"summary"`
	Details []ReportLine `json:"details"`
}

// BuildReport summarizes a snapshot
func BuildReport(s Snapshot) Report {
	minutes := int64(s.SessionDuration.Round(time.Minute) / time.Minute)

	details := []ReportLine{
		{Name: "Total Analyses", Value: fmt.Sprintf("%d", s.AnalysisCount)},
		{Name: "Avg Analysis Time", Value: fmt.Sprintf("%dms", s.AverageAnalysisTime.Round(time.Millisecond).Milliseconds())},
	}
	for _, label := range sortedKeys(s.Labels) {
		details = append(details, ReportLine{Name: "  " + label, Value: fmt.Sprintf("%d", s.Labels[label])})
	}
	for _, format := range sortedKeys(s.Ingestions) {
		details = append(details, ReportLine{Name: "Ingested " + format, Value: fmt.Sprintf("%d", s.Ingestions[format])})
	}
	for _, kind := range sortedKeys(s.Outputs) {
		details = append(details, ReportLine{Name: "Output " + kind, Value: fmt.Sprintf("%d", s.Outputs[kind])})
	}
	details = append(details,
		ReportLine{Name: "Errors", Value: fmt.Sprintf("%d", s.Errors)},
		ReportLine{Name: "Session Duration", Value: fmt.Sprintf("%d min", minutes)},
	)

	return Report{
		Summary: fmt.Sprintf("%d analyses in %d minutes", s.AnalysisCount, minutes),
		Details: details,
	}
}

// Report summarizes the collector's current snapshot
func (c *Collector) Report() Report {
	return BuildReport(c.Snapshot())
}
