// Package matching compares a job description with a resume three ways:
// curated skills by substring, top JD keywords by stemmed token, and
// contextual concepts through a synonym map.
package matching

// Result is a matched/missing split with its 0-100 coverage score
type Result struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
	Score   float64  `json:"score"`
}

func newResult() Result {
	return Result{Matched: []string{}, Missing: []string{}}
}

// coverage is matched/total as a percentage, 0 when total is 0
func coverage(matched, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(matched) / float64(total) * 100
}
