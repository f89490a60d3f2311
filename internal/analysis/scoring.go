package analysis

import (
	"math"

	"github.com/Aanishnithin07/FitForge/internal/parsing"
	"github.com/Aanishnithin07/FitForge/internal/types"
)

// Weights of the composite score components
const (
	skillWeight   = 0.5
	keywordWeight = 0.25
	contextWeight = 0.15
	lengthWeight  = 0.1
)

// Labels derived from the composite score
const (
	LabelExcellent = "Excellent Match"
	LabelGood      = "Good Match"
	LabelFair      = "Fair Match"
	LabelReview    = "Needs Review"
	LabelNoData    = "No data"
)

// Label thresholds (inclusive lower bounds)
const (
	excellentThreshold = 80
	goodThreshold      = 60
	fairThreshold      = 40
)

// lengthPenaltyStep is how many tokens past the ideal band cost one point
const lengthPenaltyStep = 50.0

// Label maps a composite score to its label
func Label(score int) string {
	switch {
	case score >= excellentThreshold:
		return LabelExcellent
	case score >= goodThreshold:
		return LabelGood
	case score >= fairThreshold:
		return LabelFair
	default:
		return LabelReview
	}
}

// LengthScore rewards resumes whose token count sits in the ideal band and
// falls off linearly on either side.
func LengthScore(tokenCount int) float64 {
	n := float64(tokenCount)
	switch {
	case tokenCount < parsing.IdealMinTokens:
		return n / parsing.IdealMinTokens * 100
	case tokenCount > parsing.IdealMaxTokens:
		return math.Max(100-(n-parsing.IdealMaxTokens)/lengthPenaltyStep, 0)
	default:
		return 100
	}
}

// Composite blends the sub-scores into the final 0-100 score
func Composite(s types.SubScores) int {
	raw := s.SkillScore*skillWeight +
		s.KeywordScore*keywordWeight +
		s.ContextScore*contextWeight +
		s.LengthScore*lengthWeight
	return clampPercent(math.Round(raw))
}

// roundDetails rounds each sub-score for display
func roundDetails(s types.SubScores, resumeLength int) *types.Details {
	return &types.Details{
		SkillScore:   clampPercent(math.Round(s.SkillScore)),
		KeywordScore: clampPercent(math.Round(s.KeywordScore)),
		ContextScore: clampPercent(math.Round(s.ContextScore)),
		LengthScore:  clampPercent(math.Round(s.LengthScore)),
		ResumeLength: resumeLength,
	}
}

func clampPercent(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}
