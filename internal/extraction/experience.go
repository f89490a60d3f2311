// Package extraction pulls years of experience, education level and
// certifications out of free text with regular expressions.
// Finding nothing is a normal outcome and is reported as nil or an empty list.
package extraction

import (
	"regexp"
	"strconv"

	"github.com/Aanishnithin07/FitForge/internal/types"
)

// closeMatchRatio is the share of required years that still counts as a close match
const closeMatchRatio = 0.7

var experiencePatterns = []*regexp.Regexp{
	// "5+ years of professional experience"
	regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\s+(?:of\s+)?(?:\w+\s+){0,3}experience`),
	// "experience: 5 years"
	regexp.MustCompile(`(?i)experience\s*:?\s*(\d+)\+?\s*(?:years?|yrs?)`),
	// "5 years with Go"
	regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\s+(?:in|with|of)\b`),
}

// ExtractYears returns the largest year count mentioned in an experience
// phrase, or nil if there is none.
func ExtractYears(text string) *int {
	var best *int
	for _, re := range experiencePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if best == nil || n > *best {
				v := n
				best = &v
			}
		}
	}
	return best
}

// ClassifyExperience compares candidate years with required years
func ClassifyExperience(required, candidate *int) types.ExperienceMatch {
	switch {
	case required == nil || candidate == nil:
		return types.ExperienceUnknown
	case *candidate >= *required:
		return types.ExperienceMeets
	case float64(*candidate) >= closeMatchRatio*float64(*required):
		return types.ExperienceCloseMatch
	default:
		return types.ExperienceBelow
	}
}

// Experience extracts required years from the JD and candidate years from the resume
func Experience(jdText, resumeText string) *types.ExperienceInfo {
	required := ExtractYears(jdText)
	candidate := ExtractYears(resumeText)
	return &types.ExperienceInfo{
		Required:  required,
		Candidate: candidate,
		Match:     ClassifyExperience(required, candidate),
	}
}
