package extraction

import (
	"regexp"
	"strings"

	"github.com/Aanishnithin07/FitForge/internal/parsing"
	"github.com/Aanishnithin07/FitForge/internal/types"
)

// educationKeywords lists the normalized phrases that signal each level
var educationKeywords = map[types.EducationLevel][]string{
	types.EducationPhD:        {"phd", "ph d", "doctorate", "doctoral", "doctor of philosophy"},
	types.EducationMasters:    {"master", "masters", "msc", "m sc", "mba", "meng", "m eng", "mtech", "m tech", "ms degree"},
	types.EducationBachelors:  {"bachelor", "bachelors", "bsc", "b sc", "bs", "btech", "b tech", "beng", "b eng", "undergraduate degree"},
	types.EducationAssociates: {"associate degree", "associate s degree", "associates degree", "associate of arts", "associate of science", "aas"},
	types.EducationDiploma:    {"diploma", "high school", "ged"},
}

// educationRank orders levels for comparison
var educationRank = map[types.EducationLevel]int{
	types.EducationPhD:        5,
	types.EducationMasters:    4,
	types.EducationBachelors:  3,
	types.EducationAssociates: 2,
	types.EducationDiploma:    1,
}

type levelPattern struct {
	level types.EducationLevel
	re    *regexp.Regexp
}

// educationPatterns is checked highest rank first
var educationPatterns = compileEducationPatterns()

func compileEducationPatterns() []levelPattern {
	out := make([]levelPattern, 0, len(types.EducationLevels))
	for _, level := range types.EducationLevels {
		alts := make([]string, len(educationKeywords[level]))
		for i, kw := range educationKeywords[level] {
			alts[i] = regexp.QuoteMeta(kw)
		}
		out = append(out, levelPattern{
			level: level,
			re:    regexp.MustCompile(`\b(?:` + strings.Join(alts, "|") + `)\b`),
		})
	}
	return out
}

// ExtractEducation returns the highest education level mentioned in text, or nil
func ExtractEducation(text string) *types.EducationLevel {
	normalized := parsing.Normalize(text)
	if normalized == "" {
		return nil
	}
	for _, p := range educationPatterns {
		if p.re.MatchString(normalized) {
			level := p.level
			return &level
		}
	}
	return nil
}

// Rank returns the comparison rank of a level, 0 for unknown levels
func Rank(level types.EducationLevel) int {
	return educationRank[level]
}

// ClassifyEducation compares candidate level with the required level. The
// label is the candidate level capitalized when no requirement was found.
func ClassifyEducation(required, candidate *types.EducationLevel) (types.EducationMatch, string) {
	switch {
	case required == nil && candidate != nil:
		return types.EducationNotSpecified, candidate.Title()
	case required == nil || candidate == nil:
		return types.EducationNotSpecified, ""
	case Rank(*candidate) >= Rank(*required):
		return types.EducationMeets, ""
	default:
		return types.EducationBelow, ""
	}
}

// Education extracts the required level from the JD and the candidate level from the resume
func Education(jdText, resumeText string) *types.EducationInfo {
	required := ExtractEducation(jdText)
	candidate := ExtractEducation(resumeText)
	match, label := ClassifyEducation(required, candidate)
	return &types.EducationInfo{
		Required:  required,
		Candidate: candidate,
		Match:     match,
		Label:     label,
	}
}
