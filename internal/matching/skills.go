package matching

import (
	"strings"

	"github.com/Aanishnithin07/FitForge/internal/parsing"
	"github.com/Aanishnithin07/FitForge/internal/vocabulary"
)

type skillEntry struct {
	name       string
	normalized string
}

// SkillMatcher tests curated skills for substring presence in normalized text.
// It is immutable after construction and safe for concurrent use.
type SkillMatcher struct {
	entries []skillEntry
}

// NewSkillMatcher precomputes the normalized form of every skill, in vocabulary
// order. Skills that normalize to an already seen form are dropped, keeping
// the first spelling. A nil vocabulary yields a matcher that never matches.
func NewSkillMatcher(skills *vocabulary.Skills) *SkillMatcher {
	m := &SkillMatcher{}
	if skills == nil {
		return m
	}
	m.entries = make([]skillEntry, 0, len(skills.Skills))
	seen := make(map[string]struct{}, len(skills.Skills))
	for _, s := range skills.Skills {
		n := parsing.Normalize(s)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		m.entries = append(m.entries, skillEntry{name: s, normalized: n})
	}
	return m
}

// Size is the number of usable skills
func (m *SkillMatcher) Size() int {
	return len(m.entries)
}

// Match splits the skills present in the JD into matched (also present in the
// resume) and missing. Skills absent from the JD appear in neither list.
// Score is matched over JD-present skills.
func (m *SkillMatcher) Match(jd, resume *parsing.Document) Result {
	res := newResult()
	present := 0
	for _, e := range m.entries {
		if !strings.Contains(jd.Normalized, e.normalized) {
			continue
		}
		present++
		if strings.Contains(resume.Normalized, e.normalized) {
			res.Matched = append(res.Matched, e.name)
		} else {
			res.Missing = append(res.Missing, e.name)
		}
	}
	res.Score = coverage(len(res.Matched), present)
	return res
}

// MatchSkills is Match over raw texts with a one-off matcher
func MatchSkills(jdText, resumeText string, skills *vocabulary.Skills) Result {
	return NewSkillMatcher(skills).Match(parsing.NewDocument(jdText), parsing.NewDocument(resumeText))
}
