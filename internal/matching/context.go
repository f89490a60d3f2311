package matching

import (
	"math"
	"strings"

	"github.com/Aanishnithin07/FitForge/internal/parsing"
	"github.com/Aanishnithin07/FitForge/internal/vocabulary"
)

// contextSaturation is the number of shared concepts that earns a full context score
const contextSaturation = 10

type concept struct {
	key     string
	phrases []string
}

// ContextMatcher counts concepts mentioned in both texts, where a concept is
// mentioned if its key or any synonym phrase is a substring of the normalized text.
type ContextMatcher struct {
	concepts []concept
}

// ContextResult lists the shared concept keys
type ContextResult struct {
	Concepts []string `json:"concepts"`
	Count    int      `json:"count"`
	Score    float64  `json:"score"`
}

// NewContextMatcher normalizes every key and synonym up front.
// A nil synonym map yields a matcher that never matches.
func NewContextMatcher(synonyms *vocabulary.Synonyms) *ContextMatcher {
	m := &ContextMatcher{}
	if synonyms == nil {
		return m
	}
	for _, c := range synonyms.Concepts {
		phrases := make([]string, 0, len(c.Synonyms)+1)
		for _, p := range append([]string{c.Key}, c.Synonyms...) {
			if n := parsing.Normalize(p); n != "" {
				phrases = append(phrases, n)
			}
		}
		if len(phrases) == 0 {
			continue
		}
		m.concepts = append(m.concepts, concept{key: c.Key, phrases: phrases})
	}
	return m
}

// Match returns the concepts present in both documents and the context score
func (m *ContextMatcher) Match(jd, resume *parsing.Document) ContextResult {
	res := ContextResult{Concepts: []string{}}
	for _, c := range m.concepts {
		if c.mentionedIn(jd.Normalized) && c.mentionedIn(resume.Normalized) {
			res.Concepts = append(res.Concepts, c.key)
		}
	}
	res.Count = len(res.Concepts)
	res.Score = ContextScore(res.Count)
	return res
}

func (c concept) mentionedIn(normalized string) bool {
	for _, p := range c.phrases {
		if strings.Contains(normalized, p) {
			return true
		}
	}
	return false
}

// ContextScore maps a shared-concept count to 0-100, saturating at ten concepts
func ContextScore(count int) float64 {
	return math.Min(float64(count)/contextSaturation*100, 100)
}

// ContextualMatch counts shared concepts between two raw texts
func ContextualMatch(jdText, resumeText string, synonyms *vocabulary.Synonyms) int {
	return NewContextMatcher(synonyms).Match(parsing.NewDocument(jdText), parsing.NewDocument(resumeText)).Count
}
