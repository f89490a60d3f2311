package matching

import (
	"github.com/Aanishnithin07/FitForge/internal/parsing"
)

// DefaultKeywordLimit is how many top JD tokens are compared
const DefaultKeywordLimit = 30

// ExtractKeywords returns the topN most frequent stemmed JD tokens
func ExtractKeywords(jd *parsing.Document, topN int) []string {
	return parsing.TopTokens(jd.Tokens, topN)
}

// MatchKeywords splits keywords by exact membership in the resume's stemmed
// token set, keeping keyword order.
func MatchKeywords(keywords []string, resume *parsing.Document) Result {
	res := newResult()
	for _, k := range keywords {
		if resume.HasToken(k) {
			res.Matched = append(res.Matched, k)
		} else {
			res.Missing = append(res.Missing, k)
		}
	}
	res.Score = coverage(len(res.Matched), len(keywords))
	return res
}
