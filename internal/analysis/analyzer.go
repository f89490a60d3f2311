// Package analysis scores a resume against a job description. Analyzer runs
// every matcher, extractor and the ATS scorer and assembles one result.
// Analysis is a pure function of its two input strings and the vocabulary the
// Analyzer was built with.
package analysis

import (
	"fmt"

	"github.com/Aanishnithin07/FitForge/internal/ats"
	"github.com/Aanishnithin07/FitForge/internal/extraction"
	"github.com/Aanishnithin07/FitForge/internal/matching"
	"github.com/Aanishnithin07/FitForge/internal/parsing"
	"github.com/Aanishnithin07/FitForge/internal/types"
	"github.com/Aanishnithin07/FitForge/internal/vocabulary"
)

// suggestionCount is how many missing keywords are suggested
const suggestionCount = 5

// Engine analyzes one JD/resume pair. Analyzer implements it; decorators such
// as the stats collector wrap it.
type Engine interface {
	Analyze(input types.AnalysisInput) *types.AnalysisResult
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithKeywordLimit sets how many top JD tokens are compared. Values below 1 are ignored.
func WithKeywordLimit(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.keywordLimit = n
		}
	}
}

// Analyzer holds the immutable matchers built from one vocabulary.
// It is safe for concurrent use.
type Analyzer struct {
	skills       *matching.SkillMatcher
	context      *matching.ContextMatcher
	keywordLimit int
	version      string
}

// New builds an Analyzer. A nil vocabulary means the embedded default; a
// nil asset inside it means an empty one.
func New(v *vocabulary.Vocabulary, opts ...Option) *Analyzer {
	if v == nil {
		v = vocabulary.Default()
	}
	v = &vocabulary.Vocabulary{Skills: v.Skills, Synonyms: v.Synonyms}
	if v.Skills == nil {
		v.Skills = vocabulary.EmptySkills()
	}
	if v.Synonyms == nil {
		v.Synonyms = vocabulary.EmptySynonyms()
	}
	a := &Analyzer{
		skills:       matching.NewSkillMatcher(v.Skills),
		context:      matching.NewContextMatcher(v.Synonyms),
		keywordLimit: matching.DefaultKeywordLimit,
		version:      v.Version(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// VocabularyVersion identifies the vocabulary the Analyzer was built from
func (a *Analyzer) VocabularyVersion() string {
	return a.version
}

// KeywordLimit returns the number of JD keywords compared
func (a *Analyzer) KeywordLimit() int {
	return a.keywordLimit
}

// Fingerprint identifies everything that shapes a result besides the input:
// the vocabulary content and the keyword limit. Cache keys are built from it.
func (a *Analyzer) Fingerprint() string {
	return fmt.Sprintf("%s/keywords=%d", a.version, a.keywordLimit)
}

// Analyze scores the resume against the JD. If either text is empty the
// result has score 0 and label "No data".
func (a *Analyzer) Analyze(input types.AnalysisInput) *types.AnalysisResult {
	if input.JDText == "" || input.ResumeText == "" {
		return NoData()
	}

	jd := parsing.NewDocument(input.JDText)
	resume := parsing.NewDocument(input.ResumeText)

	skills := a.skills.Match(jd, resume)
	keywords := matching.MatchKeywords(matching.ExtractKeywords(jd, a.keywordLimit), resume)
	context := a.context.Match(jd, resume)

	sub := types.SubScores{
		SkillScore:   skills.Score,
		KeywordScore: keywords.Score,
		ContextScore: context.Score,
		LengthScore:  LengthScore(resume.TokenCount()),
	}
	score := Composite(sub)

	suggested := keywords.Missing
	if len(suggested) > suggestionCount {
		suggested = suggested[:suggestionCount]
	}

	return &types.AnalysisResult{
		Score:           score,
		Label:           Label(score),
		MatchedSkills:   skills.Matched,
		MissingSkills:   skills.Missing,
		MatchedKeywords: keywords.Matched,
		MissingKeywords: keywords.Missing,
		SuggestedTop5:   append([]string{}, suggested...),
		ATSScore:        ats.Score(jd, resume).Total,
		Experience:      extraction.Experience(input.JDText, input.ResumeText),
		Education:       extraction.Education(input.JDText, input.ResumeText),
		Certifications:  extraction.ExtractCertifications(input.ResumeText),
		Details:         roundDetails(sub, resume.TokenCount()),
	}
}

// NoData is the result for a missing JD or resume
func NoData() *types.AnalysisResult {
	return &types.AnalysisResult{
		Score:           0,
		Label:           LabelNoData,
		MatchedSkills:   []string{},
		MissingSkills:   []string{},
		MatchedKeywords: []string{},
		MissingKeywords: []string{},
		SuggestedTop5:   []string{},
		Certifications:  []string{},
	}
}

// Analyze scores input with an Analyzer built from the embedded vocabulary
func Analyze(input types.AnalysisInput) *types.AnalysisResult {
	return New(nil).Analyze(input)
}
