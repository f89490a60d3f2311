// Package types provides type definitions for structured data used throughout FitForge.
//
//nolint:revive // types is a standard Go package name pattern
package types

// AnalysisInput is one job description paired with one resume.
// Either text may be empty, which yields a "No data" result.
type AnalysisInput struct {
	JDText     string `json:"jd_text"`
	ResumeText string `json:"resume_text"`
}

// AnalysisResult is the full output of a single analysis
type AnalysisResult struct {
	Score           int             `json:"score"`
	Label           string          `json:"label"`
	MatchedSkills   []string        `json:"matched_skills"`
	MissingSkills   []string        `json:"missing_skills"`
	MatchedKeywords []string        `json:"matched_keywords"`
	MissingKeywords []string        `json:"missing_keywords"`
	SuggestedTop5   []string        `json:"suggested_top5"`
	ATSScore        int             `json:"ats_score"`
	Experience      *ExperienceInfo `json:"experience,omitempty"`
	Education       *EducationInfo  `json:"education,omitempty"`
	Certifications  []string        `json:"certifications"`
	Details         *Details        `json:"details,omitempty"`
}

// Highlights returns the terms an annotator should mark in the resume:
// matched skills followed by matched keywords.
func (r *AnalysisResult) Highlights() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.MatchedSkills)+len(r.MatchedKeywords))
	out = append(out, r.MatchedSkills...)
	out = append(out, r.MatchedKeywords...)
	return out
}

// MatchResult groups the skill and keyword set comparisons.
// Order is discovery order: vocabulary order for skills, frequency rank for keywords.
type MatchResult struct {
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
}

// SubScores are the unrounded 0-100 component scores feeding the composite score
type SubScores struct {
	SkillScore   float64 `json:"skill_score"`
	KeywordScore float64 `json:"keyword_score"`
	ContextScore float64 `json:"context_score"`
	LengthScore  float64 `json:"length_score"`
}

// Details is the rounded sub-score bundle attached to a result
type Details struct {
	SkillScore   int `json:"skill_score"`
	KeywordScore int `json:"keyword_score"`
	ContextScore int `json:"context_score"`
	LengthScore  int `json:"length_score"`
	ResumeLength int `json:"resume_length"`
}
