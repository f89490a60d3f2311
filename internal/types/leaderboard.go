// Package types provides type definitions for structured data used throughout FitForge.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Candidate is one resume submitted to a leaderboard
type Candidate struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name" validate:"required"`
	ResumeText string `json:"resume_text"`
	// Source is where the resume text came from (file path, upload name), if any
	Source string `json:"source,omitempty"`
}

// LeaderboardEntry is one ranked candidate
type LeaderboardEntry struct {
	Rank        int             `json:"rank"`
	CandidateID string          `json:"candidate_id"`
	Name        string          `json:"name"`
	Score       int             `json:"score"`
	Label       string          `json:"label"`
	ATSScore    int             `json:"ats_score"`
	TopMissing  []string        `json:"top_missing"`
	Result      *AnalysisResult `json:"result"`
}

// Leaderboard is the ranked output for one job description
type Leaderboard struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// Comparison holds per-dimension differences between two entries (A minus B)
type Comparison struct {
	A               string   `json:"a"`
	B               string   `json:"b"`
	ScoreDelta      int      `json:"score_delta"`
	SkillDelta      int      `json:"skill_delta"`
	KeywordDelta    int      `json:"keyword_delta"`
	ContextDelta    int      `json:"context_delta"`
	ATSDelta        int      `json:"ats_delta"`
	ExperienceDelta *int     `json:"experience_delta"`
	OnlyAMatched    []string `json:"only_a_matched"`
	OnlyBMatched    []string `json:"only_b_matched"`
	Leader          string   `json:"leader"`
}
