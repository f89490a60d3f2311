// Package ats estimates how well a resume would survive an applicant tracking
// system. The score is a sum of six independently capped heuristics.
package ats

import (
	"math"
	"regexp"
	"strings"

	"github.com/Aanishnithin07/FitForge/internal/parsing"
)

// Component caps and per-signal points. The caps sum to 100.
const (
	contactPoints     = 2.5
	sectionPoints     = 3.75
	densityMax        = 30.0
	readabilityIdeal  = 20.0
	readabilityOther  = 10.0
	formattingPoints  = 2.5
	achievementPoints = 3.0
	achievementMax    = 15.0

	// a resume with more lines than this is considered structured
	minStructuredLines = 10
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`(?:\+?\d{1,3}[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)

	allCapsLinePattern = regexp.MustCompile(`(?m)^[ \t]*[A-Z][A-Z &/\-]{2,}[ \t\r]*$`)
	dateRangePattern   = regexp.MustCompile(`(?i)\b\d{4}\s*[-–—]\s*(?:\d{4}|present)\b`)
	bulletPattern      = regexp.MustCompile(`(?m)[•●▪◦‣∙]|^[ \t]*[-*][ \t]+`)

	achievementPattern = regexp.MustCompile(`(?i)\d+%|\d+\+|\b(?:increased|improved|reduced|achieved)\b`)
)

var sectionKeywords = []string{"experience", "education", "skills", "projects"}

// Breakdown is the per-component ATS score
type Breakdown struct {
	Contact      float64 `json:"contact"`
	Sections     float64 `json:"sections"`
	Density      float64 `json:"density"`
	Readability  float64 `json:"readability"`
	Formatting   float64 `json:"formatting"`
	Achievements float64 `json:"achievements"`
	Total        int     `json:"total"`
}

// Score computes the ATS breakdown for a resume against a job description
func Score(jd, resume *parsing.Document) Breakdown {
	b := Breakdown{
		Contact:      contactScore(resume.Raw),
		Sections:     sectionScore(resume.Normalized),
		Density:      densityScore(jd.Raw, resume.Normalized),
		Readability:  readabilityScore(resume),
		Formatting:   formattingScore(resume.Raw),
		Achievements: achievementScore(resume.Raw),
	}
	b.Total = int(math.Round(b.Contact + b.Sections + b.Density + b.Readability + b.Formatting + b.Achievements))
	return b
}

// CalculateATSScore returns the rounded ATS score for two raw texts
func CalculateATSScore(jdText, resumeText string) int {
	return Score(parsing.NewDocument(jdText), parsing.NewDocument(resumeText)).Total
}

func contactScore(raw string) float64 {
	lower := strings.ToLower(raw)
	signals := []bool{
		emailPattern.MatchString(raw),
		phonePattern.MatchString(raw),
		strings.Contains(lower, "linkedin.com"),
		strings.Contains(lower, "github.com"),
	}
	return countTrue(signals) * contactPoints
}

func sectionScore(normalized string) float64 {
	score := 0.0
	for _, kw := range sectionKeywords {
		if strings.Contains(normalized, kw) {
			score += sectionPoints
		}
	}
	return score
}

// densityScore is the share of JD 1- and 2-grams found in the resume
func densityScore(jdRaw, resumeNormalized string) float64 {
	grams := parsing.ExtractNGrams(jdRaw, 2)
	if len(grams) == 0 {
		return 0
	}
	matched := 0
	for _, g := range grams {
		if strings.Contains(resumeNormalized, g) {
			matched++
		}
	}
	return float64(matched) / float64(len(grams)) * densityMax
}

func readabilityScore(resume *parsing.Document) float64 {
	if resume.InIdealRange() {
		return readabilityIdeal
	}
	return readabilityOther
}

func formattingScore(raw string) float64 {
	signals := []bool{
		allCapsLinePattern.MatchString(raw),
		dateRangePattern.MatchString(raw),
		bulletPattern.MatchString(raw),
		strings.Count(raw, "\n")+1 > minStructuredLines,
	}
	return countTrue(signals) * formattingPoints
}

func achievementScore(raw string) float64 {
	n := len(achievementPattern.FindAllStringIndex(raw, -1))
	return math.Min(float64(n)*achievementPoints, achievementMax)
}

func countTrue(signals []bool) float64 {
	n := 0.0
	for _, s := range signals {
		if s {
			n++
		}
	}
	return n
}
