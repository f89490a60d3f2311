// Package types provides type definitions for structured data used throughout FitForge.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// ExperienceMatch classifies candidate years against required years
type ExperienceMatch string

const (
	ExperienceUnknown    ExperienceMatch = "Unknown"
	ExperienceMeets      ExperienceMatch = "Meets Requirements"
	ExperienceCloseMatch ExperienceMatch = "Close Match"
	ExperienceBelow      ExperienceMatch = "Below Requirements"
)

// ExperienceInfo holds required and candidate years of experience.
// A nil pointer means no figure was found in the text.
type ExperienceInfo struct {
	Required  *int            `json:"required"`
	Candidate *int            `json:"candidate"`
	Match     ExperienceMatch `json:"match"`
}

// EducationLevel is a degree level, ranked phd > masters > bachelors > associates > diploma
type EducationLevel string

const (
	EducationPhD        EducationLevel = "phd"
	EducationMasters    EducationLevel = "masters"
	EducationBachelors  EducationLevel = "bachelors"
	EducationAssociates EducationLevel = "associates"
	EducationDiploma    EducationLevel = "diploma"
)

// EducationLevels lists every level from highest to lowest rank
var EducationLevels = []EducationLevel{
	EducationPhD,
	EducationMasters,
	EducationBachelors,
	EducationAssociates,
	EducationDiploma,
}

// Title returns the level with its first letter capitalized ("Bachelors").
func (l EducationLevel) Title() string {
	if l == "" {
		return ""
	}
	s := string(l)
	return strings.ToUpper(s[:1]) + s[1:]
}

// EducationMatch classifies candidate degree level against the required level
type EducationMatch string

const (
	EducationNotSpecified EducationMatch = "Not Specified"
	EducationMeets        EducationMatch = "Meets Requirements"
	EducationBelow        EducationMatch = "Below Requirements"
)

// EducationInfo holds required and candidate education levels.
// Label is informational: when only the candidate level is known it carries
// that level capitalized while Match stays "Not Specified".
type EducationInfo struct {
	Required  *EducationLevel `json:"required"`
	Candidate *EducationLevel `json:"candidate"`
	Match     EducationMatch  `json:"match"`
	Label     string          `json:"label,omitempty"`
}
