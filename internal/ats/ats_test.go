package ats

import (
	"strings"
	"testing"

	"github.com/Aanishnithin07/FitForge/internal/parsing"
	"github.com/stretchr/testify/assert"
)

func fullResume() string {
	return `JANE DOE
jane@example.com | +1 (555) 123-4567 | linkedin.com/in/jane | github.com/jane

EXPERIENCE
• Kubernetes operator maintainer, 2019 - Present
• Increased deployment frequency by 40%
• Reduced incident count
• Improved p99 latency
• Achieved SOC2 compliance

EDUCATION
BSc Computer Science

SKILLS
Go, Kubernetes

PROJECTS
` + strings.Repeat("deploy services ", 80)
}

func TestScore_FullMarks(t *testing.T) {
	b := Score(parsing.NewDocument("Kubernetes operator"), parsing.NewDocument(fullResume()))

	assert.Equal(t, 10.0, b.Contact)
	assert.Equal(t, 15.0, b.Sections)
	assert.Equal(t, 30.0, b.Density)
	assert.Equal(t, 20.0, b.Readability)
	assert.Equal(t, 10.0, b.Formatting)
	assert.Equal(t, 15.0, b.Achievements)
	assert.Equal(t, 100, b.Total)
}

func TestScore_MinimalResume(t *testing.T) {
	b := Score(parsing.NewDocument("x"), parsing.NewDocument("hello"))

	assert.Equal(t, 0.0, b.Contact)
	assert.Equal(t, 0.0, b.Sections)
	assert.Equal(t, 0.0, b.Density)
	assert.Equal(t, 10.0, b.Readability)
	assert.Equal(t, 0.0, b.Formatting)
	assert.Equal(t, 0.0, b.Achievements)
	assert.Equal(t, 10, b.Total)
}

func TestContactScore(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected float64
	}{
		{"Email only", "reach me at a.b@mail.io", 2.5},
		{"Phone only", "555.123.4567", 2.5},
		{"LinkedIn case-insensitive", "LinkedIn.com/in/me", 2.5},
		{"Email and GitHub", "me@x.dev github.com/me", 5},
		{"Nothing", "no contact details", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, contactScore(tt.text))
		})
	}
}

func TestSectionScore(t *testing.T) {
	assert.Equal(t, 7.5, sectionScore(parsing.Normalize("Work Experience ... Technical Skills")))
	assert.Equal(t, 0.0, sectionScore(""))
}

func TestDensityScore(t *testing.T) {
	// grams: kafka, kafka streaming, streaming
	assert.InDelta(t, 10.0, densityScore("Kafka streaming", parsing.Normalize("Kafka")), 0.0001)
	assert.Equal(t, 0.0, densityScore("", "anything"))
}

func TestFormattingScore(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected float64
	}{
		{"All caps heading", "intro\nWORK HISTORY\nmore", 2.5},
		{"Date range with en dash", "Acme 2018–2021", 2.5},
		{"Dash bullet", "- shipped it", 2.5},
		{"Many lines", strings.Repeat("line\n", 11), 2.5},
		{"Plain", "just one line of text", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formattingScore(tt.text))
		})
	}
}

func TestAchievementScore(t *testing.T) {
	assert.Equal(t, 6.0, achievementScore("Cut costs 30% and improved uptime"))
	assert.Equal(t, 3.0, achievementScore("Mentored 10+ engineers"))
	assert.Equal(t, 15.0, achievementScore(strings.Repeat("increased ", 10)))
	assert.Equal(t, 0.0, achievementScore("increasedly vague"))
}

func TestCalculateATSScore_Bounds(t *testing.T) {
	inputs := [][2]string{
		{"", ""},
		{"Go developer", "Go developer"},
		{"Kubernetes operator", fullResume()},
		{fullResume(), fullResume() + fullResume()},
		{strings.Repeat("word ", 3000), strings.Repeat("word\n", 3000)},
	}

	for _, in := range inputs {
		score := CalculateATSScore(in[0], in[1])
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}
