package analysis

import (
	"testing"

	"github.com/Aanishnithin07/FitForge/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestLabel_Boundaries(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{100, LabelExcellent},
		{80, LabelExcellent},
		{79, LabelGood},
		{60, LabelGood},
		{59, LabelFair},
		{40, LabelFair},
		{39, LabelReview},
		{0, LabelReview},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Label(tt.score), "score=%d", tt.score)
	}
}

func TestLengthScore(t *testing.T) {
	tests := []struct {
		name     string
		tokens   int
		expected float64
	}{
		{"Empty", 0, 0},
		{"Short", 50, 50.0 / 150 * 100},
		{"Lower bound", 150, 100},
		{"Middle", 700, 100},
		{"Upper bound", 1500, 100},
		{"Long", 2000, 90},
		{"Very long", 6500, 0},
		{"Beyond zero", 9000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, LengthScore(tt.tokens), 0.0001)
		})
	}
}

func TestComposite(t *testing.T) {
	tests := []struct {
		name     string
		sub      types.SubScores
		expected int
	}{
		{"All zero", types.SubScores{}, 0},
		{"All full", types.SubScores{SkillScore: 100, KeywordScore: 100, ContextScore: 100, LengthScore: 100}, 100},
		{"Skill only", types.SubScores{SkillScore: 100}, 50},
		{"Weighted mix", types.SubScores{SkillScore: 50, KeywordScore: 40, ContextScore: 30, LengthScore: 100}, 50},
		{"Rounds half up", types.SubScores{LengthScore: 5}, 1},
		{"Clamped", types.SubScores{SkillScore: 150, KeywordScore: 150, ContextScore: 150, LengthScore: 150}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Composite(tt.sub))
		})
	}
}

func TestRoundDetails(t *testing.T) {
	d := roundDetails(types.SubScores{SkillScore: 66.6667, KeywordScore: 33.3333, ContextScore: 100, LengthScore: 33.3333}, 50)
	assert.Equal(t, &types.Details{
		SkillScore:   67,
		KeywordScore: 33,
		ContextScore: 100,
		LengthScore:  33,
		ResumeLength: 50,
	}, d)
}
