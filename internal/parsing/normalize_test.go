package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty string", "", ""},
		{"Whitespace only", "  \t\n ", ""},
		{"Lowercases", "Senior GoLang Engineer", "senior golang engineer"},
		{"Keeps plus and hash", "C++ and C#", "c++ and c#"},
		{"Keeps slash and dash", "CI/CD full-stack", "ci/cd full-stack"},
		{"Strips punctuation", "React, Node.js; (AWS)!", "react node js aws"},
		{"Collapses whitespace", "a   b\n\n c", "a b c"},
		{"Non-ASCII becomes space", "naïve café", "na ve caf"},
		{"Trims", "  hello  ", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"developing", "develop"},
		{"sing", "sing"},
		{"managed", "manag"},
		{"bed", "bed"},
		{"services", "servic"},
		{"series", "seri"},
		{"skills", "skill"},
		{"aws", "aw"},
		{"js", "js"},
		{"go", "go"},
		{"testings", "testing"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Stem(tt.input))
		})
	}
}

func TestStem_RulesApplyToCurrentToken(t *testing.T) {
	// "ing" strip leaves "bless", which then loses its trailing "s"
	assert.Equal(t, "bles", Stem("blessing"))
	// "es" strip leaves "hous", and the trailing "s" goes too
	assert.Equal(t, "hou", Stem("houses"))
}
