package matching

import (
	"testing"

	"github.com/Aanishnithin07/FitForge/internal/parsing"
	"github.com/Aanishnithin07/FitForge/internal/vocabulary"
	"github.com/stretchr/testify/assert"
)

func TestContextMatcher_DefaultSynonyms(t *testing.T) {
	m := NewContextMatcher(vocabulary.DefaultSynonyms())
	jd := parsing.NewDocument("JavaScript and PostgreSQL experience; Docker")
	resume := parsing.NewDocument("Wrote JS against MySQL, containerization with Docker")

	res := m.Match(jd, resume)
	assert.Equal(t, []string{"javascript", "database", "docker"}, res.Concepts)
	assert.Equal(t, 3, res.Count)
	assert.Equal(t, 30.0, res.Score)
}

func TestContextMatcher_RequiresBothTexts(t *testing.T) {
	m := NewContextMatcher(&vocabulary.Synonyms{Concepts: []vocabulary.Concept{
		{Key: "kubernetes", Synonyms: []string{"k8s"}},
	}})

	assert.Equal(t, 1, m.Match(parsing.NewDocument("K8s clusters"), parsing.NewDocument("Kubernetes")).Count)
	assert.Equal(t, 0, m.Match(parsing.NewDocument("K8s clusters"), parsing.NewDocument("VMs")).Count)
}

func TestContextMatcher_EmptySynonyms(t *testing.T) {
	m := NewContextMatcher(nil)
	res := m.Match(parsing.NewDocument("react"), parsing.NewDocument("react"))
	assert.Equal(t, 0, res.Count)
	assert.NotNil(t, res.Concepts)
}

func TestContextScore(t *testing.T) {
	tests := []struct {
		count    int
		expected float64
	}{
		{0, 0},
		{1, 10},
		{5, 50},
		{10, 100},
		{15, 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ContextScore(tt.count), "count=%d", tt.count)
	}
}

func TestContextualMatch(t *testing.T) {
	n := ContextualMatch("full stack role: frontend and backend", "Full-stack dev, front-end and back-end", vocabulary.DefaultSynonyms())
	assert.Equal(t, 3, n)
}
