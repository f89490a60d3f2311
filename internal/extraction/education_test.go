package extraction

import (
	"testing"

	"github.com/Aanishnithin07/FitForge/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func levelPtr(l types.EducationLevel) *types.EducationLevel {
	return &l
}

func TestExtractEducation(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected *types.EducationLevel
	}{
		{"Bachelor's degree", "Bachelor's degree required", levelPtr(types.EducationBachelors)},
		{"Bachelor of Science", "Bachelor of Science in Computer Science", levelPtr(types.EducationBachelors)},
		{"BSc abbreviation", "BSc Physics", levelPtr(types.EducationBachelors)},
		{"Master's", "Master's in Data Science", levelPtr(types.EducationMasters)},
		{"MBA", "MBA, Wharton", levelPtr(types.EducationMasters)},
		{"Ph.D. with dots", "Ph.D. in Machine Learning", levelPtr(types.EducationPhD)},
		{"Doctorate", "Doctorate preferred", levelPtr(types.EducationPhD)},
		{"Associate degree", "Associate degree in networking", levelPtr(types.EducationAssociates)},
		{"High school", "High school diploma or equivalent", levelPtr(types.EducationDiploma)},
		{"Highest level wins", "Bachelor of Arts, later a PhD in Linguistics", levelPtr(types.EducationPhD)},
		{"Word boundary", "Managed bachelorette party logistics", nil},
		{"Nothing", "Ten years shipping software", nil},
		{"Empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractEducation(tt.text)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.expected, *got)
		})
	}
}

func TestRank(t *testing.T) {
	assert.Equal(t, 5, Rank(types.EducationPhD))
	assert.Equal(t, 4, Rank(types.EducationMasters))
	assert.Equal(t, 3, Rank(types.EducationBachelors))
	assert.Equal(t, 2, Rank(types.EducationAssociates))
	assert.Equal(t, 1, Rank(types.EducationDiploma))
	assert.Equal(t, 0, Rank("bootcamp"))
}

func TestClassifyEducation(t *testing.T) {
	tests := []struct {
		name          string
		required      *types.EducationLevel
		candidate     *types.EducationLevel
		expectedMatch types.EducationMatch
		expectedLabel string
	}{
		{"Neither", nil, nil, types.EducationNotSpecified, ""},
		{"Only required", levelPtr(types.EducationBachelors), nil, types.EducationNotSpecified, ""},
		{"Only candidate", nil, levelPtr(types.EducationMasters), types.EducationNotSpecified, "Masters"},
		{"Higher", levelPtr(types.EducationBachelors), levelPtr(types.EducationPhD), types.EducationMeets, ""},
		{"Same", levelPtr(types.EducationBachelors), levelPtr(types.EducationBachelors), types.EducationMeets, ""},
		{"Lower", levelPtr(types.EducationMasters), levelPtr(types.EducationBachelors), types.EducationBelow, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, label := ClassifyEducation(tt.required, tt.candidate)
			assert.Equal(t, tt.expectedMatch, match)
			assert.Equal(t, tt.expectedLabel, label)
		})
	}
}

func TestEducation(t *testing.T) {
	info := Education(
		"Bachelor's degree required.",
		"Bachelor of Science in Computer Science.",
	)
	require.NotNil(t, info.Candidate)
	assert.Equal(t, types.EducationBachelors, *info.Candidate)
	assert.Equal(t, types.EducationMeets, info.Match)
}
