package schemas_test

import (
	"encoding/json"
	"testing"

	"github.com/Aanishnithin07/FitForge/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

var schemaFiles = []string{
	schemas.Skills,
	schemas.Synonyms,
	schemas.AnalysisResult,
	schemas.Leaderboard,
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := schemas.Files.ReadFile(schemaFile)
			require.NoError(t, err, "schema file should be embedded")

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj), "schema file should be valid JSON")

			assert.Equal(t, "http://json-schema.org/draft-07/schema#", schemaObj["$schema"])
			assert.Equal(t, "object", schemaObj["type"])
			_, hasProps := schemaObj["properties"]
			assert.True(t, hasProps, "schema should declare properties")
		})
	}
}

func TestAllSchemaFiles_Compile(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := schemas.Files.ReadFile(schemaFile)
			require.NoError(t, err)

			_, err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
			assert.NoError(t, err, "schema should compile")
		})
	}
}

func TestAnalysisResultSchema_EducationAllowsNull(t *testing.T) {
	data, err := schemas.Files.ReadFile(schemas.AnalysisResult)
	require.NoError(t, err)

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	require.NoError(t, err)

	doc := `{
		"score": 55, "label": "Fair Match",
		"matched_skills": [], "missing_skills": [], "matched_keywords": [], "missing_keywords": [],
		"suggested_top5": [], "ats_score": 40, "certifications": [],
		"education": {"required": null, "candidate": "masters", "match": "Not Specified", "label": "Masters"}
	}`
	result, err := schema.Validate(gojsonschema.NewStringLoader(doc))
	require.NoError(t, err)
	assert.True(t, result.Valid(), "%v", result.Errors())
}
