// Package schemas embeds the JSON Schemas for FitForge's data assets and outputs.
package schemas

import "embed"

// Files holds every *.schema.json in this directory
//
//go:embed *.schema.json
var Files embed.FS

// Schema file names
const (
	Skills         = "skills.schema.json"
	Synonyms       = "synonyms.schema.json"
	AnalysisResult = "analysis_result.schema.json"
	Leaderboard    = "leaderboard.schema.json"
)
