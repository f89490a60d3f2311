// Package vocabulary loads the curated skill list and the concept synonym map.
// Both are versioned JSON assets: defaults are embedded at compile time and
// can be replaced by files on disk. Loaded assets are read-only.
package vocabulary

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hash"
	"os"
	"sync"

	"github.com/Aanishnithin07/FitForge/internal/logger"
	"github.com/Aanishnithin07/FitForge/internal/schemas"
	assets "github.com/Aanishnithin07/FitForge/schemas"
)

//go:embed data/*.json
var dataFiles embed.FS

const (
	defaultSkillsFile   = "data/skills.json"
	defaultSynonymsFile = "data/synonyms.json"

	// EmptyVersion marks a vocabulary that failed to load and was replaced by an empty one
	EmptyVersion = "empty"
)

// Skills is an ordered, versioned skill vocabulary.
// Order controls the order of matched and missing skills.
type Skills struct {
	Version string   `json:"version"`
	Skills  []string `json:"skills"`
}

// Concept is one contextual concept and the phrases that signal it
type Concept struct {
	Key      string   `json:"key"`
	Synonyms []string `json:"synonyms"`
}

// Synonyms is a versioned concept synonym map
type Synonyms struct {
	Version  string    `json:"version"`
	Concepts []Concept `json:"concepts"`
}

// Vocabulary bundles the two assets an analyzer is built from
type Vocabulary struct {
	Skills   *Skills
	Synonyms *Synonyms
}

// digestLength is the number of hex characters of the content digest kept in Version
const digestLength = 12

// Version identifies the exact vocabulary content, used in cache keys. It
// combines the declared asset versions with a digest of the skills and
// concepts, so editing a file without bumping its version still changes it.
// A nil asset counts as empty.
func (v *Vocabulary) Version() string {
	skills, synonyms := v.Skills, v.Synonyms
	if skills == nil {
		skills = EmptySkills()
	}
	if synonyms == nil {
		synonyms = EmptySynonyms()
	}

	h := sha256.New()
	for _, s := range skills.Skills {
		writePart(h, s)
	}
	// separates the two assets
	writePart(h, "")
	for _, c := range synonyms.Concepts {
		writePart(h, c.Key)
		fmt.Fprintf(h, "%d;", len(c.Synonyms))
		for _, syn := range c.Synonyms {
			writePart(h, syn)
		}
	}
	digest := hex.EncodeToString(h.Sum(nil))[:digestLength]
	return fmt.Sprintf("skills@%s+synonyms@%s#%s", skills.Version, synonyms.Version, digest)
}

// writePart writes a length-prefixed string so adjacent parts cannot run together
func writePart(h hash.Hash, s string) {
	fmt.Fprintf(h, "%d:%s", len(s), s)
}

// EmptySkills returns a vocabulary with no skills
func EmptySkills() *Skills {
	return &Skills{Version: EmptyVersion, Skills: []string{}}
}

// EmptySynonyms returns a synonym map with no concepts
func EmptySynonyms() *Synonyms {
	return &Synonyms{Version: EmptyVersion, Concepts: []Concept{}}
}

// ParseSkills validates data against the skills schema and decodes it.
// source names the origin of data in errors.
func ParseSkills(data []byte, source string) (*Skills, error) {
	if err := schemas.ValidateBytes(assets.Skills, data); err != nil {
		return nil, &LoadError{Path: source, Message: "skills file does not match schema", Cause: err}
	}

	var s Skills
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, &LoadError{Path: source, Message: "failed to decode skills", Cause: err}
	}
	if len(s.Skills) == 0 {
		return nil, &LoadError{Path: source, Message: "skill vocabulary is empty"}
	}
	return &s, nil
}

// ParseSynonyms validates data against the synonyms schema and decodes it
func ParseSynonyms(data []byte, source string) (*Synonyms, error) {
	if err := schemas.ValidateBytes(assets.Synonyms, data); err != nil {
		return nil, &LoadError{Path: source, Message: "synonyms file does not match schema", Cause: err}
	}

	var s Synonyms
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, &LoadError{Path: source, Message: "failed to decode synonyms", Cause: err}
	}
	if len(s.Concepts) == 0 {
		return nil, &LoadError{Path: source, Message: "synonym map is empty"}
	}
	return &s, nil
}

// LoadSkills reads a skills file from disk
func LoadSkills(path string) (*Skills, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read skills file", Cause: err}
	}
	return ParseSkills(data, path)
}

// LoadSynonyms reads a synonyms file from disk
func LoadSynonyms(path string) (*Synonyms, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read synonyms file", Cause: err}
	}
	return ParseSynonyms(data, path)
}

var (
	defaultOnce     sync.Once
	defaultSkills   *Skills
	defaultSynonyms *Synonyms
)

func loadDefaults() {
	defaultOnce.Do(func() {
		defaultSkills = mustParse(defaultSkillsFile, ParseSkills)
		defaultSynonyms = mustParse(defaultSynonymsFile, ParseSynonyms)
	})
}

func mustParse[T any](name string, parse func([]byte, string) (T, error)) T {
	data, err := dataFiles.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("embedded vocabulary %s missing: %v", name, err))
	}
	v, err := parse(data, "embedded:"+name)
	if err != nil {
		panic(fmt.Sprintf("embedded vocabulary %s invalid: %v", name, err))
	}
	return v
}

// DefaultSkills returns the embedded skill vocabulary. Callers must not modify it.
func DefaultSkills() *Skills {
	loadDefaults()
	return defaultSkills
}

// DefaultSynonyms returns the embedded synonym map. Callers must not modify it.
func DefaultSynonyms() *Synonyms {
	loadDefaults()
	return defaultSynonyms
}

// Default returns the embedded vocabulary
func Default() *Vocabulary {
	return &Vocabulary{Skills: DefaultSkills(), Synonyms: DefaultSynonyms()}
}

// Resolve builds a Vocabulary from optional file paths. An empty path selects
// the embedded default. A path that cannot be loaded degrades that asset to
// an empty one and logs a warning: matching keeps working with empty results.
func Resolve(skillsPath, synonymsPath string, log logger.Logger) *Vocabulary {
	v := Default()

	if skillsPath != "" {
		skills, err := LoadSkills(skillsPath)
		if err != nil {
			log.WithError(err).Warn("skill vocabulary unavailable, skill matching disabled", logger.Fields{"path": skillsPath})
			skills = EmptySkills()
		}
		v.Skills = skills
	}

	if synonymsPath != "" {
		synonyms, err := LoadSynonyms(synonymsPath)
		if err != nil {
			log.WithError(err).Warn("synonym map unavailable, contextual matching disabled", logger.Fields{"path": synonymsPath})
			synonyms = EmptySynonyms()
		}
		v.Synonyms = synonyms
	}

	log.Debug("vocabulary resolved", logger.Fields{
		"version":  v.Version(),
		"skills":   len(v.Skills.Skills),
		"concepts": len(v.Synonyms.Concepts),
	})
	return v
}
