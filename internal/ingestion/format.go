package ingestion

import (
	"path/filepath"
	"strings"
)

// Format is a readable input file type
type Format string

const (
	FormatText     Format = "txt"
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
)

var extensionFormats = map[string]Format{
	"":          FormatText,
	".txt":      FormatText,
	".text":     FormatText,
	".md":       FormatMarkdown,
	".markdown": FormatMarkdown,
	".html":     FormatHTML,
	".htm":      FormatHTML,
}

// DetectFormat maps a file extension to a Format. Files without an extension
// are read as plain text.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensionFormats[ext]; ok {
		return f, nil
	}
	return "", &UnsupportedFormatError{Path: path, Extension: ext}
}
