package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
	"unicode/utf8"
)

// Metadata describes one ingested document
type Metadata struct {
	Source    string `json:"source,omitempty"` // File path or upload name
	Format    Format `json:"format"`
	Timestamp string `json:"timestamp"` // RFC3339, UTC
	Hash      string `json:"hash"`      // SHA256 hex digest of the cleaned text
	Bytes     int    `json:"bytes"`     // Size of the raw input
	Chars     int    `json:"chars"`     // Runes in the cleaned text
}

// NewMetadata describes cleaned content read from source
func NewMetadata(content string, source string, format Format, rawBytes int) *Metadata {
	return &Metadata{
		Source:    source,
		Format:    format,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
		Bytes:     rawBytes,
		Chars:     utf8.RuneCountInString(content),
	}
}

func computeHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
