package ingestion

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxFileBytes is the largest file IngestFromFile will read
const MaxFileBytes int64 = 5 << 20

var (
	spaceRun      = regexp.MustCompile(`\s+`)
	blankLineRuns = regexp.MustCompile(`\n\n\n+`)
)

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// 1. Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// 2. Split into lines for processing
	lines := strings.Split(content, "\n")

	// 3. Process each line
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned := cleanLine(line)
		cleanedLines = append(cleanedLines, cleaned)
	}

	// 4. Join lines
	result := strings.Join(cleanedLines, "\n")

	// 5. Remove excessive blank lines (max 2 consecutive)
	result = removeExcessiveBlankLines(result)

	// 6. Trim leading/trailing whitespace from entire content
	result = strings.TrimSpace(result)

	return result
}

// cleanLine cleans a single line while preserving structure
func cleanLine(line string) string {
	// Trim trailing whitespace
	line = strings.TrimRight(line, " \t")

	// Handle empty lines
	if strings.TrimSpace(line) == "" {
		return ""
	}

	// Preserve headings (Markdown # or ## etc.)
	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") {
		// Keep markdown headings as-is, normalize leading spaces to 0
		return trimmed
	}

	// Preserve bullet lists (Markdown - or *)
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		// Preserve indentation before bullet, but normalize
		indent := len(line) - len(trimmed)
		if indent > 0 {
			return strings.Repeat(" ", indent) + trimmed
		}
		return trimmed
	}

	// For regular lines, normalize multiple spaces to single space
	// but preserve intentional indentation at start of line
	leadingSpace := len(line) - len(trimmed)
	content := strings.TrimSpace(line)
	// Normalize spaces in content (multiple spaces → single)
	content = spaceRun.ReplaceAllString(content, " ")
	if leadingSpace > 0 {
		return strings.Repeat(" ", leadingSpace) + content
	}
	return content
}

// removeExcessiveBlankLines reduces consecutive blank lines to max 2
func removeExcessiveBlankLines(content string) string {
	return blankLineRuns.ReplaceAllString(content, "\n\n")
}

// FoldAccents strips combining marks so "Résumé" becomes "Resume".
// Characters without a decomposition are left alone.
func FoldAccents(content string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, content)
	if err != nil {
		return content
	}
	return folded
}

// Ingest converts raw content of the given format into cleaned, accent-folded text
func Ingest(r io.Reader, format Format) (string, error) {
	var text string
	switch format {
	case FormatHTML:
		converted, err := HTMLToText(r)
		if err != nil {
			return "", err
		}
		text = converted
	case FormatText, FormatMarkdown:
		raw, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("failed to read content: %w", err)
		}
		text = CleanText(string(bytes.ToValidUTF8(raw, []byte(" "))))
	default:
		return "", &UnsupportedFormatError{Extension: string(format)}
	}
	return FoldAccents(text), nil
}

// IngestFromFile reads a .txt, .md or .html file and returns cleaned text with metadata
func IngestFromFile(path string) (string, *Metadata, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return "", nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}
	if info.Size() > MaxFileBytes {
		return "", nil, &FileTooLargeError{Path: path, Size: info.Size(), Limit: MaxFileBytes}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	text, err := Ingest(bytes.NewReader(content), format)
	if err != nil {
		return "", nil, fmt.Errorf("failed to ingest %s: %w", path, err)
	}

	return text, NewMetadata(text, path, format, len(content)), nil
}
