package ingestion

import "fmt"

// UnsupportedFormatError is returned for files that need a document decoder
// (PDF, DOCX and similar) before they can be analyzed
type UnsupportedFormatError struct {
	Path      string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q for %s: convert it to .txt, .md or .html first", e.Extension, e.Path)
}

// FileTooLargeError is returned when a file exceeds MaxFileBytes
type FileTooLargeError struct {
	Path  string
	Size  int64
	Limit int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file %s is %d bytes, limit is %d", e.Path, e.Size, e.Limit)
}
