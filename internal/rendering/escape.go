// Package rendering turns analysis output into display text: the annotated
// resume with matched terms marked, and HTML-safe escaping.
package rendering

import "strings"

// EscapeHTML escapes the characters that are significant in HTML text and
// attribute values: & < > " '
func EscapeHTML(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) + len(text)/8)

	for _, r := range text {
		writeEscapedRune(&result, r)
	}

	return result.String()
}

func writeEscapedRune(b *strings.Builder, r rune) {
	switch r {
	case '&':
		b.WriteString("&amp;")
	case '<':
		b.WriteString("&lt;")
	case '>':
		b.WriteString("&gt;")
	case '"':
		b.WriteString("&quot;")
	case '\'':
		b.WriteString("&#39;")
	default:
		b.WriteRune(r)
	}
}
