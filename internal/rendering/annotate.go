package rendering

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Aanishnithin07/FitForge/internal/parsing"
	"github.com/Aanishnithin07/FitForge/internal/types"
)

// Marker wrapped around every highlighted occurrence
const (
	MarkOpen  = `<mark aria-label="matched">`
	MarkClose = `</mark>`
)

// Annotate returns text as HTML with every whole-word, case-insensitive
// occurrence of a highlight wrapped in a <mark> element. The matched text keeps
// its original casing. Longer highlights win over shorter ones starting at the
// same position. A word whose stem equals a single-word highlight is also
// marked, so stemmed keywords ("servic") light up "services".
// All text outside the markers is HTML-escaped, so with no highlights the
// result is the escaped text.
func Annotate(text string, highlights []string) string {
	terms := prepareTerms(highlights)
	if len(terms) == 0 {
		return EscapeHTML(text)
	}
	stems := singleWordTerms(terms)

	var b strings.Builder
	b.Grow(len(text) + len(text)/4)

	for i := 0; i < len(text); {
		if atWordStart(text, i) {
			if n := matchTerm(text, i, terms); n > 0 {
				writeMarked(&b, text[i:i+n])
				i += n
				continue
			}
			if n := wordLen(text, i); n > 0 && stems[parsing.Stem(parsing.Normalize(text[i:i+n]))] {
				writeMarked(&b, text[i:i+n])
				i += n
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		writeEscapedRune(&b, r)
		i += size
	}
	return b.String()
}

// AnnotateResult marks the result's matched skills and keywords in the resume
func AnnotateResult(resumeText string, result *types.AnalysisResult) string {
	return Annotate(resumeText, result.Highlights())
}

// prepareTerms trims, drops empty and case-insensitive duplicate terms, and
// orders the rest longest first, keeping input order among equal lengths.
func prepareTerms(highlights []string) []string {
	seen := make(map[string]bool, len(highlights))
	terms := make([]string, 0, len(highlights))
	for _, h := range highlights {
		h = strings.TrimSpace(h)
		key := strings.ToLower(h)
		if h == "" || seen[key] {
			continue
		}
		seen[key] = true
		terms = append(terms, h)
	}
	sort.SliceStable(terms, func(i, j int) bool {
		return len(terms[i]) > len(terms[j])
	})
	return terms
}

func singleWordTerms(terms []string) map[string]bool {
	out := make(map[string]bool)
	for _, t := range terms {
		n := parsing.Normalize(t)
		if n != "" && !strings.Contains(n, " ") {
			out[n] = true
		}
	}
	return out
}

func matchTerm(text string, i int, terms []string) int {
	for _, t := range terms {
		end := i + len(t)
		if end > len(text) || !strings.EqualFold(text[i:end], t) {
			continue
		}
		if end < len(text) {
			next, _ := utf8.DecodeRuneInString(text[end:])
			if isWordRune(next) {
				continue
			}
		}
		return len(t)
	}
	return 0
}

func wordLen(text string, i int) int {
	n := 0
	for n < len(text)-i {
		r, size := utf8.DecodeRuneInString(text[i+n:])
		if !isWordRune(r) {
			break
		}
		n += size
	}
	return n
}

func atWordStart(text string, i int) bool {
	if i == 0 {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(prev)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func writeMarked(b *strings.Builder, s string) {
	b.WriteString(MarkOpen)
	b.WriteString(EscapeHTML(s))
	b.WriteString(MarkClose)
}
