// Package parsing turns raw job description and resume text into the
// normalized strings, stemmed tokens and n-grams the matchers work on.
package parsing

import (
	"strings"
)

// Normalize lowercases text, replaces every character outside
// [a-z0-9 +#/-] with a space, collapses whitespace runs and trims.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))

	pendingSpace := false
	for _, r := range strings.ToLower(text) {
		if !isKept(r) {
			pendingSpace = true
			continue
		}
		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

func isKept(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '+', r == '#', r == '/', r == '-':
		return true
	default:
		return false
	}
}

// Stem strips common English suffixes. The rules run in a fixed order and
// each one is tested against the token as left by the previous rule:
// "ing" (len > 4), "ed" (len > 3), "es" (len > 3), "s" (len > 2).
//
// It is deliberately crude so that every reduction can be explained to a
// recruiter reading the matched keyword list.
func Stem(token string) string {
	t := token
	if len(t) > 4 && strings.HasSuffix(t, "ing") {
		t = t[:len(t)-3]
	}
	if len(t) > 3 && strings.HasSuffix(t, "ed") {
		t = t[:len(t)-2]
	}
	if len(t) > 3 && strings.HasSuffix(t, "es") {
		t = t[:len(t)-2]
	}
	if len(t) > 2 && strings.HasSuffix(t, "s") {
		t = t[:len(t)-1]
	}
	return t
}
