package parsing

import (
	"strings"
)

// DefaultMaxNGram is the longest phrase ExtractNGrams builds unless told otherwise.
const DefaultMaxNGram = 3

// minGramLength is the shortest gram (in bytes) kept by ExtractNGrams.
const minGramLength = 3

// Tokenize normalizes text, splits it on whitespace, drops single-character
// tokens and stopwords, and stems what is left. Token order follows the text.
func Tokenize(text string) []string {
	words := strings.Fields(Normalize(text))
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) <= 1 || IsStopword(w) {
			continue
		}
		tokens = append(tokens, Stem(w))
	}
	return tokens
}

// ExtractNGrams returns the distinct contiguous word n-grams of length
// 1..maxN from the normalized text, in first-seen order. Words are not
// stemmed. Single-word stopwords are skipped, but stopwords inside longer
// grams are kept. Grams of two characters or fewer are discarded.
// A maxN below 1 falls back to DefaultMaxNGram.
func ExtractNGrams(text string, maxN int) []string {
	if maxN < 1 {
		maxN = DefaultMaxNGram
	}

	words := strings.Fields(Normalize(text))
	seen := make(map[string]struct{})
	grams := make([]string, 0, len(words)*maxN)

	for i := range words {
		for n := 1; n <= maxN && i+n <= len(words); n++ {
			if n == 1 && IsStopword(words[i]) {
				continue
			}
			gram := strings.Join(words[i:i+n], " ")
			if len(gram) < minGramLength {
				continue
			}
			if _, dup := seen[gram]; dup {
				continue
			}
			seen[gram] = struct{}{}
			grams = append(grams, gram)
		}
	}
	return grams
}
