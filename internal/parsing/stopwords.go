package parsing

// stopwords is the fixed English stopword set removed before keyword analysis.
var stopwords = toSet([]string{
	"a", "an", "the", "and", "or", "but", "if", "then", "than", "that", "those", "these", "this",
	"to", "of", "in", "on", "for", "with", "as", "by", "at", "is", "are", "was", "were", "be",
	"being", "been", "from", "it", "its", "into", "your", "you", "we", "our", "us", "they",
	"them", "their", "i", "me", "my", "he", "she", "his", "her", "him", "will", "can", "could",
	"should", "would", "over", "under", "about", "after", "before", "so", "not", "no", "yes",
	"do", "does", "did", "done", "have", "has", "had",
})

// IsStopword reports whether the already-normalized word is a stopword.
func IsStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
