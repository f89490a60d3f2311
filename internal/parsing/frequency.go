package parsing

import "sort"

// Frequency counts occurrences of each token.
func Frequency(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}

// TopTokens returns up to limit distinct tokens ordered by descending count.
// Tokens with equal counts keep the order in which they first appeared.
func TopTokens(tokens []string, limit int) []string {
	if limit <= 0 || len(tokens) == 0 {
		return []string{}
	}

	counts := Frequency(tokens)
	distinct := make([]string, 0, len(counts))
	seen := make(map[string]bool, len(counts))
	for _, t := range tokens {
		if seen[t] {
			continue
		}
		seen[t] = true
		distinct = append(distinct, t)
	}

	sort.SliceStable(distinct, func(i, j int) bool {
		return counts[distinct[i]] > counts[distinct[j]]
	})

	if len(distinct) > limit {
		distinct = distinct[:limit]
	}
	return distinct
}
