// Package wordlist provides word list filtering helpers.
package wordlist

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// SpellingFilter keeps words made only of ASCII letters. Capitals are
// allowed since some catalog words are proper nouns.
func SpellingFilter(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if (ch < 'a' || ch > 'z') && (ch < 'A' || ch > 'Z') {
			return false
		}
	}
	return true
}

// Filter returns the words accepted by keep, dropping duplicates while
// preserving the first occurrence order. It also reports how many words
// were rejected.
func Filter(words []string, keep FilterFunc) ([]string, int) {
	out := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	rejected := 0
	for _, word := range words {
		if !keep(word) {
			rejected++
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, word)
	}
	return out, rejected
}
