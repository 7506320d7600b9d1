package freq

import (
	"strings"

	"github.com/cognicore/lexis/pkg/lexis/tokenize"
)

// CountWords returns the number of whitespace-delimited tokens in text.
// Tokens are counted as written, without normalization, so a token that is
// pure punctuation still counts toward the total. This intentionally
// differs from Build, which skips tokens with no word identity, so the two
// totals may legitimately disagree.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// Build folds the token stream of text into a frequency table keyed by
// normalized word. Tokens that normalize to the empty string are skipped,
// so every key is non-empty and every count is at least 1. The sum of all
// counts equals the number of tokens whose normalization is non-empty.
func Build(text string) map[string]int {
	fields := strings.Fields(text)

	// Distinct words cannot exceed the token count; presizing avoids
	// rehashing on texts with few repeats.
	counts := make(map[string]int, len(fields))
	for _, tok := range fields {
		word := tokenize.Normalize(tok)
		if word == "" {
			continue
		}
		counts[word]++
	}
	return counts
}
