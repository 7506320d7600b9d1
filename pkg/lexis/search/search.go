package search

import (
	"strings"

	"github.com/cognicore/lexis/pkg/lexis/tokenize"
)

// LastOccurrence returns the last sentence of text, in document order,
// whose tokens normalize to word. The search word must already be in
// normalized form; callers normalize it the same way sentence contents
// are normalized during the scan. The sentence comes back exactly as
// written between its terminators, and the empty string means no
// sentence contained the word.
func LastOccurrence(text, word string) string {
	last := ""
	for _, sentence := range tokenize.SplitSentences(text) {
		if Contains(sentence, word) {
			last = sentence
		}
	}
	return last
}

// Contains reports whether any whitespace-delimited token of sentence
// normalizes to word. The empty word never matches, so purely
// punctuation sentences are never found.
func Contains(sentence, word string) bool {
	if word == "" {
		return false
	}
	for _, tok := range strings.Fields(sentence) {
		if tokenize.Normalize(tok) == word {
			return true
		}
	}
	return false
}
