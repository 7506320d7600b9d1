package tokenize

import (
	"strings"
	"unicode"
)

// Normalize converts a raw token to its comparison form: leading and
// trailing non-alphanumeric runes are stripped and the remainder is
// lowercased. Equality of normalized words defines word identity, so
// "Word," and "\"word" both normalize to "word". A token with no
// alphanumeric content normalizes to the empty string.
func Normalize(token string) string {
	trimmed := strings.TrimFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.ToLower(trimmed)
}

// Words splits text on runs of whitespace and normalizes every token,
// dropping tokens that normalize to the empty string.
func Words(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))
	for _, tok := range fields {
		if word := Normalize(tok); word != "" {
			words = append(words, word)
		}
	}
	return words
}

// SplitSentences splits text into sentences on any of '.', '?' or '!',
// excluding the terminator itself. Sentences come back in document order
// with their internal whitespace and casing as written. Segments between
// consecutive terminators are empty and are not returned.
//
// The split is purely punctuation based: abbreviations and decimal
// numbers ("Mr. Smith", "3.14") are treated as sentence boundaries.
func SplitSentences(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '?' || r == '!'
	})
}
