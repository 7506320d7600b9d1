package report

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Builder assembles analysis reports with unique IDs.
type Builder struct {
	entropy *ulid.MonotonicEntropy
}

// New creates a new report builder
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Report summarizes one analysis pass over a text. Every field is derived
// fresh from the source text; nothing is carried between passes.
type Report struct {
	ID            string
	GeneratedAt   time.Time
	WordCount     int
	DistinctWords int
	TopWords      []string
	MostFrequent  string
	LastSentence  string
	Frequencies   map[string]int
}

// Build creates a report from the analysis results. An empty ranking
// produces a report with no MostFrequent word, which callers must treat
// as the "no words found" condition rather than indexing into TopWords.
func (b *Builder) Build(wordCount int, frequencies map[string]int, topWords []string, lastSentence string) Report {
	r := Report{
		ID:            ulid.MustNew(ulid.Now(), b.entropy).String(),
		GeneratedAt:   time.Now(),
		WordCount:     wordCount,
		DistinctWords: len(frequencies),
		TopWords:      topWords,
		LastSentence:  lastSentence,
		Frequencies:   frequencies,
	}
	if len(topWords) > 0 {
		r.MostFrequent = topWords[0]
	}
	return r
}

// HasWords reports whether the analyzed text contained any token with
// word identity. A text of pure punctuation has a positive WordCount but
// no words.
func (r Report) HasWords() bool {
	return r.MostFrequent != ""
}

// Render formats the report for display. Sentences are trimmed here only;
// the Report itself keeps them as written.
func (r Report) Render() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Total words: %d\n", r.WordCount)

	if !r.HasWords() {
		sb.WriteString("No words found.\n")
		return sb.String()
	}

	sb.WriteString("Most used words are:\n")
	for _, word := range r.TopWords {
		fmt.Fprintf(&sb, "  %s (%d)\n", word, r.Frequencies[word])
	}

	if r.LastSentence != "" {
		fmt.Fprintf(&sb, "The last sentence containing %q is: %s\n",
			r.MostFrequent, strings.TrimSpace(r.LastSentence))
	}

	return sb.String()
}
