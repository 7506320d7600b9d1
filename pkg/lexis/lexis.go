// Package lexis analyzes a block of English text: it counts words,
// computes case-insensitive word frequencies, ranks the most frequent
// words, and locates the last sentence containing the top-ranked word.
package lexis

import (
	"github.com/cognicore/lexis/pkg/lexis/config"
	"github.com/cognicore/lexis/pkg/lexis/freq"
	"github.com/cognicore/lexis/pkg/lexis/rank"
	"github.com/cognicore/lexis/pkg/lexis/report"
	"github.com/cognicore/lexis/pkg/lexis/search"
	"github.com/cognicore/lexis/pkg/lexis/source"
)

// Analyzer is the main text analysis facade
type Analyzer struct {
	topN    int
	reports *report.Builder
}

// Options configures an Analyzer
type Options struct {
	// TopN is the ranking cutoff. Zero or negative falls back to
	// config.DefaultTopN.
	TopN int
}

// New creates an Analyzer with the given options
func New(opts Options) *Analyzer {
	topN := opts.TopN
	if topN <= 0 {
		topN = config.DefaultTopN
	}
	return &Analyzer{
		topN:    topN,
		reports: report.New(),
	}
}

// Analyze runs the full analysis flow over in-memory text: word count,
// frequency table, top-N ranking, and the last sentence containing the
// most frequent word. Everything is derived fresh from text on each call.
// When the text holds no token with word identity the report carries an
// empty ranking and no MostFrequent word; the last-occurrence step is
// skipped rather than searching for an undefined word.
func (a *Analyzer) Analyze(text string) report.Report {
	wordCount := freq.CountWords(text)
	frequencies := freq.Build(text)
	topWords := rank.TopWords(frequencies, a.topN)

	lastSentence := ""
	if len(topWords) > 0 {
		lastSentence = search.LastOccurrence(text, topWords[0])
	}

	return a.reports.Build(wordCount, frequencies, topWords, lastSentence)
}

// AnalyzeFile loads the source at path and analyzes it. A missing or
// unreadable source surfaces as internalerr.ErrSourceUnavailable.
func (a *Analyzer) AnalyzeFile(path string) (report.Report, error) {
	text, err := source.Read(path)
	if err != nil {
		return report.Report{}, err
	}
	return a.Analyze(text), nil
}
