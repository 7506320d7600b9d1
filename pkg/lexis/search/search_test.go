package search

import "testing"

func TestLastOccurrenceReturnsLastMatch(t *testing.T) {
	text := "The cat sat. The dog ran! Cats are cute."

	got := LastOccurrence(text, "the")
	want := " The dog ran"

	if got != want {
		t.Errorf("LastOccurrence = %q, want %q (the second sentence, not the first)", got, want)
	}
}

func TestLastOccurrenceScansWholeText(t *testing.T) {
	text := "Birds sing. Dogs bark! Do birds fly? Yes, birds fly."

	got := LastOccurrence(text, "birds")
	if got != " Yes, birds fly" {
		t.Errorf("LastOccurrence = %q, want the final matching sentence", got)
	}
}

func TestLastOccurrenceNotFound(t *testing.T) {
	text := "The cat sat. The dog ran."

	if got := LastOccurrence(text, "zebra"); got != "" {
		t.Errorf("LastOccurrence = %q, want empty sentinel for no match", got)
	}
}

func TestLastOccurrenceEmptyText(t *testing.T) {
	if got := LastOccurrence("", "word"); got != "" {
		t.Errorf("LastOccurrence on empty text = %q, want \"\"", got)
	}
}

func TestLastOccurrenceMatchesNormalizedForms(t *testing.T) {
	// "Stop," and "\"stop\"" both normalize to the search word.
	text := `He said "stop" loudly. Stop, she replied!`

	got := LastOccurrence(text, "stop")
	if got != " Stop, she replied" {
		t.Errorf("LastOccurrence = %q, want the second sentence", got)
	}
}

func TestLastOccurrenceSentenceAsWritten(t *testing.T) {
	text := "First one here.\n  The SECOND One."

	got := LastOccurrence(text, "one")
	if got != "\n  The SECOND One" {
		t.Errorf("LastOccurrence = %q, want original whitespace and casing preserved", got)
	}
}

func TestContains(t *testing.T) {
	cases := []struct {
		sentence string
		word     string
		want     bool
	}{
		{"The quick fox", "quick", true},
		{"The quick fox", "QUICK", false}, // search word must already be normalized
		{`"Hello," he said`, "hello", true},
		{"The quick fox", "fox jumps", false},
		{"--- !!!", "hello", false},
		{"", "hello", false},
		{"some words", "", false}, // empty word never matches
		{"one-two three", "one-two", true},
		{"one-two three", "one", false}, // no partial matches
	}

	for _, tc := range cases {
		if got := Contains(tc.sentence, tc.word); got != tc.want {
			t.Errorf("Contains(%q, %q) = %v, want %v", tc.sentence, tc.word, got, tc.want)
		}
	}
}
