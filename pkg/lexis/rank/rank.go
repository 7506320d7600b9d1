package rank

import "sort"

// TopWords returns at most n words from the frequency table, most
// frequent first. Ties between equal-count words are broken by the word
// itself, lexicographically ascending, so the ordering is deterministic
// regardless of map iteration order. A non-positive n yields no words;
// an n larger than the table yields every word.
func TopWords(freq map[string]int, n int) []string {
	if n <= 0 || len(freq) == 0 {
		return nil
	}

	type entry struct {
		word  string
		count int
	}

	entries := make([]entry, 0, len(freq))
	for word, count := range freq {
		entries = append(entries, entry{word: word, count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].word < entries[j].word
	})

	if len(entries) > n {
		entries = entries[:n]
	}

	words := make([]string, len(entries))
	for i, e := range entries {
		words[i] = e.word
	}
	return words
}
