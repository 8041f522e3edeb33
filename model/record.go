package model

// WordRecord is a single (word, count) statistics entry. The word is a
// non-empty run of lowercase ASCII letters; the count is the number of times
// the word occurred in the analyzed text.
type WordRecord struct {
	Word  string `json:"word"`
	Count uint64 `json:"count"`
}

// Less reports whether r sorts before other under the output total order:
// descending count first, then ascending word by byte value. The word
// tie-break makes the order fully deterministic even if duplicate words
// were ever handed to the sorter.
func (r WordRecord) Less(other WordRecord) bool {
	return r.Count > other.Count ||
		(r.Count == other.Count && r.Word < other.Word)
}

// BuildRecords flattens a word-count table into a slice of records, one per
// distinct word, in map-iteration order. The order is arbitrary; callers
// that need the output total order sort the result afterwards.
func BuildRecords(counts map[string]uint64) []WordRecord {
	records := make([]WordRecord, 0, len(counts))
	for word, count := range counts {
		records = append(records, WordRecord{Word: word, Count: count})
	}
	return records
}
