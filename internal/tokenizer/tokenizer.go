// Package tokenizer extracts lowercase alphabetic words from a byte stream
// and counts how often each distinct word occurs.
package tokenizer

import (
	"bufio"
	"io"
	"os"

	"github.com/gcbaptista/go-word-stats/internal/errors"
)

// CountWords scans r one byte at a time, groups contiguous runs of ASCII
// letters into words (folded to lowercase), and returns a table mapping each
// distinct word to its occurrence count. A word terminated by end of stream
// is counted like any other. The table never contains an empty-string key.
// Read failures are fatal and reported as input read errors.
func CountWords(r io.Reader) (map[string]uint64, error) {
	counts := make(map[string]uint64)
	reader := bufio.NewReader(r)

	word := make([]byte, 0, 64)
	for {
		b, err := reader.ReadByte()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.NewInputReadError(err)
		}

		if isASCIILetter(b) {
			word = append(word, toLower(b))
			continue
		}
		if len(word) > 0 {
			counts[string(word)]++
			word = word[:0]
		}
	}

	if len(word) > 0 {
		counts[string(word)]++
	}

	return counts, nil
}

// CountFile opens the file at path and counts its words via CountWords.
// Open failures are reported as input file errors; failures after the open
// keep CountWords' read-specific diagnostic.
func CountFile(path string) (map[string]uint64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewInputFileError(path, err)
	}
	defer file.Close()

	return CountWords(file)
}

// TotalTokens sums the counts in a word-count table, i.e. the number of
// alphabetic-run tokens that were extracted from the input.
func TotalTokens(counts map[string]uint64) uint64 {
	var total uint64
	for _, count := range counts {
		total += count
	}
	return total
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
