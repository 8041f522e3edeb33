// Command word_stats reads a text file, counts its words, and writes the
// statistics to an output file sorted by descending count, then ascending
// word.
//
// Usage: word_stats <fromfile> <tofile>
package main

import (
	"fmt"
	"os"

	"github.com/gcbaptista/go-word-stats/internal/sorter"
	"github.com/gcbaptista/go-word-stats/internal/timing"
	"github.com/gcbaptista/go-word-stats/internal/tokenizer"
	"github.com/gcbaptista/go-word-stats/internal/writer"
	"github.com/gcbaptista/go-word-stats/model"
	"github.com/gcbaptista/go-word-stats/services"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <fromfile> <tofile>\n", os.Args[0])
		// The original tool exited 0 here; that made usage errors
		// indistinguishable from success, so this version exits 2.
		os.Exit(2)
	}

	timer := timing.NewTimer()
	logPhase := func(phase string) {
		fmt.Printf("Time spent for %s: %s\n", phase, timing.Format(timer.Lap()))
	}

	counts, err := tokenizer.CountFile(os.Args[1])
	if err != nil {
		fail(err)
	}
	logPhase(services.PhaseReadAndCount)

	records := model.BuildRecords(counts)
	sorter.Sort(records)
	logPhase(services.PhaseSort)

	if err := writer.WriteFile(os.Args[2], records); err != nil {
		fail(err)
	}
	logPhase(services.PhaseWrite)
}

// fail reports a fatal I/O error. Unlike the original tool, the failure is
// reflected in the exit status as well as on stderr.
func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
