// Package sorter orders word-count records by descending count, then
// ascending word, using a budgeted fork-join parallel merge sort.
package sorter

import (
	"runtime"
	"sort"

	"github.com/gcbaptista/go-word-stats/model"
)

// DefaultSequentialThreshold is the segment length at or below which a
// segment is sorted sequentially instead of being split further.
const DefaultSequentialThreshold = 1024

// Sorter holds the tunables for a parallel sort. The zero value (or any
// non-positive field) falls back to the package defaults, so Sorter{} is
// ready to use.
type Sorter struct {
	// Threshold is the sequential-sort cutoff segment length.
	Threshold int
	// Budget bounds how many recursion levels may still dispatch
	// concurrent work. Each split charges 2 (one per child); once the
	// remaining budget drops below 2, the subtree completes sequentially.
	Budget int
}

// DefaultBudget derives the starting parallelism budget from the number of
// available CPUs: half of them, but at least 1.
func DefaultBudget() int {
	budget := runtime.NumCPU() / 2
	if budget < 1 {
		budget = 1
	}
	return budget
}

// Sort orders records in place under the output total order. Records with
// distinct words (the normal case, guaranteed by the counting table) have a
// strict order; duplicate words are still ordered deterministically.
func (s Sorter) Sort(records []model.WordRecord) {
	threshold := s.Threshold
	if threshold <= 0 {
		threshold = DefaultSequentialThreshold
	}
	budget := s.Budget
	if budget <= 0 {
		budget = DefaultBudget()
	}
	parallelMergeSort(records, threshold, budget)
}

// Sort orders records in place using the default threshold and budget.
func Sort(records []model.WordRecord) {
	Sorter{}.Sort(records)
}

// sortSegment sorts a segment in place sequentially. It is a variable so a
// failing base case can be substituted when testing subtask failure
// handling.
var sortSegment = func(records []model.WordRecord) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Less(records[j])
	})
}

// parallelMergeSort recursively splits records at the midpoint, sorts the
// left half on a fresh goroutine and the right half on the calling
// goroutine, then merges the sorted halves. The halves are disjoint
// subslices of the same backing array, so no element is touched by two
// goroutines at once; the merge runs only after the join.
func parallelMergeSort(records []model.WordRecord, threshold, budget int) {
	if len(records) <= threshold || budget < 2 {
		sortSegment(records)
		return
	}

	mid := len(records) / 2

	// The child sends its recover() result on join; a non-nil value is
	// re-raised here so a failed subtask can never leave a half-sorted
	// result behind unnoticed.
	childDone := make(chan interface{}, 1)
	go func() {
		defer func() {
			childDone <- recover()
		}()
		parallelMergeSort(records[:mid], threshold, budget-2)
	}()

	parallelMergeSort(records[mid:], threshold, budget-2)

	if p := <-childDone; p != nil {
		panic(p)
	}

	merge(records, mid)
}

// merge combines the two adjacent sorted halves records[:mid] and
// records[mid:] into a single sorted run, stably: on ties the left half's
// element is emitted first. Only the left half is copied aside; the right
// half's unconsumed tail is already in its final position.
func merge(records []model.WordRecord, mid int) {
	left := make([]model.WordRecord, mid)
	copy(left, records[:mid])

	i, j, k := 0, mid, 0
	for i < len(left) && j < len(records) {
		if records[j].Less(left[i]) {
			records[k] = records[j]
			j++
		} else {
			records[k] = left[i]
			i++
		}
		k++
	}
	for i < len(left) {
		records[k] = left[i]
		i++
		k++
	}
}
