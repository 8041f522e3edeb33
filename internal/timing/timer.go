// Package timing provides the phase timer and duration formatting used for
// the pipeline's elapsed-time diagnostics.
package timing

import (
	"fmt"
	"time"
)

// Timer measures elapsed time between consecutive pipeline phases.
type Timer struct {
	prev time.Time
}

// NewTimer starts a timer at the current instant.
func NewTimer() *Timer {
	return &Timer{prev: time.Now()}
}

// Lap returns the time elapsed since the previous lap (or since the timer
// was created) and resets the reference point.
func (t *Timer) Lap() time.Duration {
	now := time.Now()
	elapsed := now.Sub(t.prev)
	t.prev = now
	return elapsed
}

// Format renders a duration as whole seconds and remaining milliseconds,
// e.g. "1s 204ms".
func Format(d time.Duration) string {
	ms := d.Milliseconds()
	return fmt.Sprintf("%ds %dms", ms/1000, ms%1000)
}
