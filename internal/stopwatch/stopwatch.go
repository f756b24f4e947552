// Package stopwatch is a minimal run-timing helper for cmd/meandersim,
// grounded on original_source/Code/Include/meanders.h's MyChrono (restart/
// elapsed contract) and on the teacher's own time.Since-based timing prints
// in main.go. It is never imported by the simulation itself — spec.md §1
// treats timing utilities as out-of-scope surrounding-repository tooling.
package stopwatch

import "time"

// Stopwatch measures elapsed wall-clock time since it was started or last
// restarted.
type Stopwatch struct {
	start time.Time
}

// New returns a Stopwatch started now.
func New() *Stopwatch {
	return &Stopwatch{start: time.Now()}
}

// Restart resets the stopwatch to start counting from now.
func (s *Stopwatch) Restart() {
	s.start = time.Now()
}

// Elapsed returns the time since the last start/restart.
func (s *Stopwatch) Elapsed() time.Duration {
	return time.Since(s.start)
}
