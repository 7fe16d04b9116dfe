// Package clock provides the scoped timer used to bracket benchmark trials.
package clock

import "time"

// Stopwatch marks the start of a measured region. The zero value is not
// meaningful; obtain one from Start immediately before the region.
type Stopwatch struct {
	start time.Time
}

// Start begins a measurement. time.Time carries a monotonic reading, so the
// result is immune to wall-clock adjustments.
func Start() Stopwatch {
	return Stopwatch{start: time.Now()}
}

// Elapsed returns the time since Start.
func (s Stopwatch) Elapsed() time.Duration {
	return time.Since(s.start)
}

// Seconds returns the time since Start in seconds, the unit the benchmark
// records use.
func (s Stopwatch) Seconds() float64 {
	return s.Elapsed().Seconds()
}
