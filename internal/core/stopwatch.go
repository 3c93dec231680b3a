package core

import "time"

// Stopwatch measures the active play time of a round.
// Elapsed time only advances while running; pausing freezes the accumulated
// value and resuming continues from it, so paused intervals are never counted.
//
// Stopwatch is not safe for concurrent use. The platform drives it from the
// single UI goroutine and samples Elapsed on every frame.
type Stopwatch struct {
	clock       Clock
	accumulated time.Duration // Time banked before the current running segment
	segmentFrom time.Time     // Start of the current running segment
	running     bool
}

// NewStopwatch creates a stopped stopwatch reading zero.
// A nil clock falls back to the system clock.
func NewStopwatch(clock Clock) *Stopwatch {
	if clock == nil {
		clock = SystemClock()
	}
	return &Stopwatch{clock: clock}
}

// Start resets the accumulated time to zero and begins running.
func (s *Stopwatch) Start() {
	s.accumulated = 0
	s.segmentFrom = s.clock.Now()
	s.running = true
}

// Pause freezes elapsed time. No-op when not running.
func (s *Stopwatch) Pause() {
	if !s.running {
		return
	}
	s.accumulated += s.clock.Now().Sub(s.segmentFrom)
	s.running = false
}

// Resume continues accumulating from the paused value. No-op when running.
func (s *Stopwatch) Resume() {
	if s.running {
		return
	}
	s.segmentFrom = s.clock.Now()
	s.running = true
}

// Stop halts the stopwatch, keeping the last elapsed value readable.
func (s *Stopwatch) Stop() {
	s.Pause()
}

// Running reports whether elapsed time is currently advancing.
func (s *Stopwatch) Running() bool {
	return s.running
}

// Elapsed returns the accumulated time, including the running segment.
func (s *Stopwatch) Elapsed() time.Duration {
	if !s.running {
		return s.accumulated
	}
	return s.accumulated + s.clock.Now().Sub(s.segmentFrom)
}

// ElapsedMs returns Elapsed truncated to whole milliseconds.
func (s *Stopwatch) ElapsedMs() int64 {
	return s.Elapsed().Milliseconds()
}
