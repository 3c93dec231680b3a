package core

import "time"

// Clock is the time source used by Stopwatch.
// Tests substitute a manual clock so elapsed-time math can be checked
// without sleeping.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now (monotonic reading included).
func SystemClock() Clock {
	return systemClock{}
}
