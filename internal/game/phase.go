package game

import (
	"errors"
	"fmt"
)

// Phase is the lifecycle state of a round.
type Phase int

const (
	PhaseIdle      Phase = iota // No round in progress
	PhaseCountdown              // Board placed, pre-round countdown running
	PhasePlaying                // Taps are accepted
	PhasePaused                 // Taps ignored, timer frozen
	PhaseDone                   // Final number tapped; terminal
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCountdown:
		return "countdown"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// ErrInvalidTransition is returned when a phase change is not allowed from
// the current phase. The round is left untouched.
var ErrInvalidTransition = errors.New("game: invalid phase transition")

func transitionError(op string, from Phase) error {
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, op, from)
}
