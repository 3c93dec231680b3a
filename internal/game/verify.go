package game

import (
	"errors"
	"fmt"
	"slices"
)

// ErrCorruptGrid is returned by Verify when the board violates its invariants.
var ErrCorruptGrid = errors.New("game: corrupt grid")

// Verify checks the board invariants:
//   - no number appears in two slots
//   - no slot holds a number above highestDisplayed or below the target
//   - the displayed set equals the non-empty grid contents
//   - during a round, every number from target to highestDisplayed is on
//     the grid
//
// A non-nil error means the round is corrupt and must not continue.
func (r *Round) Verify() error {
	seen := make(map[int]bool, len(r.grid))
	onGrid := make([]int, 0, len(r.grid))
	for slot, v := range r.grid {
		if v == 0 {
			continue
		}
		if seen[v] {
			return fmt.Errorf("%w: %d appears twice (slot %d)", ErrCorruptGrid, v, slot)
		}
		seen[v] = true
		if v > r.highestDisplayed {
			return fmt.Errorf("%w: slot %d holds %d above highest displayed %d", ErrCorruptGrid, slot, v, r.highestDisplayed)
		}
		if v <= r.progress {
			return fmt.Errorf("%w: slot %d holds already tapped %d", ErrCorruptGrid, slot, v)
		}
		onGrid = append(onGrid, v)
	}

	displayed := slices.Clone(r.displayed)
	slices.Sort(displayed)
	slices.Sort(onGrid)
	if !slices.Equal(displayed, onGrid) {
		return fmt.Errorf("%w: displayed %v does not match grid %v", ErrCorruptGrid, displayed, onGrid)
	}

	if r.phase != PhaseIdle && r.progress < r.rules.TotalNumbers {
		want := r.highestDisplayed - r.progress
		if len(onGrid) != want {
			return fmt.Errorf("%w: %d numbers on grid, expected %d", ErrCorruptGrid, len(onGrid), want)
		}
		if r.target > 0 && !seen[r.target] {
			return fmt.Errorf("%w: target %d is not on the grid", ErrCorruptGrid, r.target)
		}
	}
	return nil
}
