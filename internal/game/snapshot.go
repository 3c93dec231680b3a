package game

import "slices"

// Snapshot captures the observable round state for rendering and tests.
// Slices are copies; mutating them does not affect the round.
type Snapshot struct {
	Phase            Phase
	Grid             []int // Slot contents, 0 = empty
	Displayed        []int // Numbers currently on the grid, ascending
	HighestDisplayed int
	Target           int
	Progress         int
	Misses           int
	Flash            Flash
	Settling         bool
}

// Snapshot returns the current round snapshot.
func (r *Round) Snapshot() Snapshot {
	displayed := slices.Clone(r.displayed)
	slices.Sort(displayed)
	return Snapshot{
		Phase:            r.phase,
		Grid:             slices.Clone(r.grid),
		Displayed:        displayed,
		HighestDisplayed: r.highestDisplayed,
		Target:           r.target,
		Progress:         r.progress,
		Misses:           r.misses,
		Flash:            r.flash,
		Settling:         r.pending,
	}
}

// SlotOf returns the grid slot holding n, or -1 if n is not displayed.
func (s Snapshot) SlotOf(n int) int {
	if n <= 0 {
		return -1
	}
	return slices.Index(s.Grid, n)
}
