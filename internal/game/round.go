// Package game implements the NumRush round: a fixed grid of number tiles
// that must be tapped in ascending order. Each correct tap frees its slot for
// the next undisplayed number until every number has been tapped.
//
// The package is pure logic. It never sleeps or schedules anything itself;
// deferred work (the settle delay after each tap) is handed to the caller as
// a Token and applied later via Settle.
package game

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/numrush/internal/config"
)

// FlashKind classifies the visual feedback of a tap.
type FlashKind int

const (
	FlashNone FlashKind = iota
	FlashCorrect
	FlashWrong
)

// String returns the flash kind name.
func (k FlashKind) String() string {
	switch k {
	case FlashCorrect:
		return "correct"
	case FlashWrong:
		return "wrong"
	default:
		return "none"
	}
}

// Flash is the transient feedback shown on a tapped tile until it settles.
type Flash struct {
	Number int
	Kind   FlashKind
}

// Token identifies one pending settle. A token is only honoured while it is
// the round's current generation; any re-init, abandon or newer tap makes it
// stale.
type Token uint64

// TapOutcome classifies how a tap was handled.
type TapOutcome int

const (
	TapIgnored TapOutcome = iota // Round not in the playing phase
	TapDropped                   // A previous tap is still settling
	TapCorrect
	TapWrong
)

// TapResult tells the caller what happened and, for accepted taps, when to
// call Settle.
type TapResult struct {
	Outcome TapOutcome
	Token   Token
	Delay   time.Duration
}

// Accepted reports whether the tap changed the round.
func (r TapResult) Accepted() bool {
	return r.Outcome == TapCorrect || r.Outcome == TapWrong
}

// SettleResult reports what a Settle call did.
type SettleResult struct {
	Applied   bool // False when the token was stale
	Revealed  int  // Number newly placed on the grid, 0 if none
	Completed bool // The round finished with this settle
}

// Round owns the state of one play-through.
type Round struct {
	rules  config.Rules
	rng    *rand.Rand
	notify Notifier

	phase            Phase
	grid             []int // Slot contents, 0 = empty
	displayed        []int // Numbers on the grid, in reveal order
	highestDisplayed int
	target           int
	progress         int
	misses           int
	flash            Flash

	pending    bool   // A tap is waiting for Settle
	finished   bool   // Last number settled while paused; Resume completes the round
	generation uint64 // Bumped on every event that invalidates outstanding tokens
}

// NewRound creates an idle round. Start places the board.
// A nil notifier is replaced with NopNotifier.
func NewRound(rules config.Rules, rng *rand.Rand, notify Notifier) *Round {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Round{
		rules:  rules,
		rng:    rng,
		notify: notify,
		phase:  PhaseIdle,
		grid:   make([]int, rules.GridSize),
		target: 1,
	}
}

// Init lays out a fresh board and resets all counters: numbers
// 1..InitialDisplay go into slots chosen by a uniform shuffle of the grid,
// every other slot is empty. Outstanding settle tokens become stale.
// The phase is reset to idle.
func (r *Round) Init() {
	r.generation++
	r.pending = false
	r.finished = false
	r.flash = Flash{}
	r.phase = PhaseIdle

	r.grid = make([]int, r.rules.GridSize)
	slots := Shuffle(r.rules.GridSize, r.rng)
	k := r.rules.InitialDisplay
	r.displayed = make([]int, 0, k)
	for i := 0; i < k; i++ {
		num := i + 1
		r.grid[slots[i]] = num
		r.displayed = append(r.displayed, num)
	}

	r.highestDisplayed = k
	r.target = 1
	r.progress = 0
	r.misses = 0
}

// Start initializes a new board and enters the countdown.
// Allowed from idle, or from done to play again.
func (r *Round) Start() error {
	if r.phase != PhaseIdle && r.phase != PhaseDone {
		return transitionError("start", r.phase)
	}
	r.Init()
	r.phase = PhaseCountdown
	return nil
}

// CountdownDone begins play once the countdown overlay has finished.
func (r *Round) CountdownDone() error {
	if r.phase != PhaseCountdown {
		return transitionError("countdown done", r.phase)
	}
	r.phase = PhasePlaying
	return nil
}

// Pause suspends play. Only allowed while playing.
func (r *Round) Pause() error {
	if r.phase != PhasePlaying {
		return transitionError("pause", r.phase)
	}
	r.phase = PhasePaused
	return nil
}

// Resume continues a paused round. If the last number settled during the
// pause, the round completes here instead.
func (r *Round) Resume() error {
	if r.phase != PhasePaused {
		return transitionError("resume", r.phase)
	}
	if r.finished {
		r.complete()
		return nil
	}
	r.phase = PhasePlaying
	return nil
}

// Abandon discards the round from any phase, for example when the player
// returns home or the view is torn down. Pending settles become stale so no
// deferred mutation lands after teardown.
func (r *Round) Abandon() {
	r.generation++
	r.pending = false
	r.finished = false
	r.flash = Flash{}
	r.phase = PhaseIdle
}

// Tap handles a tap on number n.
//
// Taps are ignored outside the playing phase and dropped (not queued) while a
// previous tap is settling. Otherwise the tap is classified against the
// target: a correct tap flashes and waits for Settle to advance; a wrong tap
// flashes and counts a miss immediately.
func (r *Round) Tap(n int) TapResult {
	if r.phase != PhasePlaying {
		return TapResult{Outcome: TapIgnored}
	}
	if r.pending {
		return TapResult{Outcome: TapDropped}
	}

	r.generation++
	r.pending = true
	token := Token(r.generation)

	if n == r.target {
		r.flash = Flash{Number: n, Kind: FlashCorrect}
		r.notify.Correct(n)
		return TapResult{Outcome: TapCorrect, Token: token, Delay: r.rules.CorrectSettle}
	}

	r.flash = Flash{Number: n, Kind: FlashWrong}
	r.misses++
	r.notify.Wrong(n)
	return TapResult{Outcome: TapWrong, Token: token, Delay: r.rules.WrongSettle}
}

// Settle applies the deferred part of the tap identified by token.
// Stale tokens are ignored.
//
// For a correct tap the number leaves the grid and, while undisplayed numbers
// remain, the next one takes over the freed slot. Tapping the last number
// completes the round; when that settle lands during a pause, completion
// waits for Resume so the round only ever finishes from playing.
func (r *Round) Settle(token Token) SettleResult {
	if !r.pending || uint64(token) != r.generation {
		return SettleResult{}
	}
	r.pending = false

	f := r.flash
	r.flash = Flash{}
	if f.Kind != FlashCorrect {
		return SettleResult{Applied: true}
	}

	revealed := r.replace(f.Number)
	r.progress = f.Number

	if f.Number >= r.rules.TotalNumbers {
		if r.phase == PhasePaused {
			r.finished = true
			return SettleResult{Applied: true, Revealed: revealed}
		}
		r.complete()
		return SettleResult{Applied: true, Revealed: revealed, Completed: true}
	}

	r.target = f.Number + 1
	return SettleResult{Applied: true, Revealed: revealed}
}

func (r *Round) complete() {
	r.finished = false
	r.phase = PhaseDone
	r.notify.RoundComplete()
}

// replace removes n from the grid and writes the next undisplayed number
// into the same slot. It returns the revealed number, or 0 once the pool is
// exhausted.
func (r *Round) replace(n int) int {
	slot := slices.Index(r.grid, n)
	if slot < 0 {
		panic(fmt.Sprintf("game: tapped number %d is not on the grid", n))
	}

	r.displayed = slices.DeleteFunc(r.displayed, func(v int) bool { return v == n })
	r.grid[slot] = 0

	if r.highestDisplayed >= r.rules.TotalNumbers {
		return 0
	}

	r.highestDisplayed++
	r.grid[slot] = r.highestDisplayed
	r.displayed = append(r.displayed, r.highestDisplayed)
	return r.highestDisplayed
}

// Phase returns the current phase.
func (r *Round) Phase() Phase {
	return r.phase
}

// Target returns the number that must be tapped next.
func (r *Round) Target() int {
	return r.target
}

// Progress returns the last correctly tapped number.
func (r *Round) Progress() int {
	return r.progress
}

// Misses returns the number of wrong taps this round.
func (r *Round) Misses() int {
	return r.misses
}

// Settling reports whether a tap is waiting for Settle.
func (r *Round) Settling() bool {
	return r.pending
}

// Rules returns the rules the round was created with.
func (r *Round) Rules() config.Rules {
	return r.rules
}
