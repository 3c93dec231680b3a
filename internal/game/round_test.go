package game

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/numrush/internal/config"
)

type recorder struct {
	correct  []int
	wrong    []int
	complete int
}

func (r *recorder) Correct(n int) { r.correct = append(r.correct, n) }
func (r *recorder) Wrong(n int) { r.wrong = append(r.wrong, n) }
func (r *recorder) RoundComplete() { r.complete++ }

func newTestRound(t *testing.T, seed int64) (*Round, *recorder) {
	t.Helper()
	rec := &recorder{}
	r := NewRound(config.DefaultRules(), rand.New(rand.NewSource(seed)), rec)
	return r, rec
}

// startPlaying places a fresh board and skips the countdown.
func startPlaying(t *testing.T, r *Round) {
	t.Helper()
	if err := r.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := r.CountdownDone(); err != nil {
		t.Fatalf("CountdownDone() error = %v", err)
	}
}

func mustVerify(t *testing.T, r *Round) {
	t.Helper()
	if err := r.Verify(); err != nil {
		t.Fatalf("Verify() = %v", err)
	}
}

func TestShufflePermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{1, 2, 5, 30, 100} {
		perm := Shuffle(n, rng)
		if len(perm) != n {
			t.Fatalf("Shuffle(%d) returned %d indices", n, len(perm))
		}
		sorted := slices.Clone(perm)
		slices.Sort(sorted)
		for i, v := range sorted {
			if v != i {
				t.Fatalf("Shuffle(%d) = %v, not a permutation of 0..%d", n, perm, n-1)
			}
		}
	}

	if got := Shuffle(0, rng); got != nil {
		t.Errorf("Shuffle(0) = %v, expected nil", got)
	}
}

func TestShuffleDeterminism(t *testing.T) {
	a := Shuffle(30, rand.New(rand.NewSource(12345)))
	b := Shuffle(30, rand.New(rand.NewSource(12345)))
	if !slices.Equal(a, b) {
		t.Errorf("same seed produced %v and %v", a, b)
	}
}

func TestShuffleUniformity(t *testing.T) {
	// 3! = 6 permutations, each should show up about 1/6 of the time.
	const trials = 6000
	rng := rand.New(rand.NewSource(99))
	counts := make(map[[3]int]int)
	for i := 0; i < trials; i++ {
		p := Shuffle(3, rng)
		counts[[3]int{p[0], p[1], p[2]}]++
	}
	if len(counts) != 6 {
		t.Fatalf("saw %d distinct permutations, expected 6", len(counts))
	}
	for perm, c := range counts {
		if c < 800 || c > 1200 {
			t.Errorf("permutation %v appeared %d times, expected about %d", perm, c, trials/6)
		}
	}
}

func TestInitLayout(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42, 2024} {
		r, _ := newTestRound(t, seed)
		if err := r.Start(); err != nil {
			t.Fatalf("Start() error = %v", err)
		}
		mustVerify(t, r)

		s := r.Snapshot()
		if s.Phase != PhaseCountdown {
			t.Errorf("Phase = %v, expected countdown", s.Phase)
		}
		if len(s.Grid) != 30 {
			t.Fatalf("len(Grid) = %d, expected 30", len(s.Grid))
		}

		filled := 0
		for _, v := range s.Grid {
			if v != 0 {
				filled++
			}
		}
		if filled != 10 {
			t.Errorf("seed %d: %d filled slots, expected 10", seed, filled)
		}

		want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		if !slices.Equal(s.Displayed, want) {
			t.Errorf("Displayed = %v, expected %v", s.Displayed, want)
		}
		if s.HighestDisplayed != 10 || s.Target != 1 || s.Progress != 0 || s.Misses != 0 {
			t.Errorf("counters = (%d, %d, %d, %d), expected (10, 1, 0, 0)",
				s.HighestDisplayed, s.Target, s.Progress, s.Misses)
		}
	}
}

func TestInitDiffersAcrossSeeds(t *testing.T) {
	a, _ := newTestRound(t, 1)
	b, _ := newTestRound(t, 2)
	a.Init()
	b.Init()
	if slices.Equal(a.Snapshot().Grid, b.Snapshot().Grid) {
		t.Error("different seeds produced identical layouts")
	}
}

func TestFullRound(t *testing.T) {
	r, rec := newTestRound(t, 42)
	startPlaying(t, r)

	for n := 1; n <= 50; n++ {
		before := r.Snapshot()
		slot := before.SlotOf(n)
		if slot < 0 {
			t.Fatalf("target %d not on grid %v", n, before.Grid)
		}

		res := r.Tap(n)
		if res.Outcome != TapCorrect {
			t.Fatalf("Tap(%d) outcome = %v, expected correct", n, res.Outcome)
		}
		if res.Delay != r.Rules().CorrectSettle {
			t.Errorf("Tap(%d) delay = %v, expected %v", n, res.Delay, r.Rules().CorrectSettle)
		}
		if f := r.Snapshot().Flash; f.Number != n || f.Kind != FlashCorrect {
			t.Errorf("flash after Tap(%d) = %+v", n, f)
		}
		mustVerify(t, r)

		set := r.Settle(res.Token)
		if !set.Applied {
			t.Fatalf("Settle after Tap(%d) not applied", n)
		}
		mustVerify(t, r)

		after := r.Snapshot()
		wantReveal := 0
		if n+10 <= 50 {
			wantReveal = n + 10
		}
		if set.Revealed != wantReveal {
			t.Errorf("Tap(%d) revealed %d, expected %d", n, set.Revealed, wantReveal)
		}
		if after.Grid[slot] != wantReveal {
			t.Errorf("slot %d holds %d after tapping %d, expected %d", slot, after.Grid[slot], n, wantReveal)
		}
		if after.Progress != n {
			t.Errorf("Progress = %d, expected %d", after.Progress, n)
		}
		if after.Flash.Kind != FlashNone {
			t.Errorf("flash not cleared after settle: %+v", after.Flash)
		}

		if n < 50 {
			if set.Completed {
				t.Fatalf("round completed early at %d", n)
			}
			if after.Target != n+1 {
				t.Errorf("Target = %d, expected %d", after.Target, n+1)
			}
		}
	}

	s := r.Snapshot()
	if s.Phase != PhaseDone {
		t.Errorf("Phase = %v, expected done", s.Phase)
	}
	if s.Progress != 50 || s.Misses != 0 {
		t.Errorf("Progress/Misses = %d/%d, expected 50/0", s.Progress, s.Misses)
	}
	for i, v := range s.Grid {
		if v != 0 {
			t.Errorf("slot %d still holds %d", i, v)
		}
	}
	if rec.complete != 1 {
		t.Errorf("RoundComplete fired %d times, expected 1", rec.complete)
	}
	if len(rec.correct) != 50 || len(rec.wrong) != 0 {
		t.Errorf("notifier saw %d correct, %d wrong", len(rec.correct), len(rec.wrong))
	}

	// Nothing more happens after completion.
	if res := r.Tap(50); res.Outcome != TapIgnored {
		t.Errorf("Tap after done outcome = %v, expected ignored", res.Outcome)
	}
	if rec.complete != 1 {
		t.Errorf("RoundComplete fired again after done")
	}
}

func TestWrongTaps(t *testing.T) {
	r, rec := newTestRound(t, 3)
	startPlaying(t, r)
	before := r.Snapshot()

	for _, n := range []int{2, 3, 4, 5, 6} {
		res := r.Tap(n)
		if res.Outcome != TapWrong {
			t.Fatalf("Tap(%d) outcome = %v, expected wrong", n, res.Outcome)
		}
		if res.Delay != r.Rules().WrongSettle {
			t.Errorf("Tap(%d) delay = %v, expected %v", n, res.Delay, r.Rules().WrongSettle)
		}
		if f := r.Snapshot().Flash; f.Number != n || f.Kind != FlashWrong {
			t.Errorf("flash after Tap(%d) = %+v", n, f)
		}
		if !r.Settle(res.Token).Applied {
			t.Fatalf("Settle after wrong Tap(%d) not applied", n)
		}
		mustVerify(t, r)
	}

	after := r.Snapshot()
	if after.Misses != 5 {
		t.Errorf("Misses = %d, expected 5", after.Misses)
	}
	if !slices.Equal(after.Grid, before.Grid) {
		t.Errorf("grid changed after wrong taps:\n%v\n%v", before.Grid, after.Grid)
	}
	if after.Target != 1 || after.Progress != 0 {
		t.Errorf("Target/Progress = %d/%d, expected 1/0", after.Target, after.Progress)
	}
	if !slices.Equal(rec.wrong, []int{2, 3, 4, 5, 6}) {
		t.Errorf("notifier wrong = %v", rec.wrong)
	}
}

func TestTapDebounce(t *testing.T) {
	r, rec := newTestRound(t, 5)
	startPlaying(t, r)

	first := r.Tap(1)
	if first.Outcome != TapCorrect {
		t.Fatalf("Tap(1) outcome = %v", first.Outcome)
	}
	mid := r.Snapshot()

	for _, n := range []int{2, 1, 7} {
		if res := r.Tap(n); res.Outcome != TapDropped || res.Accepted() {
			t.Errorf("Tap(%d) while settling outcome = %v, expected dropped", n, res.Outcome)
		}
	}

	after := r.Snapshot()
	if after.Misses != 0 || after.Flash != mid.Flash || !slices.Equal(after.Grid, mid.Grid) {
		t.Errorf("dropped taps changed state: %+v", after)
	}
	if len(rec.correct) != 1 || len(rec.wrong) != 0 {
		t.Errorf("dropped taps reached notifier: %v %v", rec.correct, rec.wrong)
	}

	r.Settle(first.Token)
	if r.Target() != 2 {
		t.Errorf("Target = %d, expected 2", r.Target())
	}
	if res := r.Tap(2); res.Outcome != TapCorrect {
		t.Errorf("Tap(2) after settle outcome = %v, expected correct", res.Outcome)
	}
}

func TestStaleTokenAfterAbandon(t *testing.T) {
	r, _ := newTestRound(t, 8)
	startPlaying(t, r)

	res := r.Tap(1)
	r.Abandon()

	if got := r.Settle(res.Token); got.Applied {
		t.Error("Settle applied after Abandon")
	}
	s := r.Snapshot()
	if s.Phase != PhaseIdle {
		t.Errorf("Phase = %v, expected idle", s.Phase)
	}
	if s.SlotOf(1) < 0 || s.Progress != 0 {
		t.Errorf("abandoned round mutated: %+v", s)
	}
}

func TestStaleTokenAfterReinit(t *testing.T) {
	r, _ := newTestRound(t, 9)
	startPlaying(t, r)

	res := r.Tap(1)
	r.Abandon()
	startPlaying(t, r)

	if got := r.Settle(res.Token); got.Applied {
		t.Error("Settle from previous round applied to new round")
	}
	if r.Progress() != 0 || r.Target() != 1 {
		t.Errorf("Progress/Target = %d/%d, expected 0/1", r.Progress(), r.Target())
	}
	mustVerify(t, r)
}

func TestSettleTwice(t *testing.T) {
	r, _ := newTestRound(t, 10)
	startPlaying(t, r)

	res := r.Tap(1)
	r.Settle(res.Token)
	if got := r.Settle(res.Token); got.Applied {
		t.Error("second Settle with the same token applied")
	}
	if r.Progress() != 1 {
		t.Errorf("Progress = %d, expected 1", r.Progress())
	}
}

func TestTapIgnoredOutsidePlaying(t *testing.T) {
	r, rec := newTestRound(t, 11)

	if res := r.Tap(1); res.Outcome != TapIgnored {
		t.Errorf("idle Tap outcome = %v, expected ignored", res.Outcome)
	}

	if err := r.Start(); err != nil {
		t.Fatal(err)
	}
	if res := r.Tap(1); res.Outcome != TapIgnored {
		t.Errorf("countdown Tap outcome = %v, expected ignored", res.Outcome)
	}

	if err := r.CountdownDone(); err != nil {
		t.Fatal(err)
	}
	if err := r.Pause(); err != nil {
		t.Fatal(err)
	}
	if res := r.Tap(1); res.Outcome != TapIgnored {
		t.Errorf("paused Tap outcome = %v, expected ignored", res.Outcome)
	}

	if r.Misses() != 0 || len(rec.correct) != 0 {
		t.Error("ignored taps changed the round")
	}
}

func TestSettleWhilePaused(t *testing.T) {
	r, _ := newTestRound(t, 12)
	startPlaying(t, r)

	res := r.Tap(1)
	if err := r.Pause(); err != nil {
		t.Fatal(err)
	}
	if got := r.Settle(res.Token); !got.Applied {
		t.Fatal("Settle during pause not applied")
	}
	if r.Phase() != PhasePaused {
		t.Errorf("Phase = %v, expected paused", r.Phase())
	}
	if r.Target() != 2 {
		t.Errorf("Target = %d, expected 2", r.Target())
	}
	if err := r.Resume(); err != nil {
		t.Fatal(err)
	}
	if res := r.Tap(2); res.Outcome != TapCorrect {
		t.Errorf("Tap(2) after resume outcome = %v", res.Outcome)
	}
}

func TestLastSettleDuringPauseCompletesOnResume(t *testing.T) {
	r, rec := newTestRound(t, 15)
	startPlaying(t, r)
	for n := 1; n < 50; n++ {
		r.Settle(r.Tap(n).Token)
	}

	res := r.Tap(50)
	if err := r.Pause(); err != nil {
		t.Fatal(err)
	}
	got := r.Settle(res.Token)
	if !got.Applied || got.Completed {
		t.Errorf("Settle(50) while paused = %+v, expected applied but not completed", got)
	}
	if r.Phase() != PhasePaused {
		t.Errorf("Phase = %v, expected paused", r.Phase())
	}
	if r.Progress() != 50 {
		t.Errorf("Progress = %d, expected 50", r.Progress())
	}
	if rec.complete != 0 {
		t.Errorf("RoundComplete fired %d times during pause, expected 0", rec.complete)
	}
	mustVerify(t, r)

	if err := r.Resume(); err != nil {
		t.Fatalf("Resume() error = %v", err)
	}
	if r.Phase() != PhaseDone {
		t.Errorf("Phase after resume = %v, expected done", r.Phase())
	}
	if rec.complete != 1 {
		t.Errorf("RoundComplete fired %d times, expected 1", rec.complete)
	}
}

func TestAbandonClearsCompletionDuringPause(t *testing.T) {
	r, rec := newTestRound(t, 16)
	startPlaying(t, r)
	for n := 1; n < 50; n++ {
		r.Settle(r.Tap(n).Token)
	}
	res := r.Tap(50)
	_ = r.Pause()
	r.Settle(res.Token)
	r.Abandon()

	startPlaying(t, r)
	_ = r.Pause()
	if err := r.Resume(); err != nil {
		t.Fatal(err)
	}
	if r.Phase() != PhasePlaying || rec.complete != 0 {
		t.Errorf("Phase = %v, completions = %d; expected playing, 0", r.Phase(), rec.complete)
	}
}

func TestInvalidTransitions(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Round)
		op    func(*Round) error
	}{
		{"pause from idle", func(*Round) {}, (*Round).Pause},
		{"resume from idle", func(*Round) {}, (*Round).Resume},
		{"countdown done from idle", func(*Round) {}, (*Round).CountdownDone},
		{"pause from countdown", func(r *Round) { _ = r.Start() }, (*Round).Pause},
		{"start from countdown", func(r *Round) { _ = r.Start() }, (*Round).Start},
		{"resume from playing", func(r *Round) { _ = r.Start(); _ = r.CountdownDone() }, (*Round).Resume},
		{"start from playing", func(r *Round) { _ = r.Start(); _ = r.CountdownDone() }, (*Round).Start},
		{"pause from paused", func(r *Round) { _ = r.Start(); _ = r.CountdownDone(); _ = r.Pause() }, (*Round).Pause},
		{"start from paused", func(r *Round) { _ = r.Start(); _ = r.CountdownDone(); _ = r.Pause() }, (*Round).Start},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRound(t, 13)
			tt.setup(r)
			before := r.Snapshot()

			err := tt.op(r)
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("error = %v, expected ErrInvalidTransition", err)
			}

			after := r.Snapshot()
			if after.Phase != before.Phase || !slices.Equal(after.Grid, before.Grid) {
				t.Errorf("state changed: %v -> %v", before.Phase, after.Phase)
			}
		})
	}
}

func TestPlayAgainFromDone(t *testing.T) {
	r, rec := newTestRound(t, 14)
	startPlaying(t, r)
	for n := 1; n <= 50; n++ {
		r.Settle(r.Tap(n).Token)
	}
	if r.Phase() != PhaseDone {
		t.Fatalf("Phase = %v, expected done", r.Phase())
	}

	if err := r.Start(); err != nil {
		t.Fatalf("Start() from done error = %v", err)
	}
	mustVerify(t, r)
	if r.Progress() != 0 || r.Target() != 1 || r.Phase() != PhaseCountdown {
		t.Errorf("round not reset: progress %d target %d phase %v", r.Progress(), r.Target(), r.Phase())
	}
	if rec.complete != 1 {
		t.Errorf("RoundComplete fired %d times, expected 1", rec.complete)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	r, _ := newTestRound(t, 15)
	r.Init()
	s := r.Snapshot()
	for i := range s.Grid {
		s.Grid[i] = 99
	}
	mustVerify(t, r)
}

func TestVerifyDetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(*Round)
	}{
		{"duplicate", func(r *Round) {
			a, b := slices.Index(r.grid, 1), slices.Index(r.grid, 2)
			r.grid[b] = r.grid[a]
		}},
		{"above highest", func(r *Round) {
			r.grid[slices.Index(r.grid, 0)] = 11
		}},
		{"displayed mismatch", func(r *Round) {
			r.displayed = r.displayed[1:]
		}},
		{"missing tile", func(r *Round) {
			r.grid[slices.Index(r.grid, 5)] = 0
			r.displayed = slices.DeleteFunc(r.displayed, func(v int) bool { return v == 5 })
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRound(t, 16)
			startPlaying(t, r)
			tt.corrupt(r)
			if err := r.Verify(); !errors.Is(err, ErrCorruptGrid) {
				t.Errorf("Verify() = %v, expected ErrCorruptGrid", err)
			}
		})
	}
}

func TestSettlePanicsWhenTargetMissing(t *testing.T) {
	r, _ := newTestRound(t, 17)
	startPlaying(t, r)

	res := r.Tap(1)
	r.grid[slices.Index(r.grid, 1)] = 0

	defer func() {
		if recover() == nil {
			t.Error("Settle did not panic for a missing target")
		}
	}()
	r.Settle(res.Token)
}

func TestNilNotifier(t *testing.T) {
	r := NewRound(config.DefaultRules(), rand.New(rand.NewSource(1)), nil)
	startPlaying(t, r)
	r.Settle(r.Tap(1).Token)
	r.Settle(r.Tap(5).Token)
	if r.Progress() != 1 || r.Misses() != 1 {
		t.Errorf("Progress/Misses = %d/%d, expected 1/1", r.Progress(), r.Misses())
	}
}
