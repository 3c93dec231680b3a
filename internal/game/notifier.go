package game

// Notifier receives the discrete semantic events of a round.
// It is a sink only: the round never inspects results, and implementations
// must not call back into the round.
type Notifier interface {
	// Correct is called when the target number is tapped.
	Correct(n int)
	// Wrong is called when any other number is tapped.
	Wrong(n int)
	// RoundComplete is called exactly once, when the last number settles.
	RoundComplete()
}

// NopNotifier discards all events.
type NopNotifier struct{}

func (NopNotifier) Correct(int) {}
func (NopNotifier) Wrong(int) {}
func (NopNotifier) RoundComplete() {}

// MultiNotifier fans events out to several notifiers in order.
type MultiNotifier []Notifier

func (m MultiNotifier) Correct(n int) {
	for _, x := range m {
		x.Correct(n)
	}
}

func (m MultiNotifier) Wrong(n int) {
	for _, x := range m {
		x.Wrong(n)
	}
}

func (m MultiNotifier) RoundComplete() {
	for _, x := range m {
		x.RoundComplete()
	}
}
