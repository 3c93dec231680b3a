package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/numrush/internal/config"
	"github.com/vovakirdan/numrush/internal/leaderboard"
)

// Screen identifies the active view.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenGame
	ScreenResult
	ScreenLeaderboard
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenGame:
		return "game"
	case ScreenResult:
		return "result"
	case ScreenLeaderboard:
		return "leaderboard"
	default:
		return "unknown"
	}
}

// LastResult is the outcome of the most recently finished round.
type LastResult struct {
	Ms      int64
	Rank    int
	NewBest bool
}

// AppContext is the state shared by all screens. It is created once per
// program run and only changed through its setters.
type AppContext struct {
	screen   Screen
	previous Screen
	music    bool
	records  []leaderboard.Record
	last     *LastResult
	rules    config.Rules
	logger   *log.Logger
}

// NewAppContext creates the shared state starting on the home screen.
func NewAppContext(rules config.Rules, music bool, logger *log.Logger) *AppContext {
	return &AppContext{
		screen: ScreenHome,
		music:  music,
		rules:  rules,
		logger: logger,
	}
}

// Screen returns the active screen.
func (c *AppContext) Screen() Screen { return c.screen }

// Previous returns the screen that was active before the last navigation.
func (c *AppContext) Previous() Screen { return c.previous }

// Navigate switches to screen s.
func (c *AppContext) Navigate(s Screen) {
	if s == c.screen {
		return
	}
	c.logger.Debug("navigate", "from", c.screen, "to", s)
	c.previous = c.screen
	c.screen = s
}

// Music reports whether background music is on.
func (c *AppContext) Music() bool { return c.music }

// SetMusic records the music preference.
func (c *AppContext) SetMusic(on bool) { c.music = on }

// Records returns the last known leaderboard.
func (c *AppContext) Records() []leaderboard.Record { return c.records }

// SetRecords replaces the cached leaderboard.
func (c *AppContext) SetRecords(r []leaderboard.Record) { c.records = r }

// Last returns the most recent round result, or nil before the first round.
func (c *AppContext) Last() *LastResult { return c.last }

// SetLast stores the result of a finished round and the leaderboard it
// produced.
func (c *AppContext) SetLast(ms int64, records []leaderboard.Record) {
	c.records = records
	c.last = &LastResult{
		Ms:      ms,
		Rank:    leaderboard.Rank(ms, records),
		NewBest: leaderboard.IsNewBest(ms, records),
	}
}

// Rules returns the round rules in effect.
func (c *AppContext) Rules() config.Rules { return c.rules }

// Logger returns the application logger.
func (c *AppContext) Logger() *log.Logger { return c.logger }
