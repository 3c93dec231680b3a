package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/numrush/internal/core"
)

// KeyMap defines the key bindings shared by all screens.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Tap   key.Binding
	Pause key.Binding
	Home  key.Binding
	Retry key.Binding
	Board key.Binding
	Music key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Tap: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "tap"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Home: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "home"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Board: key.NewBinding(
			key.WithKeys("tab", "b"),
			key.WithHelp("tab", "leaderboard"),
		),
		Music: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "music"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HelpKeys adapts a subset of bindings to help.KeyMap.
type HelpKeys []key.Binding

func (h HelpKeys) ShortHelp() []key.Binding  { return h }
func (h HelpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h} }

// HomeHelp returns the bindings shown on the home screen.
func (k KeyMap) HomeHelp() HelpKeys {
	return HelpKeys{k.Up, k.Down, k.Tap, k.Board, k.Music, k.Quit}
}

// GameHelp returns the bindings shown while playing.
func (k KeyMap) GameHelp() HelpKeys {
	return HelpKeys{k.Up, k.Left, k.Tap, k.Pause, k.Quit}
}

// PauseHelp returns the bindings shown on the pause overlay.
func (k KeyMap) PauseHelp() HelpKeys {
	resume := key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p/esc", "resume"))
	return HelpKeys{resume, k.Home, k.Quit}
}

// ResultHelp returns the bindings shown on the result screen.
func (k KeyMap) ResultHelp() HelpKeys {
	return HelpKeys{k.Up, k.Down, k.Tap, k.Retry, k.Board, k.Home}
}

// BoardHelp returns the bindings shown on the leaderboard.
func (k KeyMap) BoardHelp() HelpKeys {
	back := key.NewBinding(key.WithKeys("esc", "h", "tab", "b"), key.WithHelp("esc", "back"))
	return HelpKeys{k.Up, k.Down, back, k.Quit}
}

// KeyMapper translates Bubble Tea key messages to semantic actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the underlying bindings.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action (may be ActionNone).
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Tap):
		return core.ActionTap
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Home):
		return core.ActionHome
	case key.Matches(msg, k.Retry):
		return core.ActionRetry
	case key.Matches(msg, k.Board):
		return core.ActionBoard
	case key.Matches(msg, k.Music):
		return core.ActionMusic
	}
	return core.ActionNone
}
