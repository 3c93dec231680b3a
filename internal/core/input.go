package core

// Action is a semantic intent derived from a key press or mouse event.
// Screens react to actions rather than raw keys so bindings live in one place.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up, W, K - move cursor up
	ActionDown           // Down, S, J - move cursor down
	ActionLeft           // Left, A - move cursor left
	ActionRight          // Right, D - move cursor right
	ActionTap            // Enter, Space - tap the tile under the cursor
	ActionPause          // P, Esc - pause or resume the round
	ActionHome           // H - abandon and return to the home screen
	ActionRetry          // R - play again from the result screen
	ActionBoard          // Tab, B - open the leaderboard
	ActionMusic          // M - toggle background music
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionTap:
		return "Tap"
	case ActionPause:
		return "Pause"
	case ActionHome:
		return "Home"
	case ActionRetry:
		return "Retry"
	case ActionBoard:
		return "Leaderboard"
	case ActionMusic:
		return "Music"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
