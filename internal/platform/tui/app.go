package tui

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/numrush/internal/config"
	"github.com/vovakirdan/numrush/internal/core"
	"github.com/vovakirdan/numrush/internal/game"
	"github.com/vovakirdan/numrush/internal/leaderboard"
	"github.com/vovakirdan/numrush/internal/platform/sound"
	"github.com/vovakirdan/numrush/internal/prefs"
	"github.com/vovakirdan/numrush/internal/storage"
)

// Options wires the application's collaborators.
// Nil fields fall back to in-memory or silent implementations.
type Options struct {
	Rules  config.Rules
	Board  *leaderboard.Board
	Prefs  *prefs.Prefs
	Sound  sound.Sink
	Logger *log.Logger
	Config core.RuntimeConfig
	Clock  core.Clock
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Rules.Validate() != nil {
		o.Rules = config.DefaultRules()
	}
	if o.Board == nil {
		o.Board = leaderboard.New(storage.NewMemory(), o.Rules.LeaderboardCap, o.Logger)
	}
	if o.Prefs == nil {
		o.Prefs = prefs.New(storage.NewMemory())
	}
	if o.Sound == nil {
		o.Sound = sound.Nop{}
	}
	if o.Clock == nil {
		o.Clock = core.SystemClock()
	}
	if o.Config.Seed == 0 {
		o.Config.Seed = time.Now().UnixNano()
	}
	return o
}

// App is the root Bubble Tea model. It routes messages to the active screen.
type App struct {
	ctx    *AppContext
	opts   Options
	keys   *KeyMapper
	help   help.Model
	width  int
	height int

	// Game screen
	round     *game.Round
	watch     *core.Stopwatch
	session   uint64 // Bumped whenever a round starts or is torn down
	countdown int    // Countdown steps already shown
	cursor    int    // Keyboard cursor over grid slots
	paused    menuState

	home   menuState
	result menuState
	table  table.Model

	quitting bool
}

// menuState is the cursor of a vertical option list.
type menuState struct {
	cursor int
}

func (s *menuState) move(delta, n int) {
	if n == 0 {
		return
	}
	s.cursor = core.Clamp(s.cursor+delta, 0, n-1)
}

// NewApp creates the root model.
func NewApp(opts Options) App {
	opts = opts.withDefaults()

	music, err := opts.Prefs.MusicEnabled()
	if err != nil {
		opts.Logger.Warn("could not read music preference", "err", err)
	}

	ctx := NewAppContext(opts.Rules, music, opts.Logger)
	notify := game.MultiNotifier{opts.Sound, eventLog{opts.Logger}}
	rng := rand.New(rand.NewSource(opts.Config.Seed))

	h := help.New()
	h.ShowAll = false

	return App{
		ctx:    ctx,
		opts:   opts,
		keys:   NewKeyMapper(),
		help:   h,
		width:  opts.Config.ScreenW,
		height: opts.Config.ScreenH,
		round:  game.NewRound(opts.Rules, rng, notify),
		watch:  core.NewStopwatch(opts.Clock),
		table:  newBoardTable(opts.Config.ScreenW, opts.Config.ScreenH),
	}
}

// Context returns the shared application state.
func (m App) Context() *AppContext {
	return m.ctx
}

// Init loads the leaderboard and applies the stored music preference.
func (m App) Init() tea.Cmd {
	m.opts.Sound.SetMusic(m.ctx.Music())
	return loadCmd(m.opts.Board)
}

// Update handles messages and updates the model state.
func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.ctx.Screen() == ScreenGame {
			return m.handleClick(msg)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = newBoardTable(msg.Width, msg.Height)
		m.table.SetRows(boardRows(m.ctx.Records()))
		return m, nil

	case countdownMsg:
		return m.handleCountdown(msg)

	case FrameMsg:
		return m.handleFrame(msg)

	case settleMsg:
		return m.handleSettle(msg)

	case savedMsg:
		return m.handleSaved(msg)

	case recordsMsg:
		m.ctx.SetRecords(msg)
		m.table.SetRows(boardRows(msg))
		return m, nil
	}

	return m, nil
}

// handleKey routes keyboard input to the active screen.
func (m App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.teardown()
		m.quitting = true
		return m, tea.Quit
	}

	switch m.ctx.Screen() {
	case ScreenHome:
		return m.updateHome(action)
	case ScreenGame:
		return m.updateGame(action)
	case ScreenResult:
		return m.updateResult(action)
	case ScreenLeaderboard:
		return m.updateBoard(msg, action)
	}
	return m, nil
}

// toggleMusic flips and persists the music preference.
func (m App) toggleMusic() {
	on, err := m.opts.Prefs.ToggleMusic()
	if err != nil {
		m.ctx.Logger().Warn("could not save music preference", "err", err)
		on = !m.ctx.Music()
	}
	m.ctx.SetMusic(on)
	m.opts.Sound.SetMusic(on)
}

// View renders the active screen.
func (m App) View() string {
	if m.quitting {
		return ""
	}

	switch m.ctx.Screen() {
	case ScreenGame:
		return m.viewGame()
	case ScreenResult:
		return m.viewResult()
	case ScreenLeaderboard:
		return m.viewBoard()
	default:
		return m.viewHome()
	}
}

// eventLog records round events at debug level.
type eventLog struct {
	logger *log.Logger
}

func (e eventLog) Correct(n int) { e.logger.Debug("tap", "n", n, "ok", true) }
func (e eventLog) Wrong(n int) { e.logger.Debug("tap", "n", n, "ok", false) }
func (e eventLog) RoundComplete() { e.logger.Debug("round complete") }

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewApp(opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Tiles are clickable
	)

	_, err := p.Run()
	return err
}
