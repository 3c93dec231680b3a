package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/numrush/internal/core"
	"github.com/vovakirdan/numrush/internal/game"
)

var pauseOptions = []string{"Resume", "Home"}

// startRound lays out a fresh board and begins the countdown.
func (m App) startRound() (tea.Model, tea.Cmd) {
	m.teardown()
	if err := m.round.Start(); err != nil {
		m.ctx.Logger().Error("cannot start round", "err", err)
		return m, nil
	}

	m.watch = core.NewStopwatch(m.opts.Clock)
	m.countdown = 0
	m.cursor = 0
	m.paused = menuState{}
	m.ctx.Navigate(ScreenGame)
	m.ctx.Logger().Info("round started", "session", m.session)

	return m, countdownCmd(m.session, m.countdownDelay(0))
}

// teardown discards the current round. The timer stops, and pending
// countdown, frame and settle messages become stale.
func (m *App) teardown() {
	m.round.Abandon()
	m.watch.Stop()
	m.session++
}

// countdownDelay returns how long step i stays on screen. The last step is
// followed by the tail before play begins.
func (m App) countdownDelay(i int) time.Duration {
	cd := m.ctx.Rules().Countdown
	if i < len(cd.Steps) {
		return cd.Step
	}
	return cd.Tail
}

func (m App) handleCountdown(msg countdownMsg) (tea.Model, tea.Cmd) {
	if msg.Session != m.session || m.round.Phase() != game.PhaseCountdown {
		return m, nil
	}

	m.countdown++
	if m.countdown <= len(m.ctx.Rules().Countdown.Steps) {
		return m, countdownCmd(m.session, m.countdownDelay(m.countdown))
	}

	if err := m.round.CountdownDone(); err != nil {
		m.ctx.Logger().Error("countdown", "err", err)
		return m, nil
	}
	m.watch.Start()
	return m, frameCmd(m.session, m.opts.Config.FrameInterval())
}

func (m App) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	if msg.Session != m.session || m.ctx.Screen() != ScreenGame {
		return m, nil
	}
	switch m.round.Phase() {
	case game.PhasePlaying, game.PhasePaused:
		return m, frameCmd(m.session, m.opts.Config.FrameInterval())
	}
	return m, nil
}

func (m App) updateGame(action core.Action) (tea.Model, tea.Cmd) {
	switch m.round.Phase() {
	case game.PhasePlaying:
		return m.updatePlaying(action)
	case game.PhasePaused:
		return m.updatePaused(action)
	}
	return m, nil
}

func (m App) updatePlaying(action core.Action) (tea.Model, tea.Cmd) {
	rules := m.ctx.Rules()
	cols := rules.GridColumns

	switch action {
	case core.ActionUp:
		if m.cursor-cols >= 0 {
			m.cursor -= cols
		}
	case core.ActionDown:
		if m.cursor+cols < rules.GridSize {
			m.cursor += cols
		}
	case core.ActionLeft:
		if m.cursor%cols > 0 {
			m.cursor--
		}
	case core.ActionRight:
		if m.cursor%cols < cols-1 && m.cursor+1 < rules.GridSize {
			m.cursor++
		}
	case core.ActionTap:
		return m, m.tapSlot(m.cursor)
	case core.ActionPause:
		if err := m.round.Pause(); err == nil {
			m.watch.Pause()
			m.paused = menuState{}
		}
	}
	return m, nil
}

func (m App) updatePaused(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionUp:
		m.paused.move(-1, len(pauseOptions))
	case core.ActionDown:
		m.paused.move(1, len(pauseOptions))
	case core.ActionPause:
		return m.resume()
	case core.ActionHome:
		return m.leaveRound()
	case core.ActionTap:
		if m.paused.cursor == 0 {
			return m.resume()
		}
		return m.leaveRound()
	}
	return m, nil
}

func (m App) resume() (tea.Model, tea.Cmd) {
	if err := m.round.Resume(); err != nil {
		return m, nil
	}
	if m.round.Phase() == game.PhaseDone {
		// The last number settled during the pause.
		return m, m.finish()
	}
	m.watch.Resume()
	return m, nil
}

// leaveRound abandons the round and returns home.
func (m App) leaveRound() (tea.Model, tea.Cmd) {
	m.teardown()
	m.ctx.Navigate(ScreenHome)
	m.ctx.Logger().Info("round abandoned")
	return m, nil
}

// tapSlot taps whatever number is in slot; empty slots do nothing.
func (m App) tapSlot(slot int) tea.Cmd {
	s := m.round.Snapshot()
	if slot < 0 || slot >= len(s.Grid) || s.Grid[slot] == 0 {
		return nil
	}
	res := m.round.Tap(s.Grid[slot])
	if !res.Accepted() {
		return nil
	}
	return settleCmd(res)
}

func (m App) handleClick(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.round.Phase() != game.PhasePlaying {
		return m, nil
	}

	rules := m.ctx.Rules()
	slot := gridLayout(m.width, rules.GridColumns).IndexAt(msg.X, msg.Y, rules.GridSize)
	if slot < 0 {
		return m, nil
	}
	m.cursor = slot
	return m, m.tapSlot(slot)
}

func (m App) handleSettle(msg settleMsg) (tea.Model, tea.Cmd) {
	res := m.round.Settle(msg.Token)
	if !res.Applied {
		return m, nil
	}

	if err := m.round.Verify(); err != nil {
		m.ctx.Logger().Error("board corrupted, round discarded", "err", err)
		return m.leaveRound()
	}

	if !res.Completed {
		return m, nil
	}
	return m, m.finish()
}

// finish stops the timer and saves the finished round.
func (m App) finish() tea.Cmd {
	m.watch.Stop()
	ms := m.watch.ElapsedMs()
	m.ctx.Logger().Info("round finished", "ms", ms, "misses", m.round.Misses())
	return saveCmd(m.opts.Board, ms)
}

func (m App) handleSaved(msg savedMsg) (tea.Model, tea.Cmd) {
	m.ctx.SetLast(msg.Ms, msg.Records)
	m.table.SetRows(boardRows(msg.Records))
	if m.ctx.Screen() != ScreenGame {
		return m, nil
	}
	m.result = menuState{}
	m.ctx.Navigate(ScreenResult)
	return m, nil
}

func (m App) viewGame() string {
	rules := m.ctx.Rules()
	layout := gridLayout(m.width, rules.GridColumns)
	gridW, gridH := layout.Size(rules.GridSize)

	if m.width < gridW || m.height < headerHeight+gridH+2 {
		msg := fmt.Sprintf("Terminal too small\nneed %dx%d, have %dx%d",
			gridW, headerHeight+gridH+2, m.width, m.height)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	s := m.round.Snapshot()

	var b strings.Builder
	b.WriteString(m.viewHeader(s))
	b.WriteString("\n")

	var body string
	switch s.Phase {
	case game.PhaseCountdown:
		body = lipgloss.Place(gridW, gridH, lipgloss.Center, lipgloss.Center,
			overlayStyle.Render(titleStyle.Render(m.countdownText())))
	case game.PhasePaused:
		body = lipgloss.Place(gridW, gridH, lipgloss.Center, lipgloss.Center,
			overlayStyle.Render(titleStyle.Render("PAUSED")+"\n\n"+renderMenu(pauseOptions, m.paused.cursor, 0)))
	default:
		body = renderGrid(s, rules.GridColumns, m.cursor)
	}
	b.WriteString(lipgloss.NewStyle().MarginLeft(layout.Origin.X).Render(body))
	b.WriteString("\n\n")

	keys := m.keys.Keys().GameHelp()
	if s.Phase == game.PhasePaused {
		keys = m.keys.Keys().PauseHelp()
	}
	b.WriteString(centerText(m.help.View(keys), m.width))

	return b.String()
}

// viewHeader renders exactly headerHeight lines: stats, progress bar, spacer.
func (m App) viewHeader(s game.Snapshot) string {
	total := m.ctx.Rules().TotalNumbers

	next := fmt.Sprintf("%d", s.Target)
	if s.Phase == game.PhaseDone {
		next = "-"
	}
	stats := fmt.Sprintf("⏱ %s   Next %s   Misses %d",
		accentStyle.Render(formatElapsed(m.watch.ElapsedMs())),
		titleStyle.Render(next),
		s.Misses)

	return centerText(stats, m.width) + "\n" +
		centerText(renderProgress(s.Progress, total, 30), m.width) + "\n"
}

func (m App) countdownText() string {
	steps := m.ctx.Rules().Countdown.Steps
	if len(steps) == 0 {
		return ""
	}
	return steps[min(m.countdown, len(steps)-1)]
}
