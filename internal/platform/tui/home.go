package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/numrush/internal/core"
	"github.com/vovakirdan/numrush/internal/leaderboard"
)

const (
	homeStart = iota
	homeBoard
	homeMusic
	homeQuit
)

func (m App) homeOptions() []string {
	music := "Music: Off"
	if m.ctx.Music() {
		music = "Music: On"
	}
	return []string{"Start", "Leaderboard", music, "Quit"}
}

func (m App) updateHome(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionUp:
		m.home.move(-1, len(m.homeOptions()))
	case core.ActionDown:
		m.home.move(1, len(m.homeOptions()))
	case core.ActionBoard:
		return m.openBoard()
	case core.ActionMusic:
		m.toggleMusic()
	case core.ActionTap:
		switch m.home.cursor {
		case homeStart:
			return m.startRound()
		case homeBoard:
			return m.openBoard()
		case homeMusic:
			m.toggleMusic()
		case homeQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m App) viewHome() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("N U M R U S H"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render("Tap 1 → 50 in order, as fast as you can"), m.width))
	b.WriteString("\n\n")

	if best, ok := leaderboard.Best(m.ctx.Records()); ok {
		b.WriteString(centerText("Best "+accentStyle.Render(formatElapsed(best.Ms)), m.width))
	} else {
		b.WriteString(centerText(dimStyle.Render("No record yet"), m.width))
	}
	b.WriteString("\n\n")

	b.WriteString(renderMenu(m.homeOptions(), m.home.cursor, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.keys.Keys().HomeHelp()), m.width))

	return b.String()
}
