package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/numrush/internal/core"
	"github.com/vovakirdan/numrush/internal/leaderboard"
)

const (
	resultRetry = iota
	resultBoard
	resultHome
)

var resultOptions = []string{"Retry", "Leaderboard", "Home"}

func (m App) updateResult(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionUp:
		m.result.move(-1, len(resultOptions))
	case core.ActionDown:
		m.result.move(1, len(resultOptions))
	case core.ActionRetry:
		return m.startRound()
	case core.ActionBoard:
		return m.openBoard()
	case core.ActionHome:
		m.ctx.Navigate(ScreenHome)
	case core.ActionMusic:
		m.toggleMusic()
	case core.ActionTap:
		switch m.result.cursor {
		case resultRetry:
			return m.startRound()
		case resultBoard:
			return m.openBoard()
		case resultHome:
			m.ctx.Navigate(ScreenHome)
		}
	}
	return m, nil
}

func (m App) viewResult() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("FINISHED"), m.width))
	b.WriteString("\n\n")

	last := m.ctx.Last()
	if last == nil {
		b.WriteString(centerText(dimStyle.Render("No result"), m.width))
	} else {
		b.WriteString(centerText(accentStyle.Render(formatElapsed(last.Ms)), m.width))
		b.WriteString("\n")
		if last.NewBest {
			b.WriteString(centerText(badgeStyle.Render("NEW BEST"), m.width))
		}
		b.WriteString("\n\n")

		if best, ok := leaderboard.Best(m.ctx.Records()); ok {
			b.WriteString(centerText("Best "+formatElapsed(best.Ms), m.width))
			b.WriteString("\n")
		}
		b.WriteString(centerText(m.rankText(last.Rank), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(dimStyle.Render(fmt.Sprintf("Misses %d", m.round.Misses())), m.width))
	}
	b.WriteString("\n\n")

	b.WriteString(renderMenu(resultOptions, m.result.cursor, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.keys.Keys().ResultHelp()), m.width))

	return b.String()
}

func (m App) rankText(rank int) string {
	if rank > m.opts.Board.Cap() || rank > len(m.ctx.Records()) {
		return dimStyle.Render("Not on the leaderboard")
	}
	return fmt.Sprintf("Rank #%d of %d", rank, len(m.ctx.Records()))
}
