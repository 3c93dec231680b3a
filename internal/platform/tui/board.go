package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/numrush/internal/core"
	"github.com/vovakirdan/numrush/internal/leaderboard"
)

// newBoardTable creates the leaderboard table sized for the terminal.
func newBoardTable(width, height int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Time", Width: 12},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Clamp(height-8, 3, leaderboard.DefaultCap+1)), // Leave room for title and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// boardRows converts records to table rows, best first.
func boardRows(records []leaderboard.Record) []table.Row {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{
			medal(i + 1),
			formatElapsed(r.Ms),
			formatDate(r.Date),
		}
	}
	return rows
}

// openBoard shows the leaderboard and refreshes it from storage.
func (m App) openBoard() (tea.Model, tea.Cmd) {
	m.table.SetRows(boardRows(m.ctx.Records()))
	m.table.GotoTop()
	m.ctx.Navigate(ScreenLeaderboard)
	return m, loadCmd(m.opts.Board)
}

func (m App) updateBoard(msg tea.KeyMsg, action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionUp, core.ActionDown:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	case core.ActionPause, core.ActionHome, core.ActionBoard, core.ActionTap:
		back := m.ctx.Previous()
		if back == ScreenLeaderboard || back == ScreenGame {
			back = ScreenHome
		}
		m.ctx.Navigate(back)
	case core.ActionMusic:
		m.toggleMusic()
	}
	return m, nil
}

func (m App) viewBoard() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("LEADERBOARD"), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	if len(m.ctx.Records()) == 0 {
		content = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render("No records yet.\nFinish a round to set one!")
	} else {
		content = m.table.View()
	}
	b.WriteString(centerText(boxStyle.Render(content), m.width))

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys.Keys().BoardHelp()), m.width))

	return b.String()
}
