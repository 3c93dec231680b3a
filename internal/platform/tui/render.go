package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/numrush/internal/core"
	"github.com/vovakirdan/numrush/internal/game"
)

// Tile geometry in terminal cells. A tile is a bordered box, so its content
// is two cells narrower and one line tall.
const (
	tileW        = 8
	tileH        = 3
	tileGapX     = 1
	tileGapY     = 0
	headerHeight = 3
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	accentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	badgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("232")).
			Background(lipgloss.Color("220")).
			Padding(0, 1)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 4).
			Align(lipgloss.Center)

	menuSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	menuItem = lipgloss.NewStyle().
			Padding(0, 1)

	tileBase = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(tileW - 2).
			Align(lipgloss.Center)

	tileEmpty   = tileBase.BorderForeground(lipgloss.Color("236"))
	tileCursor  = tileBase.BorderForeground(lipgloss.Color("229"))
	tileCorrect = tileBase.
			BorderForeground(lipgloss.Color("42")).
			Foreground(lipgloss.Color("232")).
			Background(lipgloss.Color("42"))
	tileWrong = tileBase.
			BorderForeground(lipgloss.Color("196")).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("196"))

	barFull  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	barEmpty = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// gridLayout returns where the board is drawn for a screen of the given width.
// Rendering and mouse hit-testing both go through it.
func gridLayout(width, cols int) core.GridLayout {
	g := core.GridLayout{Cols: cols, CellW: tileW, CellH: tileH, GapX: tileGapX, GapY: tileGapY}
	w, _ := g.Size(cols)
	g.Origin = core.NewRect(max((width-w)/2, 0), headerHeight, 0, 0)
	return g
}

// renderTile draws a single grid slot.
func renderTile(value int, flash game.Flash, cursor bool) string {
	if value == 0 {
		style := tileEmpty
		if cursor {
			style = tileCursor
		}
		return style.Render("")
	}

	style := tileBase
	switch {
	case flash.Number == value && flash.Kind == game.FlashCorrect:
		style = tileCorrect
	case flash.Number == value && flash.Kind == game.FlashWrong:
		style = tileWrong
	case cursor:
		style = tileCursor.Bold(true)
	}
	return style.Render(fmt.Sprintf("%d", value))
}

// renderGrid draws the board rows, left aligned.
func renderGrid(s game.Snapshot, cols, cursor int) string {
	if cols <= 0 {
		cols = 1
	}
	gap := strings.Repeat(" ", tileGapX)

	var rows []string
	for start := 0; start < len(s.Grid); start += cols {
		end := min(start+cols, len(s.Grid))
		parts := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				parts = append(parts, gap)
			}
			parts = append(parts, renderTile(s.Grid[i], s.Flash, i == cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderProgress draws a fixed width progress bar with a counter.
func renderProgress(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	filled := core.Clamp(done*width/total, 0, width)
	return barFull.Render(strings.Repeat("█", filled)) +
		barEmpty.Render(strings.Repeat("░", width-filled)) +
		fmt.Sprintf(" %d/%d", done, total)
}

// formatElapsed renders a duration as seconds with milliseconds: "SS.mmm s".
func formatElapsed(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%02d.%03d s", ms/1000, ms%1000)
}

// formatDate renders a record date as "M/D HH:MM" in local time.
func formatDate(t time.Time) string {
	return t.Local().Format("1/2 15:04")
}

// medal returns the decoration for a 1-based leaderboard position.
func medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("%d", rank)
	}
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// renderMenu draws a vertical list of options with the cursor highlighted.
func renderMenu(options []string, cursor, width int) string {
	lines := make([]string, len(options))
	for i, o := range options {
		if i == cursor {
			lines[i] = centerText(menuSelected.Render("▶ "+o), width)
		} else {
			lines[i] = centerText(menuItem.Render("  "+o), width)
		}
	}
	return strings.Join(lines, "\n")
}
