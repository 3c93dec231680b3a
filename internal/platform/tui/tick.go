// Package tui provides the Bubble Tea front end for NumRush.
// It owns screen navigation, input mapping and every timer-driven message;
// the round rules live in the game package.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/numrush/internal/game"
	"github.com/vovakirdan/numrush/internal/leaderboard"
)

// schedule delivers a message after a delay. Tests replace it to fire
// immediately.
var schedule = tea.Tick

// FrameMsg triggers a redraw of the running timer.
type FrameMsg struct {
	Session uint64
}

// countdownMsg advances the pre-round countdown.
type countdownMsg struct {
	Session uint64
}

// settleMsg applies the deferred part of a tap.
type settleMsg struct {
	Token game.Token
}

// savedMsg reports that a finished round has been written to the leaderboard.
type savedMsg struct {
	Ms      int64
	Records []leaderboard.Record
}

// frameCmd returns a command that requests the next timer frame.
func frameCmd(session uint64, interval time.Duration) tea.Cmd {
	return schedule(interval, func(time.Time) tea.Msg {
		return FrameMsg{Session: session}
	})
}

func countdownCmd(session uint64, d time.Duration) tea.Cmd {
	return schedule(d, func(time.Time) tea.Msg {
		return countdownMsg{Session: session}
	})
}

func settleCmd(res game.TapResult) tea.Cmd {
	return schedule(res.Delay, func(time.Time) tea.Msg {
		return settleMsg{Token: res.Token}
	})
}

// saveCmd persists a finished round off the update loop.
func saveCmd(board *leaderboard.Board, ms int64) tea.Cmd {
	return func() tea.Msg {
		return savedMsg{Ms: ms, Records: board.Save(ms)}
	}
}

// loadCmd reads the leaderboard off the update loop.
func loadCmd(board *leaderboard.Board) tea.Cmd {
	return func() tea.Msg {
		return recordsMsg(board.Load())
	}
}

// recordsMsg carries a freshly loaded leaderboard.
type recordsMsg []leaderboard.Record
