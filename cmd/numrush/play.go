package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/numrush/internal/core"
	"github.com/vovakirdan/numrush/internal/platform/sound"
	"github.com/vovakirdan/numrush/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start NumRush in the terminal.

Controls:
  Mouse click       - Tap a number
  Arrows/WASD       - Move the cursor
  Enter/Space       - Tap the number under the cursor
  P/Esc             - Pause / resume
  H                 - Home (from pause)
  R                 - Retry (from results)
  Tab               - Leaderboard
  M                 - Toggle music
  Q/Ctrl+C          - Quit

Examples:
  numrush play
  numrush play --seed 42
  numrush play --rules ./quick.yaml --sound=false`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	e, err := setup(cmd, true)
	if err != nil {
		fail("%v", err)
	}
	defer e.close()

	// Get terminal size early so the first frame is laid out correctly
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: e.settings.FPS,
		Seed:     e.settings.Seed,
	}

	var sink sound.Sink = sound.Nop{}
	if e.settings.Sound {
		player := sound.NewPlayer(e.logger)
		if err := player.Init(); err == nil {
			sink = player
		}
	}
	defer sink.Close()

	err = tui.Run(tui.Options{
		Rules:  e.rules,
		Board:  e.board(),
		Prefs:  e.prefs(),
		Sound:  sink,
		Logger: e.logger,
		Config: cfg,
	})
	if err != nil {
		e.logger.Error("program exited", "err", err)
		fail("%v", err)
	}
}
