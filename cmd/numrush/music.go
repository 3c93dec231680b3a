package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var musicCmd = &cobra.Command{
	Use:   "music [on|off]",
	Short: "Show or set the background music preference",
	Long: `Without an argument, print whether background music is on.
With 'on' or 'off', store the new preference.

Examples:
  numrush music
  numrush music on`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"on", "off"},
	Run:       runMusic,
}

func runMusic(cmd *cobra.Command, args []string) {
	e, err := setup(cmd, false)
	if err != nil {
		fail("%v", err)
	}
	defer e.close()

	p := e.prefs()

	if len(args) == 1 {
		if err := e.requirePersistent(); err != nil {
			fail("%v", err)
		}
		var on bool
		switch strings.ToLower(args[0]) {
		case "on", "true":
			on = true
		case "off", "false":
			on = false
		default:
			fail("expected 'on' or 'off', got %q", args[0])
		}
		if err := p.SetMusicEnabled(on); err != nil {
			fail("%v", err)
		}
	}

	on, err := p.MusicEnabled()
	if err != nil {
		fail("%v", err)
	}
	state := "off"
	if on {
		state = "on"
	}
	fmt.Printf("Music: %s\n", state)
}
