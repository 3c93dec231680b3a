// numrush is a terminal speed game: tap the numbers 1 to 50 in order as fast
// as you can.
//
// Usage:
//
//	numrush                  - Play (same as 'numrush play')
//	numrush play             - Play a round
//	numrush scores           - Show the leaderboard
//	numrush scores clear     - Delete all leaderboard records
//	numrush music [on|off]   - Show or set the background music preference
//	numrush rules            - Print the effective round rules as YAML
//
// Global flags:
//
//	--fps <rate>         - Timer refresh rate (default: 60)
//	--seed <value>       - RNG seed for reproducible boards
//	--db <path>          - Database path (default: ~/.numrush/numrush.db)
//	--rules <path>       - Custom rules YAML
//	--config <path>      - Settings file (default: ~/.numrush/config.yaml)
//	--log-file <path>    - Log file (default: ~/.numrush/numrush.log)
//	--log-level <level>  - debug, info, warn or error
//	--sound              - Enable sound effects (default: true)
//
// Every flag can also be set through a NUMRUSH_* environment variable,
// for example NUMRUSH_DB or NUMRUSH_LOG_LEVEL.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/numrush/internal/config"
)

// flagSettings is the settings file path; everything else is read through viper.
var flagSettings string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "numrush",
	Short: "NumRush - tap 1 to 50 as fast as you can",
	Long: `NumRush is a reaction game for the terminal. Thirty slots hold the
numbers 1 to 10 in random places; tap them in order. Every correct tap
reveals the next number in the freed slot, until all fifty are cleared.

Available commands:
  play     - Play a round (default)
  scores   - View or clear the leaderboard
  music    - Show or set the music preference
  rules    - Print the effective round rules

Examples:
  numrush
  numrush play --seed 42
  numrush scores
  numrush rules > my-rules.yaml && numrush --rules my-rules.yaml`,
	Run: runPlay,
}

func init() {
	addFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(musicCmd)
	rootCmd.AddCommand(rulesCmd)
}

// addFlags registers the flags every command reads through config.LoadSettings.
func addFlags(flags *pflag.FlagSet) {
	flags.Int("fps", config.DefaultFPS, "Timer refresh rate (frames per second)")
	flags.Int64("seed", 0, "RNG seed (0 = random based on time)")
	flags.String("db", config.DefaultDBPath, "Path to the game database")
	flags.String("rules", "", "Path to a custom rules YAML")
	flags.String("log-file", config.DefaultLogFile, "Path to the log file")
	flags.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	flags.Bool("sound", true, "Enable sound effects")
	flags.StringVar(&flagSettings, "config", "", "Path to settings YAML (default: ~/.numrush/config.yaml)")
}
