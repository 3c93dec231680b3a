package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/numrush/internal/leaderboard"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the fastest recorded rounds, best first.

Examples:
  numrush scores
  numrush scores clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

var scoresClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all leaderboard records",
	Args:  cobra.NoArgs,
	Run:   runScoresClear,
}

func init() {
	scoresCmd.AddCommand(scoresClearCmd)
}

func runScores(cmd *cobra.Command, _ []string) {
	e, err := setup(cmd, false)
	if err != nil {
		fail("opening leaderboard: %v", err)
	}
	defer e.close()

	records := e.board().Load()

	fmt.Println("NumRush Leaderboard")
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No records yet.")
		fmt.Println()
		fmt.Println("Run 'numrush play' to set the first one!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "----", "----")
	for i, r := range records {
		fmt.Printf("  %-4d  %-10s  %s\n", i+1, formatMs(r.Ms), r.Date.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, ok := leaderboard.Best(records); ok {
		fmt.Printf("Best: %s\n", formatMs(best.Ms))
	}
}

func runScoresClear(cmd *cobra.Command, _ []string) {
	e, err := setup(cmd, false)
	if err != nil {
		fail("opening leaderboard: %v", err)
	}
	defer e.close()

	if err := e.requirePersistent(); err != nil {
		fail("clearing leaderboard: %v", err)
	}
	if err := e.board().Clear(); err != nil {
		fail("clearing leaderboard: %v", err)
	}
	fmt.Println("Leaderboard cleared.")
}

func formatMs(ms int64) string {
	return fmt.Sprintf("%d.%03d s", ms/1000, ms%1000)
}
