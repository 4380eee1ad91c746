package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"snake-tui/internal/platform/tui"
	"snake-tui/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Print the top scores recorded by previous games.

Examples:
  snake scores
  snake scores --interactive
  snake scores --clear`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All scores cleared.")
		return
	}

	if flagInteractive {
		if err := tui.RunScoreboard(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	entries, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading scores: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet. Play a game first: snake play")
		return
	}

	fmt.Println("Top scores:")
	fmt.Println()
	for i, e := range entries {
		fmt.Printf("  %2d. %5d   %s\n", i+1, e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetStats()
	if err == nil {
		fmt.Println()
		fmt.Printf("  Games played: %d   Best: %d   Average: %.1f\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore)
	}
}
