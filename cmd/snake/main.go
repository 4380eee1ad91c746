// snake is a terminal snake game.
//
// Usage:
//
//	snake play               - Play in the local terminal
//	snake scores             - Show high scores
//	snake serve              - Start SSH server for remote play
//	snake config             - Print the default game configuration
//
// Global flags:
//
//	--db <path>     - Set database path (default: ~/.snake-tui/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is a terminal rendition of the classic grid game: steer the
snake onto food to grow, avoid the walls and your own tail.

Available commands:
  play     - Play in the local terminal
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the default game configuration

Examples:
  snake play
  snake play --grid 30
  snake scores --interactive
  snake serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake-tui/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
