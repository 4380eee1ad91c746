package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"snake-tui/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game configuration",
	Long: `Print the built-in game configuration as YAML. Save it to
~/.snake-tui/configs/snake.yaml or pass it to play with --config to
customize the game.

Examples:
  snake config
  snake config > my-snake.yaml
  snake play --config my-snake.yaml`,
	Run: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
