package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"snake-tui/internal/config"
	"snake-tui/internal/core"
	"snake-tui/internal/game"
	"snake-tui/internal/platform/tui"
	"snake-tui/internal/prefs"
	"snake-tui/internal/storage"
)

var (
	flagConfig string
	flagGrid   int
	flagSeed   int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in the local terminal",
	Long: `Start the game in the current terminal.

Controls:
  Arrows/WASD  - Steer
  Mouse drag   - Swipe to steer
  P/Esc/Space  - Pause
  R            - Restart (after game over)
  G            - Toggle grid lines
  T            - Cycle color theme
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play --grid 30
  snake play --seed 42
  snake play --config ./my-snake.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().IntVar(&flagGrid, "grid", 0, "Grid size override (0 = config value)")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagGrid > 0 {
		gameCfg.Board.GridSize = flagGrid
		if err := gameCfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Probe terminal size; keep the defaults when not a terminal
	rc := core.DefaultRuntimeConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickInterval = time.Duration(gameCfg.Board.TickIntervalMS) * time.Millisecond
	rc.Seed = flagSeed

	engine := game.New(game.Config{
		GridSize: gameCfg.Board.GridSize,
		Seed:     flagSeed,
	})

	prefsPath := prefs.DefaultPath()
	viewPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.ModelOptions{
		Engine:        engine,
		Store:         store,
		Config:        rc,
		Prefs:         viewPrefs,
		PrefsPath:     prefsPath,
		SwipeMinCells: gameCfg.Input.SwipeMinCells,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
