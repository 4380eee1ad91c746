// Package config provides YAML-based game configuration loading for the
// snake platform.
package config

import "fmt"

// GameConfig contains all tunable parameters for a snake session.
type GameConfig struct {
	Board BoardConfig `yaml:"board"`
	Input InputConfig `yaml:"input"`
}

// BoardConfig defines the grid and simulation cadence.
type BoardConfig struct {
	GridSize       int `yaml:"grid_size"`        // Side length of the square grid
	TickIntervalMS int `yaml:"tick_interval_ms"` // Milliseconds between simulation ticks
}

// InputConfig defines parameters for the input adapter.
type InputConfig struct {
	SwipeMinCells int `yaml:"swipe_min_cells"` // Minimum drag distance to count as a swipe
}

// Validate checks that the configuration is playable.
func (c GameConfig) Validate() error {
	if c.Board.GridSize < 4 {
		return fmt.Errorf("config: grid_size %d is below the minimum of 4", c.Board.GridSize)
	}
	if c.Board.TickIntervalMS < 16 {
		return fmt.Errorf("config: tick_interval_ms %d is below the minimum of 16", c.Board.TickIntervalMS)
	}
	if c.Input.SwipeMinCells < 1 {
		return fmt.Errorf("config: swipe_min_cells %d must be at least 1", c.Input.SwipeMinCells)
	}
	return nil
}
