package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in game configuration.
func Default() GameConfig {
	return GameConfig{
		Board: BoardConfig{
			GridSize:       20,
			TickIntervalMS: 150,
		},
		Input: InputConfig{
			SwipeMinCells: 3,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
