// Package prefs persists presentation preferences such as theme and grid-line
// visibility. These belong to the view layer and have no influence on game
// rules; losing the file simply falls back to defaults.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Prefs holds the persisted view preferences.
type Prefs struct {
	Theme    string `yaml:"theme"`
	ShowGrid bool   `yaml:"show_grid"`
}

// Default returns the preferences used when no file exists.
func Default() Prefs {
	return Prefs{
		Theme:    "classic",
		ShowGrid: false,
	}
}

// DefaultPath returns the standard preferences location, or empty if the
// home directory is unavailable.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake-tui", "prefs.yaml")
}

// Load reads preferences from the given path. A missing or unreadable file
// yields the defaults without error; only a present-but-corrupt file is
// surfaced.
func Load(path string) (Prefs, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}

	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("prefs: failed to parse %s: %w", path, err)
	}
	if p.Theme == "" {
		p.Theme = Default().Theme
	}
	return p, nil
}

// Save writes preferences to the given path, creating parent directories as
// needed.
func Save(path string, p Prefs) error {
	if path == "" {
		return nil
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("prefs: failed to encode: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("prefs: cannot create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("prefs: cannot write %s: %w", path, err)
	}
	return nil
}
