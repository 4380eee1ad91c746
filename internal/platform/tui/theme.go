package tui

import (
	"snake-tui/internal/core"
)

// Theme assigns colors to the board's visual elements. The view maps each
// grid cell to snake/food/empty and colors it through the active theme.
type Theme struct {
	Name   string
	Head   core.Color
	Body   core.Color
	Food   core.Color
	Border core.Color
	Grid   core.Color
	HUD    core.Color
}

var themes = []Theme{
	{
		Name:   "classic",
		Head:   core.ColorBrightGreen,
		Body:   core.ColorGreen,
		Food:   core.ColorBrightRed,
		Border: core.ColorWhite,
		Grid:   core.ColorGray,
		HUD:    core.ColorWhite,
	},
	{
		Name:   "neon",
		Head:   core.ColorBrightCyan,
		Body:   core.ColorBrightMagenta,
		Food:   core.ColorBrightYellow,
		Border: core.ColorBrightBlue,
		Grid:   core.ColorGray,
		HUD:    core.ColorBrightCyan,
	},
	{
		Name:   "mono",
		Head:   core.ColorBrightWhite,
		Body:   core.ColorWhite,
		Food:   core.ColorBrightWhite,
		Border: core.ColorGray,
		Grid:   core.ColorGray,
		HUD:    core.ColorWhite,
	},
}

// DefaultTheme returns the first built-in theme.
func DefaultTheme() Theme {
	return themes[0]
}

// ThemeByName looks a theme up by name, falling back to the default for
// unknown names.
func ThemeByName(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return DefaultTheme()
}

// NextTheme returns the theme after the named one, wrapping around. Used by
// the in-game theme cycle key.
func NextTheme(name string) Theme {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)]
		}
	}
	return DefaultTheme()
}

// ThemeNames lists the built-in theme names in cycle order.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
