// Package tui provides the Bubble Tea integration for the snake platform.
// It owns the three collaborators around the engine: the timer driving
// ticks, the input adapter translating keys and mouse swipes to intents,
// and the view drawing engine snapshots.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that fires a TickMsg after the given
// interval. The model re-arms it on every tick, forming the fixed-cadence
// timer the engine is driven by.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
