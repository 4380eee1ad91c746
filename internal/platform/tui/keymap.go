package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"snake-tui/internal/game"
)

// Command is a discrete control event decoded from input, as opposed to a
// directional intent.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdPause
	CmdRestart
	CmdToggleGrid
	CmdCycleTheme
)

// Input is one decoded input event: either a directional intent (Dir set,
// Cmd == CmdNone) or a control command.
type Input struct {
	Cmd Command
	Dir game.Direction
}

// KeyMapper translates Bubble Tea key messages to engine inputs.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an input event.
// Arrow keys, WASD, and vim keys steer; p pauses, r restarts, g toggles the
// grid, t cycles themes, q or ctrl+c quits.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) Input {
	switch msg.String() {
	case "ctrl+c", "q":
		return Input{Cmd: CmdQuit}
	case "up", "w", "k":
		return Input{Dir: game.DirUp}
	case "down", "s", "j":
		return Input{Dir: game.DirDown}
	case "left", "a", "h":
		return Input{Dir: game.DirLeft}
	case "right", "d", "l":
		return Input{Dir: game.DirRight}
	case "p", "esc", " ":
		return Input{Cmd: CmdPause}
	case "r":
		return Input{Cmd: CmdRestart}
	case "g":
		return Input{Cmd: CmdToggleGrid}
	case "t":
		return Input{Cmd: CmdCycleTheme}
	}

	return Input{}
}
