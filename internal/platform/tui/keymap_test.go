package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"snake-tui/internal/game"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMapKeyDirections(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key string
		dir game.Direction
	}{
		{"up", game.DirUp}, {"w", game.DirUp}, {"k", game.DirUp},
		{"down", game.DirDown}, {"s", game.DirDown}, {"j", game.DirDown},
		{"left", game.DirLeft}, {"a", game.DirLeft}, {"h", game.DirLeft},
		{"right", game.DirRight}, {"d", game.DirRight}, {"l", game.DirRight},
	}

	for _, tc := range tests {
		in := km.MapKey(keyMsg(tc.key))
		if in.Cmd != CmdNone || in.Dir != tc.dir {
			t.Errorf("MapKey(%q) = %+v, expected direction %v", tc.key, in, tc.dir)
		}
	}
}

func TestMapKeyCommands(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key string
		cmd Command
	}{
		{"q", CmdQuit}, {"ctrl+c", CmdQuit},
		{"p", CmdPause}, {"esc", CmdPause}, {" ", CmdPause},
		{"r", CmdRestart},
		{"g", CmdToggleGrid},
		{"t", CmdCycleTheme},
	}

	for _, tc := range tests {
		in := km.MapKey(keyMsg(tc.key))
		if in.Cmd != tc.cmd {
			t.Errorf("MapKey(%q) = %+v, expected command %v", tc.key, in, tc.cmd)
		}
		if in.Dir != game.DirNone {
			t.Errorf("MapKey(%q) should not carry a direction, got %v", tc.key, in.Dir)
		}
	}
}

func TestMapKeyUnbound(t *testing.T) {
	km := NewKeyMapper()

	in := km.MapKey(keyMsg("x"))
	if in.Cmd != CmdNone || in.Dir != game.DirNone {
		t.Errorf("unbound key should map to the zero input, got %+v", in)
	}
}
