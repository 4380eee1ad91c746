package tui

import (
	"fmt"

	"snake-tui/internal/core"
	"snake-tui/internal/game"
)

const hudHeight = 2 // HUD text plus separator line

// FitsScreen reports whether a board of the given grid size fits dst,
// including the border and HUD.
func FitsScreen(dst *core.Screen, gridSize int) bool {
	return dst.Width() >= gridSize+2 && dst.Height() >= gridSize+2+hudHeight
}

// DrawBoard renders an engine snapshot into the screen buffer: HUD, border,
// the grid cells (snake / food / empty, optional grid dots), and a state
// overlay when the game is not actively running. The view only reads the
// snapshot; it never touches the engine.
func DrawBoard(dst *core.Screen, snap game.Snapshot, th Theme, showGrid bool, highScore int) {
	dst.Clear()

	drawHUD(dst, snap, th, highScore)

	if !FitsScreen(dst, snap.GridSize) {
		drawOverlay(dst, th, "Too small", "Resize")
		return
	}

	// Center the bordered board in the area below the HUD
	boardW := snap.GridSize + 2
	boardH := snap.GridSize + 2
	offX := core.Max(0, (dst.Width()-boardW)/2)
	offY := core.Max(hudHeight, hudHeight+(dst.Height()-hudHeight-boardH)/2)

	drawBorder(dst, th, offX, offY, boardW, boardH)

	// Grid decoration
	if showGrid {
		for y := 0; y < snap.GridSize; y++ {
			for x := 0; x < snap.GridSize; x++ {
				dst.SetColored(offX+1+x, offY+1+y, '·', th.Grid)
			}
		}
	}

	// Food
	if snap.Food.X >= 0 && snap.Food.Y >= 0 {
		dst.SetColored(offX+1+snap.Food.X, offY+1+snap.Food.Y, '*', th.Food)
	}

	// Snake, head drawn last so it wins any overlap in the buffer
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		seg := snap.Snake[i]
		r, c := 'o', th.Body
		if i == 0 {
			r, c = 'O', th.Head
		}
		dst.SetColored(offX+1+seg.X, offY+1+seg.Y, r, c)
	}

	switch snap.Phase() {
	case game.PhaseIdle:
		drawOverlay(dst, th, "Snake", "Press an arrow key to start")
	case game.PhasePaused:
		drawOverlay(dst, th, "Paused", "Press P to continue")
	case game.PhaseGameOver:
		drawOverlay(dst, th, "Game Over", "Press R to restart")
	case game.PhaseWon:
		drawOverlay(dst, th, "You Win!", fmt.Sprintf("Final Score: %d", snap.Score))
	}
}

// drawHUD draws the top status bar.
func drawHUD(dst *core.Screen, snap game.Snapshot, th Theme, highScore int) {
	hud := fmt.Sprintf(" Snake | Score: %d", snap.Score)
	if highScore > 0 {
		hud += fmt.Sprintf("  Best: %d", highScore)
	}

	dst.DrawTextColored(0, 0, hud, th.HUD)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, '─', th.Grid)
	}
}

// drawBorder draws the playfield frame.
func drawBorder(dst *core.Screen, th Theme, x, y, w, h int) {
	dst.SetColored(x, y, '┌', th.Border)
	dst.SetColored(x+w-1, y, '┐', th.Border)
	dst.SetColored(x, y+h-1, '└', th.Border)
	dst.SetColored(x+w-1, y+h-1, '┘', th.Border)
	for i := 1; i < w-1; i++ {
		dst.SetColored(x+i, y, '─', th.Border)
		dst.SetColored(x+i, y+h-1, '─', th.Border)
	}
	for i := 1; i < h-1; i++ {
		dst.SetColored(x, y+i, '│', th.Border)
		dst.SetColored(x+w-1, y+i, '│', th.Border)
	}
}

// drawOverlay draws a centered two-line message box, shrunk to fit the
// screen when it is narrower than the message.
func drawOverlay(dst *core.Screen, th Theme, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len(line1), len(line2))
	boxW := core.Min(maxLen+4, w)
	boxH := core.Min(5, h)
	boxX := core.Max(0, (w-boxW)/2)
	boxY := core.Max(0, (h-boxH)/2)

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.SetColored(x, y, ' ', core.ColorDefault)
		}
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	centerText(dst, line1, boxY+1, th.HUD)
	centerText(dst, line2, boxY+3, th.HUD)
}

// centerText draws text centered horizontally at the given row, truncated
// when it is wider than the screen.
func centerText(dst *core.Screen, text string, y int, c core.Color) {
	if y < 0 || y >= dst.Height() {
		return
	}
	if len(text) > dst.Width() {
		text = text[:dst.Width()]
	}
	x := core.Max(0, (dst.Width()-len(text))/2)
	dst.DrawTextColored(x, y, text, c)
}
