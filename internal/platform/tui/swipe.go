package tui

import (
	"snake-tui/internal/core"
	"snake-tui/internal/game"
)

// SwipeDecoder turns mouse press/release pairs into directional intents,
// standing in for touch gestures. The axis with the larger delta wins and
// the drag must cover at least minCells cells; anything shorter is treated
// as an accidental click and dropped.
type SwipeDecoder struct {
	minCells int
	tracking bool
	startX   int
	startY   int
}

// NewSwipeDecoder creates a decoder with the given minimum drag distance.
func NewSwipeDecoder(minCells int) *SwipeDecoder {
	if minCells < 1 {
		minCells = 1
	}
	return &SwipeDecoder{minCells: minCells}
}

// Press records the start of a potential swipe.
func (d *SwipeDecoder) Press(x, y int) {
	d.tracking = true
	d.startX = x
	d.startY = y
}

// Release completes a swipe. Returns the decoded direction and true when the
// drag met the distance threshold; otherwise DirNone and false. A release
// without a matching press is ignored.
func (d *SwipeDecoder) Release(x, y int) (game.Direction, bool) {
	if !d.tracking {
		return game.DirNone, false
	}
	d.tracking = false

	dx := x - d.startX
	dy := y - d.startY

	if core.Abs(dx) >= core.Abs(dy) {
		if core.Abs(dx) < d.minCells {
			return game.DirNone, false
		}
		if dx > 0 {
			return game.DirRight, true
		}
		return game.DirLeft, true
	}

	if core.Abs(dy) < d.minCells {
		return game.DirNone, false
	}
	if dy > 0 {
		return game.DirDown, true
	}
	return game.DirUp, true
}

// Cancel discards any in-flight gesture, e.g. when focus is lost.
func (d *SwipeDecoder) Cancel() {
	d.tracking = false
}
