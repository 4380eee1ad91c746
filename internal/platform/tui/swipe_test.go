package tui

import (
	"testing"

	"snake-tui/internal/game"
)

func TestSwipeDirections(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		dir            game.Direction
	}{
		{"right", 10, 10, 16, 10, game.DirRight},
		{"left", 10, 10, 4, 11, game.DirLeft},
		{"down", 10, 10, 11, 16, game.DirDown},
		{"up", 10, 10, 10, 3, game.DirUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewSwipeDecoder(3)
			d.Press(tc.x0, tc.y0)
			dir, ok := d.Release(tc.x1, tc.y1)
			if !ok {
				t.Fatalf("swipe (%d,%d)->(%d,%d) should decode", tc.x0, tc.y0, tc.x1, tc.y1)
			}
			if dir != tc.dir {
				t.Errorf("decoded %v, expected %v", dir, tc.dir)
			}
		})
	}
}

func TestSwipeDominantAxis(t *testing.T) {
	d := NewSwipeDecoder(3)

	// Diagonal drag: horizontal delta wins.
	d.Press(10, 10)
	dir, ok := d.Release(18, 14)
	if !ok || dir != game.DirRight {
		t.Errorf("diagonal swipe decoded (%v, %v), expected DirRight", dir, ok)
	}

	// Vertical delta wins.
	d.Press(10, 10)
	dir, ok = d.Release(12, 18)
	if !ok || dir != game.DirDown {
		t.Errorf("diagonal swipe decoded (%v, %v), expected DirDown", dir, ok)
	}
}

func TestSwipeBelowThreshold(t *testing.T) {
	d := NewSwipeDecoder(3)

	d.Press(10, 10)
	if dir, ok := d.Release(11, 10); ok {
		t.Errorf("short drag should be dropped, decoded %v", dir)
	}

	// A plain click is not a swipe.
	d.Press(5, 5)
	if _, ok := d.Release(5, 5); ok {
		t.Error("click should not decode as a swipe")
	}
}

func TestSwipeRequiresPress(t *testing.T) {
	d := NewSwipeDecoder(3)

	if _, ok := d.Release(20, 20); ok {
		t.Error("release without press should be ignored")
	}

	// Each press arms exactly one release.
	d.Press(0, 0)
	if _, ok := d.Release(10, 0); !ok {
		t.Fatal("armed release should decode")
	}
	if _, ok := d.Release(20, 0); ok {
		t.Error("second release should be ignored")
	}
}

func TestSwipeCancel(t *testing.T) {
	d := NewSwipeDecoder(3)

	d.Press(0, 0)
	d.Cancel()
	if _, ok := d.Release(10, 0); ok {
		t.Error("cancelled gesture should not decode")
	}
}
