// Package game implements the snake simulation: the grid, the snake body,
// food placement, heading reconciliation, and terminal-state detection.
// It is driven entirely from outside: an input adapter submits directional
// intents and a timer advances the simulation one tick at a time. The engine
// performs no I/O of its own.
package game

import (
	"math/rand"
	"time"
)

// Direction is a cardinal heading, or DirNone before the first intent.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reverse of a direction. DirNone has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Delta returns the per-tick cell displacement for a direction.
// Up decrements y, down increments it; the origin is the top-left corner.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Point is a cell coordinate on the grid.
type Point struct {
	X, Y int
}

// Config holds the parameters fixed at engine construction.
type Config struct {
	GridSize int   // Side length of the square grid
	Seed     int64 // RNG seed; 0 means derive from current time
}

// DefaultConfig returns the canonical engine configuration.
func DefaultConfig() Config {
	return Config{
		GridSize: 20,
		Seed:     0,
	}
}

// Engine owns the complete game state and is its only mutator. All operations
// are silent no-ops when their preconditions fail; the caller never branches
// on engine failure. The engine is not goroutine-safe: intents and ticks must
// arrive from a single logical event loop.
type Engine struct {
	gridSize int
	rng      *rand.Rand

	snake   []Point // Head at index 0
	food    Point
	heading Direction

	started bool
	paused  bool
	over    bool
	won     bool
	score   int
}

// New creates an engine with a freshly initialized state bundle.
func New(cfg Config) *Engine {
	if cfg.GridSize <= 0 {
		cfg.GridSize = DefaultConfig().GridSize
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		gridSize: cfg.GridSize,
		rng:      rand.New(rand.NewSource(seed)),
	}
	e.Reset()
	return e
}

// GridSize returns the immutable side length of the grid.
func (e *Engine) GridSize() int {
	return e.gridSize
}

// Reset restores the canonical initial state: a length-1 snake at the grid
// center, no heading, score zero, all flags cleared, and fresh food. Valid at
// any time, including mid-game or after game over. The RNG stream continues
// across resets; construct a new engine to replay a seed.
func (e *Engine) Reset() {
	center := e.gridSize / 2
	e.snake = []Point{{X: center, Y: center}}
	e.heading = DirNone
	e.started = false
	e.paused = false
	e.over = false
	e.won = false
	e.score = 0
	e.placeFood()
}

// SubmitIntent requests a heading change. The first intent in any direction
// starts the game. After that, the exact reverse of the current heading is
// rejected so the head cannot fold into the second segment. The latest
// accepted intent overwrites any earlier one submitted in the same tick
// interval; intents are never queued. Intents are accepted while paused and
// take effect on the first tick after resume.
func (e *Engine) SubmitIntent(d Direction) {
	if e.over || e.won || d == DirNone {
		return
	}

	if !e.started {
		e.heading = d
		e.started = true
		return
	}

	if d == e.heading.Opposite() {
		return
	}
	e.heading = d
}

// Tick advances the simulation by exactly one step. It is a no-op while the
// game is over, won, paused, or not yet started.
func (e *Engine) Tick() {
	if e.over || e.won || e.paused || !e.started || e.heading == DirNone {
		return
	}

	dx, dy := e.heading.Delta()
	head := e.snake[0]
	next := Point{X: head.X + dx, Y: head.Y + dy}

	if next.X < 0 || next.X >= e.gridSize || next.Y < 0 || next.Y >= e.gridSize {
		e.over = true
		return
	}

	eating := next == e.food

	// On a normal move the tail cell is vacated this tick, so the head may
	// enter it. On an eating move the tail stays, so the whole body counts.
	checkLen := len(e.snake)
	if !eating {
		checkLen--
	}
	for i := 0; i < checkLen; i++ {
		if e.snake[i] == next {
			e.over = true
			return
		}
	}

	e.snake = append([]Point{next}, e.snake...)

	if eating {
		e.score++
		e.placeFood()
		return
	}

	e.snake = e.snake[:len(e.snake)-1]
}

// Pause freezes the tick transition. No-op once the game has ended.
func (e *Engine) Pause() {
	if e.over || e.won {
		return
	}
	e.paused = true
}

// Resume lifts a pause. No-op once the game has ended.
func (e *Engine) Resume() {
	if e.over || e.won {
		return
	}
	e.paused = false
}

// TogglePause flips the paused flag. No-op once the game has ended.
func (e *Engine) TogglePause() {
	if e.over || e.won {
		return
	}
	e.paused = !e.paused
}

// placeFood puts food on a uniformly chosen empty cell. When the snake
// occupies every cell there is nothing left to place: the game is won and
// the food moves off-grid.
func (e *Engine) placeFood() {
	empty := make([]Point, 0, e.gridSize*e.gridSize-len(e.snake))
	for y := 0; y < e.gridSize; y++ {
		for x := 0; x < e.gridSize; x++ {
			p := Point{X: x, Y: y}
			if !e.isSnakeAt(p) {
				empty = append(empty, p)
			}
		}
	}

	if len(empty) == 0 {
		e.won = true
		e.food = Point{X: -1, Y: -1}
		return
	}

	e.food = empty[e.rng.Intn(len(empty))]
}

// isSnakeAt reports whether any segment occupies the given cell.
func (e *Engine) isSnakeAt(p Point) bool {
	for _, seg := range e.snake {
		if seg == p {
			return true
		}
	}
	return false
}
