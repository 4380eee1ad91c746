package game

// Phase describes the coarse lifecycle state of a game.
type Phase string

const (
	PhaseIdle     Phase = "idle" // Waiting for the first intent
	PhasePlaying  Phase = "playing"
	PhasePaused   Phase = "paused"
	PhaseGameOver Phase = "game_over"
	PhaseWon      Phase = "won" // Board completely filled
)

// Snapshot is an immutable copy of the engine state, taken once per render
// pass by the view layer and by tests asserting on transitions. Mutating a
// snapshot never affects the engine.
type Snapshot struct {
	GridSize int
	Snake    []Point // Head at index 0; deep copy
	Food     Point   // (-1,-1) when the board is full
	Heading  Direction
	Score    int
	Started  bool
	Paused   bool
	Over     bool
	Won      bool
}

// Snapshot returns a copy of the current engine state.
func (e *Engine) Snapshot() Snapshot {
	body := make([]Point, len(e.snake))
	copy(body, e.snake)

	return Snapshot{
		GridSize: e.gridSize,
		Snake:    body,
		Food:     e.food,
		Heading:  e.heading,
		Score:    e.score,
		Started:  e.started,
		Paused:   e.paused,
		Over:     e.over,
		Won:      e.won,
	}
}

// Head returns the snake's head cell.
func (s Snapshot) Head() Point {
	return s.Snake[0]
}

// Phase derives the lifecycle phase from the state flags.
func (s Snapshot) Phase() Phase {
	switch {
	case s.Won:
		return PhaseWon
	case s.Over:
		return PhaseGameOver
	case s.Paused:
		return PhasePaused
	case !s.Started:
		return PhaseIdle
	default:
		return PhasePlaying
	}
}
