package engine

import "time"

// Snapshot is a read-only copy of the engine state for renderers and tests.
type Snapshot struct {
	Board     Board
	Active    Piece
	Next      Piece
	HasPieces bool // false while Idle

	Status   Status
	Score    int
	Best     int
	Lines    int
	Level    int
	Placed   int
	Interval time.Duration
}

// Speed returns the gravity speed in drops per second.
func (s Snapshot) Speed() float64 {
	return DropsPerSecond(s.Interval)
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Snapshot{
		Board:     e.board,
		Active:    e.active,
		Next:      e.next,
		HasPieces: e.active.Kind.Valid(),
		Status:    e.status,
		Score:     e.score,
		Best:      max(e.bestScore, e.score),
		Lines:     e.lines,
		Level:     e.level,
		Placed:    e.placed,
		Interval:  e.interval,
	}
}

// Board returns a copy of the board.
func (e *Engine) Board() Board {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board
}

// Score returns the current score.
func (e *Engine) Score() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.score
}
