package engine

import (
	"math/rand"
	"sync"
	"time"
)

// Status is the session state.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusOver
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MoveResult is the outcome of a move attempt.
type MoveResult int

const (
	// Blocked means nothing changed.
	Blocked MoveResult = iota
	// Moved means the active piece was shifted.
	Moved
	// Placed means a blocked downward move locked the piece into the board.
	Placed
)

// String returns a human-readable result name.
func (r MoveResult) String() string {
	switch r {
	case Blocked:
		return "blocked"
	case Moved:
		return "moved"
	case Placed:
		return "placed"
	default:
		return "unknown"
	}
}

// Config configures a new Engine.
type Config struct {
	// Seed drives piece selection. The same seed and commands replay the same game.
	Seed int64

	// Best receives best score updates. Nil disables persistence.
	Best BestScores

	// BestKey is the key passed to Best. Defaults to DefaultBestScoreKey.
	BestKey string
}

// Engine owns one game session. All exported methods are safe to call from
// multiple goroutines; each call is applied atomically.
type Engine struct {
	mu sync.Mutex

	rng     *rand.Rand
	best    BestScores
	bestKey string

	board  Board
	active Piece
	next   Piece
	status Status

	score     int
	lines     int
	level     int
	placed    int
	bestScore int

	interval    time.Duration
	dropCounter time.Duration
	lastFrame   time.Duration
	haveFrame   bool
}

// New creates an idle engine.
func New(cfg Config) *Engine {
	key := cfg.BestKey
	if key == "" {
		key = DefaultBestScoreKey
	}

	e := &Engine{
		rng:     rand.New(rand.NewSource(cfg.Seed)),
		best:    cfg.Best,
		bestKey: key,
	}
	e.resetLocked()
	return e
}

// Start begins a new game from Idle or GameOver, or resumes a paused game.
// It does nothing while a game is already running.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.status {
	case StatusRunning:
		return
	case StatusPaused:
		e.status = StatusRunning
		e.haveFrame = false
		return
	}

	e.board = Board{}
	e.score = 0
	e.lines = 0
	e.level = 1
	e.placed = 0
	e.dropCounter = 0
	e.interval = GravityInterval(1)
	e.haveFrame = false
	e.active = SpawnPiece(RandomKind(e.rng))
	e.next = SpawnPiece(RandomKind(e.rng))
	e.bestScore = e.loadBest()
	e.status = StatusRunning
}

// Pause toggles between Running and Paused. Other states are unaffected.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.status {
	case StatusRunning:
		e.status = StatusPaused
	case StatusPaused:
		e.status = StatusRunning
		e.haveFrame = false
	}
}

// Reset returns the engine to Idle with an empty board from any state.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resetLocked()
}

func (e *Engine) resetLocked() {
	e.board = Board{}
	e.active = Piece{}
	e.next = Piece{}
	e.status = StatusIdle
	e.score = 0
	e.lines = 0
	e.level = 1
	e.placed = 0
	e.interval = GravityInterval(1)
	e.dropCounter = 0
	e.haveFrame = false
}

// Status returns the current session state.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// Move shifts the active piece by (dx, dy). A blocked downward move locks
// the piece and returns Placed. Outside Running it returns Blocked.
func (e *Engine) Move(dx, dy int) MoveResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.move(dx, dy)
}

func (e *Engine) move(dx, dy int) MoveResult {
	if e.status != StatusRunning {
		return Blocked
	}

	if !Collide(&e.board, e.active, dx, dy) {
		e.active.X += dx
		e.active.Y += dy
		return Moved
	}

	if dy > 0 {
		e.place()
		return Placed
	}
	return Blocked
}

// SoftDrop moves the active piece down one row, awarding SoftDropPoints when it moves.
func (e *Engine) SoftDrop() MoveResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	res := e.move(0, 1)
	if res == Moved {
		e.score += SoftDropPoints
	}
	return res
}

// HardDrop drops the active piece as far as it goes and locks it, awarding
// HardDropPoints per row travelled. It returns the rows travelled and the
// final move result (Placed while running, Blocked otherwise).
func (e *Engine) HardDrop() (rows int, res MoveResult) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for {
		res = e.move(0, 1)
		if res != Moved {
			return rows, res
		}
		rows++
		e.score += HardDropPoints
	}
}

// Rotate advances the active piece to its next rotation state, kicking one
// column left or right if needed. It returns false and leaves the piece
// untouched when no position fits or the game is not running.
func (e *Engine) Rotate() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status != StatusRunning {
		return false
	}

	rotated, ok := RotatePiece(&e.board, e.active)
	if !ok {
		return false
	}
	e.active = rotated
	return true
}

// Tick accumulates dt toward the gravity interval. Once the accumulated
// time exceeds the interval the active piece moves down one row and the
// counter restarts. The bool reports whether gravity stepped.
func (e *Engine) Tick(dt time.Duration) (MoveResult, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tick(dt)
}

func (e *Engine) tick(dt time.Duration) (MoveResult, bool) {
	if e.status != StatusRunning {
		return Blocked, false
	}
	if dt > 0 {
		e.dropCounter += dt
	}
	if e.dropCounter <= e.interval {
		return Blocked, false
	}
	e.dropCounter = 0
	return e.move(0, 1), true
}

// Frame drives gravity from a monotonic timestamp. The first frame after a
// start or resume only records the timestamp; later frames pass the elapsed
// time to Tick. Timestamps that go backwards count as zero elapsed time.
func (e *Engine) Frame(now time.Duration) (MoveResult, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status != StatusRunning {
		return Blocked, false
	}

	var dt time.Duration
	if e.haveFrame && now > e.lastFrame {
		dt = now - e.lastFrame
	}
	e.lastFrame = now
	e.haveFrame = true

	return e.tick(dt)
}

// place locks the active piece and either ends the game or clears lines and
// promotes the next piece.
func (e *Engine) place() {
	Lock(&e.board, e.active)
	e.placed++

	if e.active.Y <= 0 {
		e.status = StatusOver
		return
	}

	e.clearLines()

	e.active = e.next
	e.next = SpawnPiece(RandomKind(e.rng))
}

// clearLines removes full rows and applies score, level and speed changes.
func (e *Engine) clearLines() {
	board, n := ClearLines(e.board)
	if n == 0 {
		return
	}
	e.board = board

	e.lines += n
	e.score += LineClearScore(n, e.level)
	e.level = LevelForLines(e.lines)
	e.interval = GravityInterval(e.level)

	e.saveBest()
}

func (e *Engine) loadBest() int {
	if e.best == nil {
		return 0
	}
	best, err := e.best.BestScore(e.bestKey)
	if err != nil {
		return 0
	}
	return best
}

// saveBest persists the score when it beats the stored best.
// Persistence is best-effort; the game continues if the store fails.
func (e *Engine) saveBest() {
	stored := e.bestScore
	if e.best != nil {
		if v, err := e.best.BestScore(e.bestKey); err == nil {
			stored = v
		}
	}
	if e.score <= stored {
		e.bestScore = stored
		return
	}

	e.bestScore = e.score
	if e.best != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		e.best.SetBestScore(e.bestKey, e.score)
	}
}
