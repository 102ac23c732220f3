// Package tetris adapts the falling-block engine to the arcade platform:
// it turns input frames into engine commands, derives the gravity clock
// from the fixed tick counter and draws snapshots into a core.Screen.
package tetris

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// GameID is the registry and score history key.
const GameID = "tetris"

const defaultTickRate = 60

var (
	settingsMu sync.RWMutex
	settings   = config.DefaultTetrisConfig()
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.TetrisConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = cfg
}

func currentConfig() config.TetrisConfig {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// Game implements registry.Game on top of engine.Engine.
type Game struct {
	eng  *engine.Engine
	cfg  config.TetrisConfig
	best registry.BestScoreStore

	screenW, screenH int
	frame            time.Duration // simulated time per tick
	tick             uint64

	tooSmall   bool
	autoPaused bool // paused by the engine because the window shrank
}

// New creates a game using the current package configuration.
func New() *Game {
	cfg := currentConfig()
	return &Game{
		cfg: cfg,
		eng: engine.New(engine.Config{BestKey: cfg.Storage.BestScoreKey}),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tetris"
}

// UseBestScores sets the best-score store used from the next Reset on.
func (g *Game) UseBestScores(store registry.BestScoreStore) {
	g.best = store
}

// Reset starts a new game. The engine is seeded from cfg.Seed so a seed and
// an input sequence always replay the same game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}

	var best engine.BestScores
	if g.best != nil {
		best = g.best
	}

	g.eng = engine.New(engine.Config{
		Seed:    cfg.Seed,
		Best:    best,
		BestKey: g.cfg.Storage.BestScoreKey,
	})
	g.frame = time.Second / time.Duration(tickRate)
	g.tick = 0
	g.tooSmall = false
	g.autoPaused = false

	g.eng.Start()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts to a new screen size without restarting. While the screen
// is too small the engine is held paused.
func (g *Game) Resize(width, height int) {
	g.screenW, g.screenH = width, height
	g.tooSmall = width < MinScreenW || height < MinScreenH

	switch {
	case g.tooSmall && g.eng.Status() == engine.StatusRunning:
		g.eng.Pause()
		g.autoPaused = true
	case !g.tooSmall && g.autoPaused:
		g.autoPaused = false
		if g.eng.Status() == engine.StatusPaused {
			g.eng.Pause()
		}
	}
}

// Step advances the game by one tick: it applies the frame's commands and
// then lets gravity run against the tick-derived clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Start from game over begins a fresh game on the same RNG stream.
	if in.Has(core.ActionRestart) && g.eng.Status() == engine.StatusOver {
		g.eng.Start()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.eng.Pause()
	}

	g.dispatch(in)
	g.eng.Frame(g.now())

	return core.StepResult{State: g.State()}
}

// dispatch maps actions to engine commands. The engine ignores them
// outside the Running state.
func (g *Game) dispatch(in core.InputFrame) {
	if in.Has(core.ActionRotate) {
		g.eng.Rotate()
	}
	if in.Has(core.ActionLeft) {
		g.eng.Move(-1, 0)
	}
	if in.Has(core.ActionRight) {
		g.eng.Move(1, 0)
	}
	if in.Has(core.ActionDown) {
		g.eng.SoftDrop()
	}
	if in.Has(core.ActionDrop) {
		g.eng.HardDrop()
	}
}

// now is the monotonic clock handed to the engine.
func (g *Game) now() time.Duration {
	return time.Duration(g.tick) * g.frame
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	snap := g.eng.Snapshot()
	return core.GameState{
		Score:    snap.Score,
		Lines:    snap.Lines,
		Level:    snap.Level,
		GameOver: snap.Status == engine.StatusOver,
		Paused:   snap.Status == engine.StatusPaused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

var (
	_ registry.Resizable     = (*Game)(nil)
	_ registry.BestScoreUser = (*Game)(nil)
)
