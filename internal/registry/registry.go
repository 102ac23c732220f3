// Package registry maps game IDs to factories. Games register themselves in
// init() so the CLI and SSH server can create them by name.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game is driven by the platform at a fixed tick rate.
// Implementations hold no terminal state; the platform maps keys to
// actions and turns the rendered Screen into output.
type Game interface {
	// ID returns a unique identifier, also used as the score history key.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh game. Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst. The screen is pre-cleared.
	Render(dst *core.Screen)

	// State returns score, game over and pause flags.
	State() core.GameState
}

// Resizable is implemented by games that can adapt to a new screen size
// without restarting. The platform falls back to Reset otherwise.
type Resizable interface {
	Resize(width, height int)
}

// BestScoreStore persists a single best score per key.
type BestScoreStore interface {
	BestScore(key string) (int, error)
	SetBestScore(key string, score int) error
}

// BestScoreUser is implemented by games that keep their own best score.
// The platform hands over its store before the first Reset.
type BestScoreUser interface {
	UseBestScores(store BestScoreStore)
}

// Factory creates a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Title returns the display title for a registered game, or the ID itself.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}
