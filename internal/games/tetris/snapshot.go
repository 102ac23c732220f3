package tetris

import "github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"

// Snapshot captures the game for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	TooSmall bool
	Engine   engine.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		TooSmall: g.tooSmall,
		Engine:   g.eng.Snapshot(),
	}
}
