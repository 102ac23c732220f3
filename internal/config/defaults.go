package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Controls: ControlsConfig{
			Left:     []string{"left", "a"},
			Right:    []string{"right", "d"},
			SoftDrop: []string{"down", "s"},
			Rotate:   []string{"up", "w"},
			HardDrop: []string{" "},
			Pause:    []string{"p", "esc"},
			Restart:  []string{"r"},
			Quit:     []string{"q", "ctrl+c"},
		},
		Display: DisplayConfig{
			ShowNext:  true,
			ShowStats: true,
		},
		Storage: StorageConfig{
			BestScoreKey: engine.DefaultBestScoreKey,
		},
	}
}
