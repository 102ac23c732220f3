// Package config loads the YAML game configuration: key bindings, display
// options and the best-score storage key.
package config

import (
	"fmt"
	"strings"
)

// TetrisConfig is the full game configuration.
type TetrisConfig struct {
	Controls ControlsConfig `yaml:"controls"`
	Display  DisplayConfig  `yaml:"display"`
	Storage  StorageConfig  `yaml:"storage"`
}

// ControlsConfig lists the keys bound to each action.
// Key names follow Bubble Tea's KeyMsg.String() form ("left", "ctrl+c", " ").
type ControlsConfig struct {
	Left     []string `yaml:"left"`
	Right    []string `yaml:"right"`
	SoftDrop []string `yaml:"soft_drop"`
	Rotate   []string `yaml:"rotate"`
	HardDrop []string `yaml:"hard_drop"`
	Pause    []string `yaml:"pause"`
	Restart  []string `yaml:"restart"`
	Quit     []string `yaml:"quit"`
}

// DisplayConfig toggles optional HUD panels.
type DisplayConfig struct {
	ShowNext  bool `yaml:"show_next"`
	ShowStats bool `yaml:"show_stats"`
}

// StorageConfig configures best-score persistence.
type StorageConfig struct {
	BestScoreKey string `yaml:"best_score_key"`
}

// bindings returns the control lists with their config names, in display order.
func (c ControlsConfig) bindings() []namedKeys {
	return []namedKeys{
		{"left", c.Left},
		{"right", c.Right},
		{"soft_drop", c.SoftDrop},
		{"rotate", c.Rotate},
		{"hard_drop", c.HardDrop},
		{"pause", c.Pause},
		{"restart", c.Restart},
		{"quit", c.Quit},
	}
}

type namedKeys struct {
	name string
	keys []string
}

// Validate reports keys bound to more than one action and blank key names.
func (c TetrisConfig) Validate() error {
	owner := make(map[string]string)
	for _, b := range c.Controls.bindings() {
		for _, k := range b.keys {
			if strings.TrimSpace(k) == "" && k != " " {
				return fmt.Errorf("config: controls.%s: empty key name", b.name)
			}
			if prev, ok := owner[k]; ok && prev != b.name {
				return fmt.Errorf("config: key %q bound to both %s and %s", k, prev, b.name)
			}
			owner[k] = b.name
		}
	}
	return nil
}

// fillDefaults replaces empty sections with values from def.
func (c *TetrisConfig) fillDefaults(def TetrisConfig) {
	fill := func(dst *[]string, src []string) {
		if len(*dst) == 0 {
			*dst = append([]string(nil), src...)
		}
	}
	fill(&c.Controls.Left, def.Controls.Left)
	fill(&c.Controls.Right, def.Controls.Right)
	fill(&c.Controls.SoftDrop, def.Controls.SoftDrop)
	fill(&c.Controls.Rotate, def.Controls.Rotate)
	fill(&c.Controls.HardDrop, def.Controls.HardDrop)
	fill(&c.Controls.Pause, def.Controls.Pause)
	fill(&c.Controls.Restart, def.Controls.Restart)
	fill(&c.Controls.Quit, def.Controls.Quit)

	if c.Storage.BestScoreKey == "" {
		c.Storage.BestScoreKey = def.Storage.BestScoreKey
	}
}
