package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMap holds the game key bindings. It implements help.KeyMap.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	SoftDrop   key.Binding
	Rotate     key.Binding
	HardDrop   key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// NewKeyMap builds bindings from the configured controls.
func NewKeyMap(c config.ControlsConfig) KeyMap {
	return KeyMap{
		Left:       binding(c.Left, "left"),
		Right:      binding(c.Right, "right"),
		SoftDrop:   binding(c.SoftDrop, "soft drop"),
		Rotate:     binding(c.Rotate, "rotate"),
		HardDrop:   binding(c.HardDrop, "hard drop"),
		Pause:      binding(c.Pause, "pause"),
		Restart:    binding(c.Restart, "restart"),
		Quit:       binding(c.Quit, "quit"),
		Screenshot: binding([]string{"ctrl+s"}, "screenshot"),
	}
}

// DefaultKeyMap returns the bindings from the built-in configuration.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultTetrisConfig().Controls)
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

// helpKeys renders a key list for the help footer.
func helpKeys(keys []string) string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		switch k {
		case " ":
			names = append(names, "space")
		case "left":
			names = append(names, "←")
		case "right":
			names = append(names, "→")
		case "up":
			names = append(names, "↑")
		case "down":
			names = append(names, "↓")
		default:
			names = append(names, k)
		}
	}
	return strings.Join(names, "/")
}

// Action translates a key press into a game action.
// Returns ActionNone for unbound keys.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.SoftDrop):
		return core.ActionDown
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate
	case key.Matches(msg, k.HardDrop):
		return core.ActionDrop
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.SoftDrop, k.HardDrop, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Rotate},
		{k.SoftDrop, k.HardDrop},
		{k.Pause, k.Restart, k.Screenshot, k.Quit},
	}
}
