package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawText(0, 0, "ab")
	s.SetColor(2, 1, '█', core.ColorPink)
	s.SetColor(3, 1, '█', core.ColorPink)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, 6, lipgloss.Width(line))
	}
	assert.Contains(t, out, "ab")
	assert.Contains(t, out, "██")
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorPink; c++ {
		_, ok := colorStyles[c]
		assert.True(t, ok, "missing style for %s", c)
	}
}
