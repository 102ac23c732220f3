package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(openStore(t), tetris.GameID, "tetris_highScore", 80, 24)

	view := m.View()
	assert.Contains(t, view, "HIGH SCORES - Tetris")
	assert.Contains(t, view, "No scores recorded yet.")
	assert.Contains(t, view, "Best 0")
}

func TestScoreboardShowsScores(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveScore(tetris.GameID, 1200, 10, 2)
	require.NoError(t, err)
	_, err = store.SaveScore(tetris.GameID, 300, 3, 1)
	require.NoError(t, err)
	require.NoError(t, store.SetBestScore("tetris_highScore", 1200))

	m := NewScoreboardModel(store, tetris.GameID, "tetris_highScore", 100, 30)
	require.NoError(t, m.err)
	require.Len(t, m.scores, 2)
	assert.Equal(t, 1200, m.scores[0].Score)

	view := m.View()
	assert.Contains(t, view, "1200")
	assert.Contains(t, view, "Best 1200")
	assert.Contains(t, view, "Games 2")
	assert.Contains(t, view, "Lines 13")
}

func TestScoreboardRefreshAndQuit(t *testing.T) {
	store := openStore(t)
	m := NewScoreboardModel(store, tetris.GameID, "tetris_highScore", 80, 24)
	require.Empty(t, m.scores)

	_, err := store.SaveScore(tetris.GameID, 40, 1, 1)
	require.NoError(t, err)

	next, _ := m.Update(runeKey('r'))
	m = next.(ScoreboardModel)
	assert.Len(t, m.scores, 1)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, tetris.GameID, "tetris_highScore", 80, 24)
	assert.NoError(t, m.err)
	assert.Contains(t, m.View(), "No scores recorded yet.")
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "   ab", centerText("ab", 8))
	assert.Equal(t, " a\n bc", centerText("a\nbc", 4))
	assert.Equal(t, "toolong", centerText("toolong", 3))
}

func TestScoreboardTableHeight(t *testing.T) {
	tests := []struct {
		window, want int
	}{
		{5, 3},
		{13, 3},
		{24, 14},
		{500, maxScores},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, tableHeight(tc.window), "window height %d", tc.window)
	}
}
