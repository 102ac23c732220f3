package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file should exist")
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.tetris/scores.db")
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(filepath.Join(home, ".tetris", "scores.db"))
	assert.NoError(t, err)
}

func TestStoreSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct{ score, lines, level int }{
		{100, 2, 1},
		{50, 1, 1},
		{1200, 14, 2},
		{100, 3, 1},
	} {
		_, err := store.SaveScore("tetris", s.score, s.lines, s.level)
		require.NoError(t, err)
	}
	_, err := store.SaveScore("other", 9999, 0, 1)
	require.NoError(t, err)

	scores, err := store.TopScores("tetris", 10)
	require.NoError(t, err)
	require.Len(t, scores, 4)

	assert.Equal(t, 1200, scores[0].Score)
	assert.Equal(t, 14, scores[0].Lines)
	assert.Equal(t, 2, scores[0].Level)
	// Equal scores keep insertion order
	assert.Equal(t, 2, scores[1].Lines)
	assert.Equal(t, 3, scores[2].Lines)
	assert.Equal(t, 50, scores[3].Score)
	assert.False(t, scores[0].CreatedAt.IsZero(), "created_at should be parsed")

	top2, err := store.TopScores("tetris", 2)
	require.NoError(t, err)
	assert.Len(t, top2, 2)
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetris")
	require.NoError(t, err)
	assert.Equal(t, 0, high, "empty history")

	store.SaveScore("tetris", 300, 3, 1)
	store.SaveScore("tetris", 40, 1, 1)
	store.SaveScore("other", 500, 0, 1)

	high, err = store.HighScore("tetris")
	require.NoError(t, err)
	assert.Equal(t, 300, high)

	require.NoError(t, store.ClearScores("tetris"))
	scores, err := store.TopScores("tetris", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)

	other, err := store.TopScores("other", 10)
	require.NoError(t, err)
	assert.Len(t, other, 1, "other games are not affected")
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GameStats("tetris")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.GamesCount)
	assert.True(t, empty.LastPlayed.IsZero())

	store.SaveScore("tetris", 100, 4, 1)
	store.SaveScore("tetris", 300, 10, 2)

	stats, err := store.GameStats("tetris")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 300, stats.HighScore)
	assert.InDelta(t, 200.0, stats.AvgScore, 0.001)
	assert.Equal(t, int64(14), stats.TotalLines)
	assert.False(t, stats.LastPlayed.IsZero())
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("tetris_highScore")
	require.NoError(t, err)
	assert.Equal(t, 0, best, "missing key reads as zero")

	require.NoError(t, store.SetBestScore("tetris_highScore", 340))
	require.NoError(t, store.SetBestScore("other_key", 7))

	best, err = store.BestScore("tetris_highScore")
	require.NoError(t, err)
	assert.Equal(t, 340, best)

	// Overwrites unconditionally; the caller decides what counts as better.
	require.NoError(t, store.SetBestScore("tetris_highScore", 100))
	best, err = store.BestScore("tetris_highScore")
	require.NoError(t, err)
	assert.Equal(t, 100, best)

	require.NoError(t, store.ClearBestScore("tetris_highScore"))
	best, err = store.BestScore("tetris_highScore")
	require.NoError(t, err)
	assert.Equal(t, 0, best)

	best, err = store.BestScore("other_key")
	require.NoError(t, err)
	assert.Equal(t, 7, best)
}

func TestStoreBestScoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.SetBestScore("k", 1200))
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	best, err := store.BestScore("k")
	require.NoError(t, err)
	assert.Equal(t, 1200, best)
}

func TestStoreConcurrentWrites(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 5 {
				_, err := store.SaveScore("tetris", i*10+j, 0, 1)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	stats, err := store.GameStats("tetris")
	require.NoError(t, err)
	assert.Equal(t, 40, stats.GamesCount)
}
