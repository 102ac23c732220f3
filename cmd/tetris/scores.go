package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 scores, the best score and overall statistics.

Examples:
  tetris scores
  tetris scores --tui
  tetris scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Show an interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the score history and best score")
}

func runScores(_ *cobra.Command, _ []string) {
	gameCfg := loadConfig()
	bestKey := gameCfg.Storage.BestScoreKey

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	switch {
	case flagScoresClear:
		if err = clearScores(store, bestKey); err == nil {
			fmt.Println("Scores cleared.")
		}
	case flagScoresTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		err = tui.RunScoreboard(store, tetris.GameID, bestKey, width, height)
	default:
		err = printScores(os.Stdout, store, bestKey)
	}

	// Close store before potential exit
	store.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the top 10 scores, the best score and totals to w.
func printScores(w io.Writer, store *storage.Store, bestKey string) error {
	scores, err := store.TopScores(tetris.GameID, 10)
	if err != nil {
		return err
	}
	best, err := store.BestScore(bestKey)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "High Scores - Tetris")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		if best > 0 {
			fmt.Fprintf(w, "Best: %d\n\n", best)
		}
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'tetris play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %-6s  %-5s  %s\n", "Rank", "Score", "Lines", "Level", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %-6s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-10d  %-6d  %-5d  %s\n", i+1, entry.Score, entry.Lines, entry.Level, dateStr)
	}

	highScore, err := store.HighScore(tetris.GameID)
	if err != nil {
		return err
	}
	stats, err := store.GameStats(tetris.GameID)
	if err != nil {
		return err
	}

	// The stored best survives a cleared history; the history can exist without it.
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d  Top game: %d\n", max(best, highScore), highScore)
	fmt.Fprintf(w, "Games: %d  Average: %.0f  Lines: %d\n", stats.GamesCount, stats.AvgScore, stats.TotalLines)
	return nil
}

func clearScores(store *storage.Store, bestKey string) error {
	if err := store.ClearScores(tetris.GameID); err != nil {
		return err
	}
	return store.ClearBestScore(bestKey)
}
