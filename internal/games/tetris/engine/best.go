package engine

import "sync"

// DefaultBestScoreKey is the key the best score is stored under unless configured otherwise.
const DefaultBestScoreKey = "tetris_highScore"

// BestScores persists a best score per key.
// BestScore returns 0 when nothing has been stored for the key yet.
type BestScores interface {
	BestScore(key string) (int, error)
	SetBestScore(key string, score int) error
}

// MemoryBestScores is an in-process BestScores used when no database is available.
type MemoryBestScores struct {
	mu     sync.Mutex
	scores map[string]int
}

// NewMemoryBestScores creates an empty in-memory best score table.
func NewMemoryBestScores() *MemoryBestScores {
	return &MemoryBestScores{scores: make(map[string]int)}
}

// BestScore implements BestScores.
func (m *MemoryBestScores) BestScore(key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scores[key], nil
}

// SetBestScore implements BestScores.
func (m *MemoryBestScores) SetBestScore(key string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores[key] = score
	return nil
}

var _ BestScores = (*MemoryBestScores)(nil)
