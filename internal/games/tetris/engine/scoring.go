package engine

import "time"

// Scoring and speed constants. These are part of the game rules, not tunables.
const (
	LinesPerLevel  = 10
	SoftDropPoints = 1
	HardDropPoints = 2

	BaseInterval = 1000 * time.Millisecond
	IntervalStep = 100 * time.Millisecond
	MinInterval  = 100 * time.Millisecond
)

// LinePoints is the base award for clearing 0-4 rows with a single placement.
var LinePoints = [...]int{0, 40, 100, 300, 1200}

// LineClearScore returns the points for clearing n rows at the given level.
func LineClearScore(n, level int) int {
	if n < 0 || n >= len(LinePoints) {
		return 0
	}
	return LinePoints[n] * level
}

// LevelForLines returns the level reached after clearing total rows.
func LevelForLines(total int) int {
	return total/LinesPerLevel + 1
}

// GravityInterval returns the time between automatic drops at a level.
func GravityInterval(level int) time.Duration {
	return max(MinInterval, BaseInterval-time.Duration(level-1)*IntervalStep)
}

// DropsPerSecond converts a gravity interval into a speed figure for display.
func DropsPerSecond(interval time.Duration) float64 {
	if interval <= 0 {
		return 0
	}
	return float64(time.Second) / float64(interval)
}
