package tetris

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// Layout in screen cells. Each board cell is two characters wide so the
// well looks square in a terminal.
const (
	cellW    = 2
	wellW    = engine.Cols*cellW + 2
	wellH    = engine.Rows + 2
	gap      = 2
	sidebarW = 18
	previewW = 4*cellW + 2
	previewH = 4 + 2

	// MinScreenW and MinScreenH are the smallest screen the game draws into.
	MinScreenW = wellW + gap + sidebarW
	MinScreenH = wellH
)

const (
	blockRune = '█'
	emptyRune = '·'
)

var kindColors = [...]core.Color{
	engine.KindI: core.ColorPink,
	engine.KindO: core.ColorBrightCyan,
	engine.KindT: core.ColorBrightGreen,
	engine.KindS: core.ColorBrightMagenta,
	engine.KindZ: core.ColorOrange,
	engine.KindJ: core.ColorBrightYellow,
	engine.KindL: core.ColorBrightBlue,
}

// CellColor returns the screen color for a board cell value.
func CellColor(c engine.Cell) core.Color {
	if int(c) < len(kindColors) {
		return kindColors[c]
	}
	return core.ColorDefault
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		drawCenteredMessage(dst, dst.Bounds(), "Window too small",
			fmt.Sprintf("Need %dx%d, have %dx%d", MinScreenW, MinScreenH, dst.Width(), dst.Height()))
		return
	}

	snap := g.eng.Snapshot()

	layout := dst.Bounds().Centered(MinScreenW, MinScreenH)
	well := core.NewRect(layout.X, layout.Y, wellW, wellH)
	sidebarX := well.Right() + gap

	drawWell(dst, well, snap)
	g.drawSidebar(dst, sidebarX, layout.Y, snap)

	switch snap.Status {
	case engine.StatusPaused:
		drawCenteredMessage(dst, well, "PAUSED", "Press "+keyLabel(g.cfg.Controls.Pause)+" to resume")
	case engine.StatusOver:
		drawCenteredMessage(dst, well, "GAME OVER", "Press "+keyLabel(g.cfg.Controls.Restart)+" to restart")
	}
}

// keyLabel returns a short display name for the first key of a binding.
func keyLabel(keys []string) string {
	if len(keys) == 0 {
		return "?"
	}
	switch k := keys[0]; k {
	case " ":
		return "SPACE"
	default:
		return strings.ToUpper(k)
	}
}

// drawWell draws the border, locked cells and the active piece.
func drawWell(dst *core.Screen, well core.Rect, snap engine.Snapshot) {
	dst.DrawBoxColor(well, core.ColorGray)
	inner := well.Inset(1)

	for y := range engine.Rows {
		for x := range engine.Cols {
			if !snap.Board.Filled(x, y) {
				dst.SetColor(inner.X+x*cellW+1, inner.Y+y, emptyRune, core.ColorGray)
				continue
			}
			drawBlock(dst, inner.X+x*cellW, inner.Y+y, CellColor(snap.Board[y][x]))
		}
	}

	if !snap.HasPieces || snap.Status == engine.StatusIdle {
		return
	}
	color := CellColor(snap.Active.Color())
	snap.Active.Cells(func(x, y int) {
		if y < 0 {
			return
		}
		drawBlock(dst, inner.X+x*cellW, inner.Y+y, color)
	})
}

// drawSidebar draws the title, next-piece preview and HUD.
func (g *Game) drawSidebar(dst *core.Screen, x, y int, snap engine.Snapshot) {
	dst.DrawTextColor(x, y, "T E T R I S", core.ColorBrightWhite)

	if g.cfg.Display.ShowNext {
		dst.DrawText(x, y+2, "NEXT")
		box := core.NewRect(x, y+3, previewW, previewH)
		dst.DrawBoxColor(box, core.ColorGray)
		if snap.HasPieces {
			inner := box.Inset(1)
			next := snap.Next
			color := CellColor(next.Color())
			for py, row := range next.Matrix() {
				for px, filled := range row {
					if filled {
						drawBlock(dst, inner.X+px*cellW, inner.Y+py, color)
					}
				}
			}
		}
	}

	row := y + 3 + previewH + 1
	stat := func(label string, value string) {
		dst.DrawTextColor(x, row, label, core.ColorGray)
		dst.DrawText(x+sidebarW-utf8.RuneCountInString(value), row, value)
		row++
	}

	stat("SCORE", fmt.Sprint(snap.Score))
	stat("BEST", fmt.Sprint(snap.Best))
	stat("LINES", fmt.Sprint(snap.Lines))
	stat("LEVEL", fmt.Sprint(snap.Level))

	if g.cfg.Display.ShowStats {
		row++
		stat("PIECES", fmt.Sprint(snap.Placed))
		stat("SPEED", fmt.Sprintf("%.1f/s", snap.Speed()))
	}
}

func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	for i := range cellW {
		dst.SetColor(x+i, y, blockRune, c)
	}
}

// drawCenteredMessage draws a message box centered in area.
func drawCenteredMessage(dst *core.Screen, area core.Rect, title, subtitle string) {
	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	box := area.Centered(boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColor(box.X+(boxW-utf8.RuneCountInString(title))/2, box.Y+1, title, core.ColorBrightWhite)
	dst.DrawText(box.X+(boxW-utf8.RuneCountInString(subtitle))/2, box.Y+3, subtitle)
}
