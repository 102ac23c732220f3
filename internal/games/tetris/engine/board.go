package engine

// Board dimensions.
const (
	Rows = 20
	Cols = 10
)

// Cell is the content of one board square: Empty or the color of a locked piece.
type Cell uint8

// Empty marks an unoccupied cell.
const Empty Cell = 0

// Board is the playfield, indexed [row][col] with row 0 at the top.
type Board [Rows][Cols]Cell

// Filled reports whether the cell at (x, y) is occupied.
// Coordinates outside the board report false.
func (b Board) Filled(x, y int) bool {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return false
	}
	return b[y][x] != Empty
}

// RowFull reports whether every cell in row y is occupied.
func (b Board) RowFull(y int) bool {
	for x := range Cols {
		if b[y][x] == Empty {
			return false
		}
	}
	return true
}

// Count returns the number of occupied cells.
func (b Board) Count() int {
	n := 0
	for y := range Rows {
		for x := range Cols {
			if b[y][x] != Empty {
				n++
			}
		}
	}
	return n
}

// Collide reports whether p, shifted by (dx, dy), would overlap a wall, the
// floor or a locked cell. Cells above row 0 only collide with the side walls.
// Collide never modifies its arguments.
func Collide(b *Board, p Piece, dx, dy int) bool {
	for py, row := range p.Matrix() {
		for px, filled := range row {
			if !filled {
				continue
			}
			x := p.X + dx + px
			y := p.Y + dy + py

			if x < 0 || x >= Cols || y >= Rows {
				return true
			}
			if y >= 0 && b[y][x] != Empty {
				return true
			}
		}
	}
	return false
}

// Lock copies the piece's occupied cells into the board using its color.
// Cells still above row 0 are dropped.
func Lock(b *Board, p Piece) {
	color := p.Color()
	p.Cells(func(x, y int) {
		if y >= 0 && y < Rows && x >= 0 && x < Cols {
			b[y][x] = color
		}
	})
}

// ClearLines removes every full row, shifting the remaining rows down and
// inserting empty rows at the top. It returns the new board and the number
// of rows removed.
func ClearLines(b Board) (Board, int) {
	var out Board
	write := Rows - 1
	cleared := 0

	for y := Rows - 1; y >= 0; y-- {
		if b.RowFull(y) {
			cleared++
			continue
		}
		out[write] = b[y]
		write--
	}

	return out, cleared
}

// RotatePiece returns p advanced to its next rotation state, applying a
// simple wall kick (one column left, then one column right) when the rotated
// piece collides in place. The original piece and false are returned when no
// position fits.
func RotatePiece(b *Board, p Piece) (Piece, bool) {
	n := Rotations(p.Kind)
	if n == 0 {
		return p, false
	}

	rotated := p
	rotated.Rotation = ((p.Rotation+1)%n + n) % n

	for _, kick := range [...]int{0, -1, 1} {
		if !Collide(b, rotated, kick, 0) {
			rotated.X += kick
			return rotated, true
		}
	}

	return p, false
}
