// Package engine implements the falling-block game rules: board, pieces,
// collision, rotation, placement, line clearing, scoring and the session
// state machine. It has no terminal or storage dependencies so that every
// rule can be exercised directly from tests.
package engine

import "math/rand"

// Kind identifies one of the seven tetromino shapes.
// The numeric value doubles as the color identifier written into the board.
type Kind uint8

const (
	KindI Kind = iota + 1
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// Kinds lists every shape kind in spawn-table order.
var Kinds = [...]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}

// Valid reports whether k is one of the seven shape kinds.
func (k Kind) Valid() bool {
	return k >= KindI && k <= KindL
}

// Matrix is a square occupancy grid for one rotation state, indexed [row][col].
type Matrix [][]bool

// Width returns the number of columns in the matrix.
func (m Matrix) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// m builds a Matrix from rows of 0/1 for readable shape tables.
func m(rows ...[]int) Matrix {
	out := make(Matrix, len(rows))
	for y, row := range rows {
		out[y] = make([]bool, len(row))
		for x, v := range row {
			out[y][x] = v != 0
		}
	}
	return out
}

// rotations holds the ordered rotation states for each kind.
// Matrices keep their leading empty rows so spawn positions match the classic layout.
var rotations = [...][]Matrix{
	KindI: {
		m([]int{0, 0, 0, 0},
			[]int{1, 1, 1, 1},
			[]int{0, 0, 0, 0},
			[]int{0, 0, 0, 0}),
		m([]int{0, 0, 1, 0},
			[]int{0, 0, 1, 0},
			[]int{0, 0, 1, 0},
			[]int{0, 0, 1, 0}),
	},
	KindO: {
		m([]int{1, 1},
			[]int{1, 1}),
	},
	KindT: {
		m([]int{0, 1, 0},
			[]int{1, 1, 1},
			[]int{0, 0, 0}),
		m([]int{0, 1, 0},
			[]int{0, 1, 1},
			[]int{0, 1, 0}),
		m([]int{0, 0, 0},
			[]int{1, 1, 1},
			[]int{0, 1, 0}),
		m([]int{0, 1, 0},
			[]int{1, 1, 0},
			[]int{0, 1, 0}),
	},
	KindS: {
		m([]int{0, 1, 1},
			[]int{1, 1, 0},
			[]int{0, 0, 0}),
		m([]int{0, 1, 0},
			[]int{0, 1, 1},
			[]int{0, 0, 1}),
	},
	KindZ: {
		m([]int{1, 1, 0},
			[]int{0, 1, 1},
			[]int{0, 0, 0}),
		m([]int{0, 0, 1},
			[]int{0, 1, 1},
			[]int{0, 1, 0}),
	},
	KindJ: {
		m([]int{1, 0, 0},
			[]int{1, 1, 1},
			[]int{0, 0, 0}),
		m([]int{0, 1, 1},
			[]int{0, 1, 0},
			[]int{0, 1, 0}),
		m([]int{0, 0, 0},
			[]int{1, 1, 1},
			[]int{0, 0, 1}),
		m([]int{0, 1, 0},
			[]int{0, 1, 0},
			[]int{1, 1, 0}),
	},
	KindL: {
		m([]int{0, 0, 1},
			[]int{1, 1, 1},
			[]int{0, 0, 0}),
		m([]int{0, 1, 0},
			[]int{0, 1, 0},
			[]int{0, 1, 1}),
		m([]int{0, 0, 0},
			[]int{1, 1, 1},
			[]int{1, 0, 0}),
		m([]int{1, 1, 0},
			[]int{0, 1, 0},
			[]int{0, 1, 0}),
	},
}

// Rotations returns the number of rotation states for a kind.
func Rotations(k Kind) int {
	if !k.Valid() {
		return 0
	}
	return len(rotations[k])
}

// Piece is a falling tetromino. X and Y anchor the top-left corner of its
// rotation matrix in board coordinates; Y may be negative while spawning.
type Piece struct {
	Kind     Kind
	Rotation int
	X, Y     int
}

// Matrix returns the occupancy matrix for the piece's current rotation.
func (p Piece) Matrix() Matrix {
	if !p.Kind.Valid() {
		return nil
	}
	states := rotations[p.Kind]
	n := len(states)
	return states[((p.Rotation%n)+n)%n]
}

// Color returns the cell value written to the board when the piece locks.
func (p Piece) Color() Cell {
	return Cell(p.Kind)
}

// Cells calls fn with the absolute board coordinate of every occupied cell.
func (p Piece) Cells(fn func(x, y int)) {
	for py, row := range p.Matrix() {
		for px, filled := range row {
			if filled {
				fn(p.X+px, p.Y+py)
			}
		}
	}
}

// SpawnPiece creates a piece of the given kind at its spawn position:
// rotation 0, horizontally centered, matrix top aligned with row 0.
// An invalid kind yields the zero Piece, which occupies no cells.
func SpawnPiece(kind Kind) Piece {
	if !kind.Valid() {
		return Piece{}
	}
	w := rotations[kind][0].Width()
	return Piece{
		Kind:     kind,
		Rotation: 0,
		X:        Cols/2 - w/2,
		Y:        0,
	}
}

// RandomKind picks one of the seven kinds uniformly.
func RandomKind(rng *rand.Rand) Kind {
	return Kinds[rng.Intn(len(Kinds))]
}
