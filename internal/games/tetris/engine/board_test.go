package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillRow fills row y except for the listed columns.
func fillRow(b *Board, y int, holes ...int) {
	skip := make(map[int]bool, len(holes))
	for _, h := range holes {
		skip[h] = true
	}
	for x := range Cols {
		if !skip[x] {
			b[y][x] = Cell(KindJ)
		}
	}
}

func TestCollide(t *testing.T) {
	var occupied Board
	occupied[10][4] = Cell(KindL)

	tests := []struct {
		name   string
		board  Board
		piece  Piece
		dx, dy int
		want   bool
	}{
		{"spawned O on empty board", Board{}, SpawnPiece(KindO), 0, 0, false},
		{"left wall", Board{}, Piece{Kind: KindO, X: 0, Y: 5}, -1, 0, true},
		{"right wall", Board{}, Piece{Kind: KindO, X: Cols - 2, Y: 5}, 1, 0, true},
		{"floor", Board{}, Piece{Kind: KindO, X: 4, Y: Rows - 2}, 0, 1, true},
		{"resting above floor", Board{}, Piece{Kind: KindO, X: 4, Y: Rows - 2}, 0, 0, false},
		{"locked cell", occupied, Piece{Kind: KindO, X: 3, Y: 8}, 0, 1, true},
		{"beside locked cell", occupied, Piece{Kind: KindO, X: 5, Y: 9}, 0, 0, false},
		{"above the top ignores board", occupied, Piece{Kind: KindO, X: 4, Y: -3}, 0, 0, false},
		{"above the top still hits walls", Board{}, Piece{Kind: KindO, X: -1, Y: -3}, 0, 0, true},
		{"empty matrix columns may hang off the wall", Board{}, Piece{Kind: KindI, Rotation: 1, X: -2, Y: 3}, 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.board
			assert.Equal(t, tc.want, Collide(&b, tc.piece, tc.dx, tc.dy))
		})
	}
}

func TestCollideIsPure(t *testing.T) {
	var b Board
	fillRow(&b, Rows-1, 0)
	b[12][3] = Cell(KindS)
	p := Piece{Kind: KindT, Rotation: 2, X: 2, Y: 10}

	boardBefore := b
	pieceBefore := p

	first := Collide(&b, p, 0, 1)
	for range 5 {
		assert.Equal(t, first, Collide(&b, p, 0, 1))
	}
	assert.Equal(t, boardBefore, b)
	assert.Equal(t, pieceBefore, p)
}

func TestLockSkipsCellsAboveBoard(t *testing.T) {
	var b Board
	Lock(&b, Piece{Kind: KindO, X: 4, Y: -1})

	assert.Equal(t, 2, b.Count())
	assert.Equal(t, Cell(KindO), b[0][4])
	assert.Equal(t, Cell(KindO), b[0][5])
}

func TestClearLines(t *testing.T) {
	t.Run("no full rows", func(t *testing.T) {
		var b Board
		fillRow(&b, Rows-1, 3)
		out, n := ClearLines(b)
		assert.Equal(t, 0, n)
		assert.Equal(t, b, out)
	})

	t.Run("single row", func(t *testing.T) {
		var b Board
		fillRow(&b, Rows-1)
		b[Rows-2][7] = Cell(KindT)

		out, n := ClearLines(b)
		require.Equal(t, 1, n)
		assert.Equal(t, Cell(KindT), out[Rows-1][7])
		assert.Equal(t, 1, out.Count())
		assert.Equal(t, [Cols]Cell{}, out[0])
	})

	t.Run("non-adjacent rows keep order", func(t *testing.T) {
		var b Board
		fillRow(&b, 19)
		b[18][0] = Cell(KindI)
		fillRow(&b, 17)
		b[16][1] = Cell(KindO)

		out, n := ClearLines(b)
		require.Equal(t, 2, n)
		assert.Equal(t, Cell(KindI), out[19][0])
		assert.Equal(t, Cell(KindO), out[18][1])
		assert.Equal(t, 2, out.Count())
	})

	t.Run("four rows", func(t *testing.T) {
		var b Board
		for y := Rows - 4; y < Rows; y++ {
			fillRow(&b, y)
		}
		out, n := ClearLines(b)
		assert.Equal(t, 4, n)
		assert.Equal(t, 0, out.Count())
	})

	t.Run("input board is not modified", func(t *testing.T) {
		var b Board
		fillRow(&b, Rows-1)
		before := b
		ClearLines(b)
		assert.Equal(t, before, b)
	})
}

func TestRotatePieceWallKick(t *testing.T) {
	// Vertical T hugging the left wall: matrix column 0 hangs off the board.
	p := Piece{Kind: KindT, Rotation: 1, X: -1, Y: 5}

	t.Run("kicks right when rotation hits the wall", func(t *testing.T) {
		var b Board
		require.False(t, Collide(&b, p, 0, 0))

		rotated, ok := RotatePiece(&b, p)
		require.True(t, ok)
		assert.Equal(t, 2, rotated.Rotation)
		assert.Equal(t, 0, rotated.X)
		assert.Equal(t, p.Y, rotated.Y)
	})

	t.Run("fails cleanly when no kick fits", func(t *testing.T) {
		var b Board
		b[6][2] = Cell(KindZ)

		rotated, ok := RotatePiece(&b, p)
		assert.False(t, ok)
		assert.Equal(t, p, rotated)
	})

	t.Run("rotates in place when free", func(t *testing.T) {
		var b Board
		free := Piece{Kind: KindT, X: 4, Y: 5}
		rotated, ok := RotatePiece(&b, free)
		require.True(t, ok)
		assert.Equal(t, 1, rotated.Rotation)
		assert.Equal(t, 4, rotated.X)
	})

	t.Run("tries left before right", func(t *testing.T) {
		var b Board
		// I piece vertical against the right wall; horizontal needs room on the left.
		i := Piece{Kind: KindI, Rotation: 1, X: Cols - 3, Y: 5}
		require.False(t, Collide(&b, i, 0, 0))

		rotated, ok := RotatePiece(&b, i)
		require.True(t, ok)
		assert.Equal(t, 0, rotated.Rotation)
		assert.Equal(t, Cols-4, rotated.X)
	})
}

func TestBoardFilled(t *testing.T) {
	var b Board
	b[3][7] = Cell(KindS)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"occupied", 7, 3, true},
		{"empty", 6, 3, false},
		{"left of board", -1, 3, false},
		{"right of board", Cols, 3, false},
		{"above board", 7, -1, false},
		{"below board", 7, Rows, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, b.Filled(tc.x, tc.y))
		})
	}
}

func TestInvalidPieceIsInert(t *testing.T) {
	for _, kind := range []Kind{0, Kind(len(Kinds) + 1), 255} {
		t.Run(kind.String(), func(t *testing.T) {
			p := SpawnPiece(kind)
			assert.Equal(t, Piece{}, p)
			assert.Nil(t, p.Matrix())

			var b Board
			assert.False(t, Collide(&b, Piece{Kind: kind, X: 4, Y: 5}, 0, 1))
			Lock(&b, Piece{Kind: kind, X: 4, Y: 5})
			assert.Equal(t, 0, b.Count())

			rotated, ok := RotatePiece(&b, Piece{Kind: kind, X: 4, Y: 5})
			assert.False(t, ok)
			assert.Equal(t, Piece{Kind: kind, X: 4, Y: 5}, rotated)
		})
	}
}

func TestNegativeRotationWraps(t *testing.T) {
	tests := []struct {
		kind     Kind
		rotation int
		same     int
	}{
		{KindT, -1, 3},
		{KindT, -4, 0},
		{KindT, -6, 2},
		{KindI, -1, 1},
		{KindO, -3, 0},
		{KindL, 9, 1},
	}

	for _, tc := range tests {
		p := Piece{Kind: tc.kind, Rotation: tc.rotation, X: 4, Y: 5}
		want := Piece{Kind: tc.kind, Rotation: tc.same, X: 4, Y: 5}
		assert.Equal(t, want.Matrix(), p.Matrix(), "%s rotation %d", tc.kind, tc.rotation)

		var b Board
		assert.False(t, Collide(&b, p, 0, 0))
		Lock(&b, p)
		assert.Equal(t, 4, b.Count())

		var empty Board
		rotated, ok := RotatePiece(&empty, p)
		assert.True(t, ok)
		assert.GreaterOrEqual(t, rotated.Rotation, 0)
		assert.Less(t, rotated.Rotation, Rotations(tc.kind))
	}
}

func TestSnapshotBoardHelpers(t *testing.T) {
	e := New(Config{Seed: 1})
	e.Start()
	e.HardDrop()

	// Board helpers work on the unaddressable snapshot value.
	assert.Equal(t, 4, e.Snapshot().Board.Count())
	assert.False(t, e.Snapshot().Board.RowFull(Rows-1))
	assert.False(t, e.Snapshot().Board.Filled(0, 0))
}
