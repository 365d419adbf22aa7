package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillRow fills a row with the given tag, leaving the listed columns empty.
func fillRow(b *Board, row int, tag Cell, holes ...int) {
	for col := range b[row] {
		b[row][col] = tag
	}
	for _, col := range holes {
		b[row][col] = Empty
	}
}

func TestBoardBounds(t *testing.T) {
	var b Board
	assert.True(t, InBounds(0, 0))
	assert.True(t, InBounds(Height-1, Width-1))
	assert.False(t, InBounds(-1, 0))
	assert.False(t, InBounds(0, Width))
	assert.False(t, InBounds(Height, 0))

	assert.Equal(t, Empty, b.At(-5, 3))
	assert.False(t, b.IsFree(Height, 0), "out of bounds is never free")

	b[3][4] = KindT.Tag()
	assert.Equal(t, KindT.Tag(), b.At(3, 4))
	assert.False(t, b.IsFree(3, 4))
}

func TestLockWritesExactlyFourCells(t *testing.T) {
	var b Board
	b[19][0] = KindZ.Tag()
	before := b

	p := Piece{Shape: NewShape(KindT), Row: 10, Col: 4}
	b.lock(p)

	want := map[Point]bool{}
	for _, c := range p.Cells() {
		want[c] = true
	}
	for row := range b {
		for col := range b[row] {
			if want[Point{row, col}] {
				assert.Equal(t, KindT.Tag(), b[row][col], "locked cell (%d,%d)", row, col)
			} else {
				assert.Equal(t, before[row][col], b[row][col], "untouched cell (%d,%d)", row, col)
			}
		}
	}
}

func TestClearSingleRow(t *testing.T) {
	var b Board
	for row := 0; row < 5; row++ {
		b[row][row] = KindJ.Tag()
	}
	fillRow(&b, 5, KindI.Tag())
	for row := 6; row < Height; row++ {
		fillRow(&b, row, KindO.Tag(), row%Width)
	}
	before := b

	cleared := b.clearRows()
	require.Equal(t, 1, cleared)

	assert.Equal(t, [Width]Cell{}, b[0], "row 0 must be emptied")
	for row := 1; row <= 5; row++ {
		assert.Equal(t, before[row-1], b[row], "row %d should hold old row %d", row, row-1)
	}
	for row := 6; row < Height; row++ {
		assert.Equal(t, before[row], b[row], "row %d should be unchanged", row)
	}
}

func TestClearAdjacentRowsRetestsIndex(t *testing.T) {
	var b Board
	fillRow(&b, 16, KindS.Tag(), 2)
	fillRow(&b, 17, KindI.Tag())
	fillRow(&b, 18, KindI.Tag())
	fillRow(&b, 19, KindL.Tag(), 7)
	b[15][0] = KindT.Tag()

	cleared := b.clearRows()
	require.Equal(t, 2, cleared)

	assert.Equal(t, KindL.Tag(), b[19][0])
	assert.Equal(t, Empty, b[19][7])
	assert.Equal(t, Empty, b[18][2], "partial row moved down by two")
	assert.Equal(t, KindS.Tag(), b[18][0])
	assert.Equal(t, KindT.Tag(), b[17][0])
	assert.Equal(t, [Width]Cell{}, b[16])
}

func TestClearFourRows(t *testing.T) {
	var b Board
	for row := 16; row < Height; row++ {
		fillRow(&b, row, KindI.Tag())
	}
	assert.Equal(t, 4, b.clearRows())
	assert.Equal(t, Board{}, b)
}

func TestClearNoRows(t *testing.T) {
	var b Board
	fillRow(&b, 19, KindI.Tag(), 9)
	before := b
	assert.Equal(t, 0, b.clearRows())
	assert.Equal(t, before, b)
}

func TestBoardString(t *testing.T) {
	var b Board
	b[0][0] = KindI.Tag()
	b[0][1] = KindI.GhostTag()
	lines := b.String()
	assert.Equal(t, "Ii........\n", lines[:Width+1])
}
