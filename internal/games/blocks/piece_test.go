package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertLegal checks the invariant every public mutator must preserve.
func assertLegal(t *testing.T, p Piece, b *Board) {
	t.Helper()
	for _, c := range p.Cells() {
		assert.True(t, InBounds(c.Row, c.Col), "cell %v out of bounds", c)
		assert.True(t, b.IsFree(c.Row, c.Col), "cell %v overlaps the board", c)
	}
}

func TestCellsAddAnchor(t *testing.T) {
	p := Piece{Shape: NewShape(KindI), Row: 3, Col: 5}
	assert.Equal(t, [4]Point{{3, 4}, {3, 5}, {3, 6}, {3, 7}}, p.Cells())
}

func TestMoveStopsAtWalls(t *testing.T) {
	var b Board
	p, ok := Place(NewShape(KindO), &b)
	require.True(t, ok)

	for i := 0; i < 20; i++ {
		p = p.Move(&b, 0, -1)
		assertLegal(t, p, &b)
	}
	assert.Equal(t, 0, p.Col, "O piece anchor sits on its left column")

	for i := 0; i < 20; i++ {
		p = p.Move(&b, 0, 1)
		assertLegal(t, p, &b)
	}
	assert.Equal(t, Width-2, p.Col)

	for i := 0; i < 30; i++ {
		p = p.Move(&b, 1, 0)
		assertLegal(t, p, &b)
	}
	assert.Equal(t, Height-2, p.Row)
	assert.False(t, p.CanMoveDown(&b))
}

func TestMoveBlockedBySettledCells(t *testing.T) {
	var b Board
	b[10][3] = KindZ.Tag()
	p := Piece{Shape: NewShape(KindO), Row: 10, Col: 4}

	moved := p.Move(&b, 0, -1)
	assert.Equal(t, p, moved, "move into a settled cell is discarded")
}

func TestRotateRejectedAtWall(t *testing.T) {
	var b Board
	// Vertical I hugging the left wall; turning flat would need column -1.
	p := Piece{Shape: Shape{Kind: KindI, Rotation: 1}, Row: 5, Col: 0}
	require.True(t, p.Valid(&b))

	rotated := p.Rotate(&b, Clockwise)
	assert.Equal(t, p, rotated)
	rotated = p.Rotate(&b, CounterClockwise)
	assert.Equal(t, p, rotated)
}

func TestRotateRejectedBySettledCells(t *testing.T) {
	var b Board
	p := Piece{Shape: NewShape(KindT), Row: 10, Col: 5}
	require.True(t, p.Valid(&b))

	// T1 needs (11,5); block it.
	b[11][5] = KindO.Tag()
	assert.Equal(t, p, p.Rotate(&b, Clockwise))

	// T3 also needs (11,5).
	assert.Equal(t, p, p.Rotate(&b, CounterClockwise))
}

func TestRotateAcceptedInOpenSpace(t *testing.T) {
	var b Board
	p := Piece{Shape: NewShape(KindJ), Row: 10, Col: 5}
	p = p.Rotate(&b, Clockwise)
	assert.Equal(t, 1, p.Shape.Rotation)
	p = p.Rotate(&b, CounterClockwise).Rotate(&b, CounterClockwise)
	assert.Equal(t, 3, p.Shape.Rotation)
	assertLegal(t, p, &b)
}

func TestCanMoveDownIsPure(t *testing.T) {
	var b Board
	p := Piece{Shape: NewShape(KindS), Row: 5, Col: 5}
	assert.True(t, p.CanMoveDown(&b))
	assert.Equal(t, 5, p.Row)
}

func TestLandedOnEmptyColumn(t *testing.T) {
	var b Board
	p := Piece{Shape: NewShape(KindI), Row: 0, Col: 4}
	ghost := p.Landed(&b)

	live := p.Cells()
	for i, c := range ghost.Cells() {
		assert.Equal(t, live[i].Row+(Height-1-p.Row), c.Row)
		assert.Equal(t, live[i].Col, c.Col)
		assert.Equal(t, Height-1, c.Row)
	}
}

func TestLandedOnStack(t *testing.T) {
	var b Board
	fillRow(&b, 19, KindI.Tag(), 0)
	p := Piece{Shape: NewShape(KindO), Row: 2, Col: 4}
	assert.Equal(t, 17, p.Landed(&b).Row)
}

func TestPlaceNormalizesToTop(t *testing.T) {
	var b Board
	tests := []struct {
		kind    Kind
		wantRow int
	}{
		{KindI, 0}, // flat I has no cells above the anchor
		{KindO, 0},
		{KindJ, 1}, // J0 reaches one row above its anchor
		{KindL, 1},
		{KindT, 1},
		{KindS, 0},
		{KindZ, 0},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			p, ok := Place(NewShape(tc.kind), &b)
			require.True(t, ok)
			assert.Equal(t, tc.wantRow, p.Row)
			assert.Equal(t, spawnCol, p.Col)
			assertLegal(t, p, &b)

			top := Height
			for _, c := range p.Cells() {
				top = min(top, c.Row)
			}
			assert.Equal(t, 0, top, "spawned piece touches row 0")
		})
	}
}

func TestPlaceFailsWhenBlocked(t *testing.T) {
	var b Board
	fillRow(&b, 0, KindZ.Tag())
	fillRow(&b, 1, KindZ.Tag())

	_, ok := Place(NewShape(KindT), &b)
	assert.False(t, ok)
}

func TestPlaceMovesUpOutOfCollision(t *testing.T) {
	var b Board
	// O covers (1,5) both at the start anchor and one row higher.
	b[1][5] = KindI.Tag()
	_, ok := Place(NewShape(KindO), &b)
	assert.False(t, ok)

	// Flat I at row 1 collides, but it can rise to row 0.
	p, ok := Place(NewShape(KindI), &b)
	require.True(t, ok)
	assert.Equal(t, 0, p.Row)
}

func TestCycleShapeRoundRobin(t *testing.T) {
	p := Piece{Shape: Shape{Kind: KindT, Rotation: 3}, Row: 12, Col: 1}
	var seen []Kind
	for range Kinds {
		p = p.CycleShape()
		seen = append(seen, p.Shape.Kind)
		assert.Equal(t, 0, p.Shape.Rotation)
		assert.Equal(t, debugRow, p.Row)
		assert.Equal(t, debugCol, p.Col)
	}
	assert.Equal(t, []Kind{KindZ, KindI, KindJ, KindL, KindO, KindS, KindT}, seen)
}
