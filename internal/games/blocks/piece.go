package blocks

// Spawn and debug anchors.
const (
	spawnRow = 1
	spawnCol = 5
	debugRow = 5
	debugCol = 5
)

// Piece is the falling, player-controlled piece. It is a value: every
// operation builds a candidate, validates it against the board, and
// either returns the candidate or the unchanged receiver.
type Piece struct {
	Shape Shape
	Row   int
	Col   int
}

// Cells returns the four absolute board coordinates the piece covers.
func (p Piece) Cells() [4]Point {
	var cells [4]Point
	for i, o := range p.Shape.Offsets() {
		cells[i] = Point{Row: p.Row + o.Row, Col: p.Col + o.Col}
	}
	return cells
}

// Valid reports whether every cell is on the board and unoccupied.
// It is the only legality check; all movement goes through it.
func (p Piece) Valid(b *Board) bool {
	for _, c := range p.Cells() {
		if !b.IsFree(c.Row, c.Col) {
			return false
		}
	}
	return true
}

// Moved returns the piece shifted by (dRow, dCol) without validation.
func (p Piece) Moved(dRow, dCol int) Piece {
	p.Row += dRow
	p.Col += dCol
	return p
}

// Move shifts the piece if the result is legal; otherwise it is returned
// unchanged.
func (p Piece) Move(b *Board, dRow, dCol int) Piece {
	if next := p.Moved(dRow, dCol); next.Valid(b) {
		return next
	}
	return p
}

// Rotate turns the piece in place if the result is legal. There is no
// fallback offset search.
func (p Piece) Rotate(b *Board, dir Direction) Piece {
	next := p
	next.Shape = p.Shape.Rotate(dir)
	if next.Valid(b) {
		return next
	}
	return p
}

// CanMoveDown reports whether the piece could fall one row.
func (p Piece) CanMoveDown(b *Board) bool {
	return p.Moved(1, 0).Valid(b)
}

// Landed returns where the piece would come to rest if dropped straight
// down.
func (p Piece) Landed(b *Board) Piece {
	for p.CanMoveDown(b) {
		p = p.Moved(1, 0)
	}
	return p
}

// CycleShape swaps to the next shape in round-robin order and jumps to a
// fixed anchor, ignoring collisions. Debug only; gameplay never calls it.
func (p Piece) CycleShape() Piece {
	next := KindI
	for i, k := range Kinds {
		if k == p.Shape.Kind {
			next = Kinds[(i+1)%len(Kinds)]
			break
		}
	}
	return Piece{Shape: NewShape(next), Row: debugRow, Col: debugCol}
}

// Place spawns a shape at the start anchor, raises it as far as it can
// legally go, and reports false if even that position collides.
func Place(s Shape, b *Board) (Piece, bool) {
	p := Piece{Shape: s, Row: spawnRow, Col: spawnCol}
	for {
		up := p.Moved(-1, 0)
		if !up.Valid(b) {
			break
		}
		p = up
	}
	if !p.Valid(b) {
		return Piece{}, false
	}
	return p, true
}
