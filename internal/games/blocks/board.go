package blocks

import "strings"

// Board dimensions. Row 0 is the top of the well.
const (
	Width  = 10
	Height = 20
)

// Cell is the occupancy tag of a board position: empty, a settled or
// live block of some shape, or a ghost preview of some shape.
type Cell uint8

// Empty marks an unoccupied cell.
const Empty Cell = 0

// IsEmpty reports whether nothing occupies the cell.
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// IsGhost reports whether the cell is a landing preview.
func (c Cell) IsGhost() bool {
	return int(c) > len(Kinds) && int(c) <= 2*len(Kinds)
}

// Kind returns the shape that produced this tag, or NoKind for Empty.
func (c Cell) Kind() Kind {
	switch {
	case c == Empty:
		return NoKind
	case c.IsGhost():
		return Kind(int(c) - len(Kinds))
	default:
		return Kind(c)
	}
}

// Point is an absolute board coordinate.
type Point struct {
	Row, Col int
}

// Board is the fixed grid of settled cells.
type Board [Height][Width]Cell

// InBounds reports whether (row, col) lies on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Height && col >= 0 && col < Width
}

// At returns the cell at (row, col), or Empty when out of bounds.
func (b *Board) At(row, col int) Cell {
	if !InBounds(row, col) {
		return Empty
	}
	return b[row][col]
}

// IsFree reports whether (row, col) is on the board and unoccupied.
func (b *Board) IsFree(row, col int) bool {
	return InBounds(row, col) && b[row][col] == Empty
}

// lock writes a piece's cells with its shape tag.
func (b *Board) lock(p Piece) {
	tag := p.Shape.Kind.Tag()
	for _, c := range p.Cells() {
		b[c.Row][c.Col] = tag
	}
}

func (b *Board) rowFull(row int) bool {
	for _, c := range b[row] {
		if c == Empty {
			return false
		}
	}
	return true
}

// shiftDown removes the given row, moving every row above it down by one
// and leaving an empty row at the top.
func (b *Board) shiftDown(row int) {
	for k := row; k > 0; k-- {
		b[k] = b[k-1]
	}
	b[0] = [Width]Cell{}
}

// clearRows removes full rows scanning bottom to top and returns how many
// were removed. After a shift the same index is tested again because a
// different row has moved into it.
func (b *Board) clearRows() int {
	cleared := 0
	for row := Height - 1; row >= 0; {
		if b.rowFull(row) {
			b.shiftDown(row)
			cleared++
			continue
		}
		row--
	}
	return cleared
}

// String draws the board as text, one line per row, '.' for empty cells,
// lower case for ghosts and upper case for blocks. Handy in test failures.
func (b *Board) String() string {
	var sb strings.Builder
	for row := range b {
		for _, c := range b[row] {
			switch {
			case c == Empty:
				sb.WriteByte('.')
			case c.IsGhost():
				sb.WriteString(strings.ToLower(c.Kind().String()))
			default:
				sb.WriteString(c.Kind().String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
