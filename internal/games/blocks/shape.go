package blocks

import "fmt"

// Kind identifies one of the seven piece shapes.
type Kind int

const (
	NoKind Kind = iota // Absence of a shape, e.g. no previous piece
	KindI
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// Kinds lists every playable shape in round-robin order.
var Kinds = [...]Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

// String returns the single-letter name of the shape.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "-"
	}
}

// States returns how many rotation states the shape has.
// Rotation wraps modulo this count, not a fixed 4.
func (k Kind) States() int {
	switch k {
	case KindO:
		return 1
	case KindI, KindS, KindZ:
		return 2
	case KindJ, KindL, KindT:
		return 4
	default:
		return 0
	}
}

// Tag returns the cell tag written to the board when this shape locks.
func (k Kind) Tag() Cell {
	if k == NoKind {
		return Empty
	}
	return Cell(k)
}

// GhostTag returns the cell tag used for this shape's landing preview.
func (k Kind) GhostTag() Cell {
	if k == NoKind {
		return Empty
	}
	return Cell(int(k) + len(Kinds))
}

// Preview returns the unrotated offsets shifted into a 2x4 box,
// used only for the next-piece display.
func (k Kind) Preview() [4]Offset {
	p, ok := previewTable[k]
	if !ok {
		panic(fmt.Sprintf("blocks: no preview for shape %v", k))
	}
	return p
}

// Offset is a cell position relative to a piece anchor.
type Offset struct {
	Row, Col int
}

// Direction selects which way a piece rotates.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

// Shape is a shape identity together with its rotation index.
type Shape struct {
	Kind     Kind
	Rotation int
}

// NewShape returns the shape in its spawn orientation.
func NewShape(k Kind) Shape {
	return Shape{Kind: k}
}

// String renders the shape as e.g. "T2".
func (s Shape) String() string {
	return fmt.Sprintf("%v%d", s.Kind, s.Rotation)
}

// Rotate returns the next (clockwise) or previous (counter-clockwise)
// rotation state, wrapping within the shape's state count.
func (s Shape) Rotate(dir Direction) Shape {
	n := s.Kind.States()
	if n == 0 {
		panic(fmt.Sprintf("blocks: cannot rotate shape %v", s))
	}
	step := 1
	if dir == CounterClockwise {
		step = n - 1
	}
	s.Rotation = (s.Rotation + step) % n
	return s
}

// Offsets returns the four occupied cells relative to the anchor.
// A missing entry means a rotation escaped its valid range, which is a
// programming error, so it panics.
func (s Shape) Offsets() [4]Offset {
	o, ok := offsetTable[s]
	if !ok {
		panic(fmt.Sprintf("blocks: no offsets for shape %v", s))
	}
	return o
}

// offsetTable is a lookup-table rotation system: every orientation is
// listed explicitly and there is no kick search.
var offsetTable = map[Shape][4]Offset{
	{KindI, 0}: {{0, -1}, {0, 0}, {0, 1}, {0, 2}},
	{KindI, 1}: {{-1, 0}, {0, 0}, {1, 0}, {2, 0}},

	{KindJ, 0}: {{-1, -1}, {0, -1}, {0, 0}, {0, 1}},
	{KindJ, 1}: {{-1, 1}, {-1, 0}, {0, 0}, {1, 0}},
	{KindJ, 2}: {{1, 1}, {0, 1}, {0, 0}, {0, -1}},
	{KindJ, 3}: {{1, -1}, {1, 0}, {0, 0}, {-1, 0}},

	{KindL, 0}: {{0, -1}, {0, 0}, {0, 1}, {-1, 1}},
	{KindL, 1}: {{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
	{KindL, 2}: {{0, 1}, {0, 0}, {0, -1}, {1, -1}},
	{KindL, 3}: {{1, 0}, {0, 0}, {-1, 0}, {-1, -1}},

	{KindO, 0}: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},

	{KindS, 0}: {{1, -1}, {1, 0}, {0, 0}, {0, 1}},
	{KindS, 1}: {{-1, -1}, {0, -1}, {0, 0}, {1, 0}},

	{KindT, 0}: {{-1, 0}, {0, 0}, {0, -1}, {0, 1}},
	{KindT, 1}: {{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
	{KindT, 2}: {{1, 0}, {0, 0}, {0, -1}, {0, 1}},
	{KindT, 3}: {{-1, 0}, {0, 0}, {1, 0}, {0, -1}},

	{KindZ, 0}: {{0, -1}, {0, 0}, {1, 0}, {1, 1}},
	{KindZ, 1}: {{-1, 0}, {0, 0}, {0, -1}, {1, -1}},
}

var previewTable = map[Kind][4]Offset{
	KindI: {{0, 0}, {0, 1}, {0, 2}, {0, 3}},
	KindJ: {{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	KindL: {{1, 0}, {1, 1}, {1, 2}, {0, 2}},
	KindO: {{0, 1}, {1, 1}, {0, 2}, {1, 2}},
	KindS: {{1, 0}, {1, 1}, {0, 1}, {0, 2}},
	KindT: {{0, 1}, {1, 1}, {1, 0}, {1, 2}},
	KindZ: {{0, 0}, {0, 1}, {1, 1}, {1, 2}},
}
