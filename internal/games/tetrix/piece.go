package tetrix

import "math/rand"

// Shape identifies a tetromino. A board cell holds a Shape too:
// NoShape is an empty cell, anything else is a block of that color.
type Shape int

const (
	NoShape Shape = iota
	ZShape
	SShape
	LineShape
	TShape
	SquareShape
	LShape
	MirroredLShape
)

// NumShapes is the number of real (non-empty) shapes.
const NumShapes = 7

var shapeNames = [...]string{
	NoShape:        "none",
	ZShape:         "Z",
	SShape:         "S",
	LineShape:      "line",
	TShape:         "T",
	SquareShape:    "square",
	LShape:         "L",
	MirroredLShape: "mirrored-L",
}

func (s Shape) String() string {
	if s < NoShape || s > MirroredLShape {
		return "invalid"
	}
	return shapeNames[s]
}

// shapeCoords returns the four (x, y) offsets of a shape in its spawn
// orientation. Offsets are relative to the piece anchor; y points down the
// board, so larger y means a lower row.
func shapeCoords(s Shape) [4][2]int {
	switch s {
	case ZShape:
		return [4][2]int{{0, -1}, {0, 0}, {-1, 0}, {-1, 1}}
	case SShape:
		return [4][2]int{{0, -1}, {0, 0}, {1, 0}, {1, 1}}
	case LineShape:
		return [4][2]int{{0, -1}, {0, 0}, {0, 1}, {0, 2}}
	case TShape:
		return [4][2]int{{-1, 0}, {0, 0}, {1, 0}, {0, 1}}
	case SquareShape:
		return [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	case LShape:
		return [4][2]int{{-1, -1}, {0, -1}, {0, 0}, {0, 1}}
	case MirroredLShape:
		return [4][2]int{{1, -1}, {0, -1}, {0, 0}, {0, 1}}
	default:
		return [4][2]int{}
	}
}

// Piece is a tetromino: a shape and the offsets of its four blocks.
// Pieces are values; rotation returns a new piece.
type Piece struct {
	shape  Shape
	coords [4][2]int
}

// NewPiece returns a piece of the given shape in spawn orientation.
func NewPiece(s Shape) Piece {
	return Piece{shape: s, coords: shapeCoords(s)}
}

// RandomPiece returns a piece with a shape drawn uniformly from the seven
// real shapes.
func RandomPiece(rng *rand.Rand) Piece {
	return NewPiece(Shape(rng.Intn(NumShapes) + 1))
}

// Shape returns the piece shape.
func (p Piece) Shape() Shape {
	return p.shape
}

// X returns the x offset of block i.
func (p Piece) X(i int) int {
	return p.coords[i][0]
}

// Y returns the y offset of block i.
func (p Piece) Y(i int) int {
	return p.coords[i][1]
}

// Coords returns a copy of all four block offsets.
func (p Piece) Coords() [4][2]int {
	return p.coords
}

func (p Piece) MinX() int { return p.extreme(0, func(a, b int) bool { return a < b }) }
func (p Piece) MaxX() int { return p.extreme(0, func(a, b int) bool { return a > b }) }
func (p Piece) MinY() int { return p.extreme(1, func(a, b int) bool { return a < b }) }
func (p Piece) MaxY() int { return p.extreme(1, func(a, b int) bool { return a > b }) }

func (p Piece) extreme(axis int, better func(a, b int) bool) int {
	v := p.coords[0][axis]
	for _, c := range p.coords[1:] {
		if better(c[axis], v) {
			v = c[axis]
		}
	}
	return v
}

// RotatedLeft returns the piece turned 90° counter-clockwise:
// every offset (x, y) becomes (y, -x). The square is returned unchanged.
func (p Piece) RotatedLeft() Piece {
	if p.shape == SquareShape || p.shape == NoShape {
		return p
	}
	r := Piece{shape: p.shape}
	for i, c := range p.coords {
		r.coords[i] = [2]int{c[1], -c[0]}
	}
	return r
}

// RotatedRight returns the piece turned 90° clockwise:
// every offset (x, y) becomes (-y, x). The square is returned unchanged.
func (p Piece) RotatedRight() Piece {
	if p.shape == SquareShape || p.shape == NoShape {
		return p
	}
	r := Piece{shape: p.shape}
	for i, c := range p.coords {
		r.coords[i] = [2]int{-c[1], c[0]}
	}
	return r
}
