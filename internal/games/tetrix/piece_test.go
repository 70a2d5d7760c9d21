package tetrix

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var allShapes = []Shape{ZShape, SShape, LineShape, TShape, SquareShape, LShape, MirroredLShape}

func TestSquareRotationIsIdentity(t *testing.T) {
	sq := NewPiece(SquareShape)

	if got := sq.RotatedLeft().RotatedLeft(); got.Coords() != sq.Coords() {
		t.Errorf("square rotated left twice = %v, expected %v", got.Coords(), sq.Coords())
	}
	if got := sq.RotatedRight(); got.Coords() != sq.Coords() {
		t.Errorf("square rotated right = %v, expected %v", got.Coords(), sq.Coords())
	}
}

func TestRotationRoundTrip(t *testing.T) {
	for _, s := range allShapes {
		t.Run(s.String(), func(t *testing.T) {
			p := NewPiece(s)
			if diff := cmp.Diff(p.Coords(), p.RotatedLeft().RotatedRight().Coords()); diff != "" {
				t.Errorf("left then right changed offsets (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(p.Coords(), p.RotatedRight().RotatedLeft().Coords()); diff != "" {
				t.Errorf("right then left changed offsets (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFourRotationsReturnToStart(t *testing.T) {
	for _, s := range allShapes {
		p := NewPiece(s)
		r := p
		for i := 0; i < 4; i++ {
			r = r.RotatedRight()
		}
		if r.Coords() != p.Coords() {
			t.Errorf("%v: four right rotations = %v, expected %v", s, r.Coords(), p.Coords())
		}
	}
}

func TestRotationDoesNotAliasOriginal(t *testing.T) {
	p := NewPiece(TShape)
	before := p.Coords()
	_ = p.RotatedLeft()
	_ = p.RotatedRight()
	if p.Coords() != before {
		t.Errorf("rotation modified the original piece: %v, expected %v", p.Coords(), before)
	}
	if p.RotatedLeft().Shape() != TShape {
		t.Errorf("rotation changed the shape")
	}
}

func TestRotateLeftMapping(t *testing.T) {
	// T spawns pointing down; (x, y) -> (y, -x)
	got := NewPiece(TShape).RotatedLeft().Coords()
	want := [4][2]int{{0, 1}, {0, 0}, {0, -1}, {1, 0}}
	if got != want {
		t.Errorf("T.RotatedLeft() = %v, expected %v", got, want)
	}
}

func TestExtents(t *testing.T) {
	tests := []struct {
		shape                  Shape
		minX, maxX, minY, maxY int
	}{
		{ZShape, -1, 0, -1, 1},
		{SShape, 0, 1, -1, 1},
		{LineShape, 0, 0, -1, 2},
		{TShape, -1, 1, 0, 1},
		{SquareShape, 0, 1, 0, 1},
		{LShape, -1, 0, -1, 1},
		{MirroredLShape, 0, 1, -1, 1},
		{NoShape, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		p := NewPiece(tt.shape)
		got := [4]int{p.MinX(), p.MaxX(), p.MinY(), p.MaxY()}
		want := [4]int{tt.minX, tt.maxX, tt.minY, tt.maxY}
		if got != want {
			t.Errorf("%v extents = %v, expected %v", tt.shape, got, want)
		}
	}
}

func TestRandomPieceCoversAllShapes(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	seen := make(map[Shape]int)
	for i := 0; i < 700; i++ {
		s := RandomPiece(rng).Shape()
		if s == NoShape || s > MirroredLShape {
			t.Fatalf("RandomPiece() shape = %v", s)
		}
		seen[s]++
	}
	if len(seen) != NumShapes {
		t.Errorf("RandomPiece() produced %d distinct shapes, expected %d", len(seen), NumShapes)
	}
}

func TestShapeString(t *testing.T) {
	if NoShape.String() != "none" || MirroredLShape.String() != "mirrored-L" {
		t.Errorf("unexpected shape names %q %q", NoShape, MirroredLShape)
	}
	if Shape(99).String() != "invalid" {
		t.Errorf("Shape(99).String() = %q, expected invalid", Shape(99))
	}
}
