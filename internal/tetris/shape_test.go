package tetris

import (
	"testing"
)

func offsetsEqual(a, b []Offset) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestShapeCellCounts(t *testing.T) {
	for kind := ShapeKind(0); kind < shapeKindCount; kind++ {
		s := NewShape(kind)
		if len(s.Offsets()) != 4 {
			t.Errorf("%v: expected 4 offsets, got %d", kind, len(s.Offsets()))
		}
	}
}

func TestRotateClockwiseMapsOffsets(t *testing.T) {
	// (dx, dy) -> (dy, -dx): the vertical straight piece becomes horizontal
	s := NewShape(ShapeStraight)
	s.RotateClockwise()

	want := []Offset{{-1, 0}, {0, 0}, {1, 0}, {2, 0}}
	if !offsetsEqual(s.Offsets(), want) {
		t.Errorf("rotated straight offsets = %v, want %v", s.Offsets(), want)
	}
}

func TestSquareRotationIsNoop(t *testing.T) {
	s := NewShape(ShapeSquare)
	before := append([]Offset(nil), s.Offsets()...)

	s.RotateClockwise()
	if !offsetsEqual(s.Offsets(), before) {
		t.Errorf("square changed under rotation: %v", s.Offsets())
	}
}

func TestFourRotationsIdentity(t *testing.T) {
	for kind := ShapeKind(0); kind < shapeKindCount; kind++ {
		s := NewShape(kind)
		before := append([]Offset(nil), s.Offsets()...)

		for i := 0; i < 4; i++ {
			s.RotateClockwise()
		}
		if !offsetsEqual(s.Offsets(), before) {
			t.Errorf("%v: four rotations changed offsets: %v -> %v", kind, before, s.Offsets())
		}
	}
}

func TestRotateCounterClockwiseInverts(t *testing.T) {
	for kind := ShapeKind(0); kind < shapeKindCount; kind++ {
		s := NewShape(kind)
		before := append([]Offset(nil), s.Offsets()...)

		s.RotateClockwise()
		s.RotateCounterClockwise()
		if !offsetsEqual(s.Offsets(), before) {
			t.Errorf("%v: rotate then revert changed offsets: %v -> %v", kind, before, s.Offsets())
		}
	}
}

func TestShapeColorsDistinctFromEmpty(t *testing.T) {
	for kind := ShapeKind(0); kind < shapeKindCount; kind++ {
		if kind.Color() == 0 {
			t.Errorf("%v: color must not be the empty sentinel", kind)
		}
	}
}
