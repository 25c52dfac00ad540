package tetris

import (
	"github.com/retrogrid/retris/internal/core"
)

// ShapeKind identifies one of the five gameplay pieces.
type ShapeKind int

const (
	ShapeStraight ShapeKind = iota // I: four cells in a line
	ShapeSquare                    // O: 2×2 block, rotation is a no-op
	ShapeTee                       // T
	ShapeEll                       // L
	ShapeSlew                      // S
	shapeKindCount
)

// String returns a human-readable name for the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeStraight:
		return "Straight"
	case ShapeSquare:
		return "Square"
	case ShapeTee:
		return "Tee"
	case ShapeEll:
		return "Ell"
	case ShapeSlew:
		return "Slew"
	default:
		return "Unknown"
	}
}

// Color returns the display color associated with the shape kind.
func (k ShapeKind) Color() core.Color {
	switch k {
	case ShapeStraight:
		return core.ColorCyan
	case ShapeSquare:
		return core.ColorYellow
	case ShapeTee:
		return core.ColorMagenta
	case ShapeEll:
		return core.ColorOrange
	case ShapeSlew:
		return core.ColorGreen
	default:
		return core.ColorWhite
	}
}

// Offset is an integer cell offset relative to a piece's pivot.
type Offset struct {
	DX, DY int
}

// Shape is a piece geometry: a fixed-length list of integer offsets around
// the pivot. Rotation mutates the offsets in place; the slice is allocated
// once and never grows.
type Shape struct {
	kind    ShapeKind
	offsets []Offset
}

// NewShape creates the geometry for the given kind.
func NewShape(kind ShapeKind) *Shape {
	var offsets []Offset
	switch kind {
	case ShapeStraight:
		// Vertical line through the pivot
		offsets = []Offset{{0, -1}, {0, 0}, {0, 1}, {0, 2}}
	case ShapeSquare:
		// 2×2 block with the pivot at its top-left cell
		offsets = []Offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	case ShapeTee:
		offsets = []Offset{{-1, 0}, {0, 0}, {1, 0}, {0, 1}}
	case ShapeEll:
		offsets = []Offset{{0, -1}, {0, 0}, {0, 1}, {1, 1}}
	default: // ShapeSlew
		kind = ShapeSlew
		offsets = []Offset{{-1, 0}, {0, 0}, {0, 1}, {1, 1}}
	}
	return &Shape{kind: kind, offsets: offsets}
}

// Kind returns the shape's kind.
func (s *Shape) Kind() ShapeKind {
	return s.kind
}

// Offsets returns the live offset list. Callers must treat it as read-only;
// it is rotated in place and shared with the owning piece.
func (s *Shape) Offsets() []Offset {
	return s.offsets
}

// RotateClockwise rotates the geometry 90° clockwise around the pivot:
// (dx, dy) → (dy, -dx). The square stays grid-aligned and does not rotate.
func (s *Shape) RotateClockwise() {
	if s.kind == ShapeSquare {
		return
	}
	for i, o := range s.offsets {
		s.offsets[i] = Offset{DX: o.DY, DY: -o.DX}
	}
}

// RotateCounterClockwise applies the inverse rotation (dx, dy) → (-dy, dx).
// Used to undo a failed clockwise rotation.
func (s *Shape) RotateCounterClockwise() {
	if s.kind == ShapeSquare {
		return
	}
	for i, o := range s.offsets {
		s.offsets[i] = Offset{DX: -o.DY, DY: o.DX}
	}
}
