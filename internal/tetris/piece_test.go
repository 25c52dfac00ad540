package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retrogrid/retris/internal/core"
)

const testDt = 1.0 / 60.0

func defaultTuning() PieceTuning {
	return PieceTuning{
		DASDelay:       0.133,
		ARRRate:        20.0,
		SoftDropFactor: 5.0,
	}
}

// stepHeld advances the piece n frames with the given actions held.
func stepHeld(p *Piece, g *Grid, n int, actions ...core.Action) {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	for i := 0; i < n; i++ {
		p.Advance(in, testDt, g)
	}
}

func TestNewPieceCellsAroundPivot(t *testing.T) {
	g := newTestGrid()
	p := NewPiece(ShapeSquare, 5, 0, 2.0, defaultTuning())

	want := []Cell{{5, 0}, {6, 0}, {5, 1}, {6, 1}}
	assert.Equal(t, want, p.Cells())
	assert.True(t, p.Fits(g))
}

func TestSpawnOverhangDoesNotBlockFit(t *testing.T) {
	// The straight piece spawned at row 0 has a cell at row -1; that cell
	// is above the grid and must not invalidate the spawn position.
	g := newTestGrid()
	p := NewPiece(ShapeStraight, 5, 0, 2.0, defaultTuning())

	require.True(t, p.Fits(g))
}

func TestFitsRejectsWallsFloorAndStack(t *testing.T) {
	g := newTestGrid()

	assert.False(t, NewPiece(ShapeSquare, -1, 10, 2.0, defaultTuning()).Fits(g), "left wall")
	assert.False(t, NewPiece(ShapeSquare, 9, 10, 2.0, defaultTuning()).Fits(g), "right wall")
	assert.False(t, NewPiece(ShapeSquare, 5, 23, 2.0, defaultTuning()).Fits(g), "floor")

	g.MarkOccupied([]ColoredCell{{Col: 5, Row: 10, Color: core.ColorRed}})
	assert.False(t, NewPiece(ShapeSquare, 5, 10, 2.0, defaultTuning()).Fits(g), "stack")
}

func TestRotateInPlace(t *testing.T) {
	g := newTestGrid()
	p := NewPiece(ShapeStraight, 5, 10, 2.0, defaultTuning())

	require.True(t, p.RotateClockwise(g))

	col, row := p.Pivot()
	assert.Equal(t, 5, col, "in-place rotation must not shift the pivot")
	assert.Equal(t, 10, row)
}

func TestRotateWallKickPrefersSmallestShift(t *testing.T) {
	// A vertical straight piece against the left wall rotates into a
	// horizontal one that needs column -1; the kick shifts right by one.
	g := newTestGrid()
	p := NewPiece(ShapeStraight, 0, 10, 2.0, defaultTuning())

	require.True(t, p.RotateClockwise(g))

	col, _ := p.Pivot()
	assert.Equal(t, 1, col)
}

func TestRotateWallKickSecondOffset(t *testing.T) {
	// A vertical straight piece at the right wall rotates into a
	// horizontal one spanning columns 8..11; shifting by -1 still leaves
	// column 10 outside, so the kick falls through to -2.
	g := newTestGrid()
	p := NewPiece(ShapeStraight, 9, 10, 2.0, defaultTuning())

	require.True(t, p.RotateClockwise(g))

	col, _ := p.Pivot()
	assert.Equal(t, 7, col)
}

func TestRotateRevertsWhenNoKickFits(t *testing.T) {
	// Box the piece in so no horizontal shift can make the rotation legal.
	g := newTestGrid()
	for row := 9; row <= 12; row++ {
		fillRow(g, row, 0)
	}
	p := NewPiece(ShapeStraight, 0, 10, 2.0, defaultTuning())
	require.True(t, p.Fits(g))

	before := append([]Cell(nil), p.Cells()...)
	assert.False(t, p.RotateClockwise(g))
	assert.Equal(t, before, p.Cells(), "failed rotation must leave the piece untouched")
}

func TestHorizontalTapMovesOneCell(t *testing.T) {
	g := newTestGrid()
	p := NewPiece(ShapeSquare, 5, 10, 0, defaultTuning()) // zero velocity: no gravity

	stepHeld(p, g, 1, core.ActionLeft)
	col, _ := p.Pivot()
	assert.Equal(t, 4, col, "first frame of a new direction moves immediately")

	// Further frames inside the DAS window must not move.
	stepHeld(p, g, 5, core.ActionLeft)
	col, _ = p.Pivot()
	assert.Equal(t, 4, col)
}

func TestAutoRepeatAfterDelay(t *testing.T) {
	g := newTestGrid()
	p := NewPiece(ShapeSquare, 8, 10, 0, defaultTuning())

	// DAS 0.133s is 8 frames at 60fps; ARR 20 cells/s repeats every 3
	// frames. Hold left for 30 frames: 1 immediate move, ~8 frames of
	// delay, then repeats.
	stepHeld(p, g, 30, core.ActionLeft)

	col, _ := p.Pivot()
	assert.Less(t, col, 3, "auto-repeat should have crossed most of the field")
	assert.GreaterOrEqual(t, col, 0)
}

func TestAutoRepeatStopsAtWall(t *testing.T) {
	g := newTestGrid()
	p := NewPiece(ShapeSquare, 5, 10, 0, defaultTuning())

	stepHeld(p, g, 240, core.ActionLeft)

	col, _ := p.Pivot()
	assert.Equal(t, 0, col, "piece should rest against the wall")
}

func TestDirectionReleaseResetsDelay(t *testing.T) {
	g := newTestGrid()
	p := NewPiece(ShapeSquare, 5, 10, 0, defaultTuning())

	stepHeld(p, g, 7, core.ActionLeft) // inside DAS window
	stepHeld(p, g, 1)                  // release
	stepHeld(p, g, 1, core.ActionLeft) // tap again

	col, _ := p.Pivot()
	assert.Equal(t, 3, col, "two taps, two cells")

	stepHeld(p, g, 5, core.ActionLeft)
	col, _ = p.Pivot()
	assert.Equal(t, 3, col, "delay restarts after a release")
}

func TestBothDirectionsHeldIsNeutral(t *testing.T) {
	g := newTestGrid()
	p := NewPiece(ShapeSquare, 5, 10, 0, defaultTuning())

	stepHeld(p, g, 60, core.ActionLeft, core.ActionRight)

	col, _ := p.Pivot()
	assert.Equal(t, 5, col)
}

func TestGravityDescendsAtVelocity(t *testing.T) {
	g := newTestGrid()
	p := NewPiece(ShapeSquare, 5, 0, 2.0, defaultTuning())

	// 2 cells/s at 60fps: one cell roughly every 30 frames.
	stepHeld(p, g, 29)
	_, row := p.Pivot()
	assert.Equal(t, 0, row, "no descent before the first threshold")

	stepHeld(p, g, 3)
	_, row = p.Pivot()
	assert.Equal(t, 1, row)

	stepHeld(p, g, 30)
	_, row = p.Pivot()
	assert.Equal(t, 2, row)
}

func TestSoftDropMultipliesVelocity(t *testing.T) {
	g := newTestGrid()
	p := NewPiece(ShapeSquare, 5, 0, 2.0, defaultTuning())

	// 10 cells/s with soft drop: one cell roughly every 6 frames.
	stepHeld(p, g, 5, core.ActionSoftDrop)
	_, row := p.Pivot()
	assert.Equal(t, 0, row)

	stepHeld(p, g, 2, core.ActionSoftDrop)
	_, row = p.Pivot()
	assert.Equal(t, 1, row)
}

func TestPieceStopsOnFloor(t *testing.T) {
	g := newTestGrid()
	p := NewPiece(ShapeSquare, 5, 0, 2.0, defaultTuning())

	stepHeld(p, g, 60*60, core.ActionSoftDrop)

	require.True(t, p.Stopped())
	_, row := p.Pivot()
	assert.Equal(t, 22, row, "square pivot rests one above the floor row")
}

func TestPieceStopsOnStack(t *testing.T) {
	g := newTestGrid()
	fillRow(g, 20)
	p := NewPiece(ShapeSquare, 5, 0, 2.0, defaultTuning())

	stepHeld(p, g, 60*60, core.ActionSoftDrop)

	require.True(t, p.Stopped())
	_, row := p.Pivot()
	assert.Equal(t, 18, row, "square bottom row rests on top of the stack")
}

func TestStoppedPieceIgnoresInput(t *testing.T) {
	g := newTestGrid()
	p := NewPiece(ShapeSquare, 5, 0, 2.0, defaultTuning())
	stepHeld(p, g, 60*60, core.ActionSoftDrop)
	require.True(t, p.Stopped())

	in := core.NewInputFrame()
	in.Press(core.ActionRotate)
	in.Hold(core.ActionLeft)
	assert.False(t, p.Advance(in, testDt, g))

	col, row := p.Pivot()
	assert.Equal(t, 5, col)
	assert.Equal(t, 22, row)
}

func TestRotationReportsCue(t *testing.T) {
	g := newTestGrid()
	p := NewPiece(ShapeTee, 5, 10, 0, defaultTuning())

	in := core.NewInputFrame()
	in.Press(core.ActionRotate)
	assert.True(t, p.Advance(in, testDt, g))

	in.Clear()
	assert.False(t, p.Advance(in, testDt, g), "no rotation without a press")
}
