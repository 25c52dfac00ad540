package tetris

import (
	"github.com/retrogrid/retris/internal/core"
)

// wallKickOffsets are the horizontal pivot shifts tried, in priority order,
// when an in-place rotation is illegal. Rotation never changes the row.
var wallKickOffsets = [...]int{-1, 1, -2, 2}

// PieceTuning groups the movement timing parameters for an active piece.
type PieceTuning struct {
	DASDelay       float64 // seconds a direction must be held before auto-repeat
	ARRRate        float64 // cells per second once auto-repeat is active
	SoftDropFactor float64 // fall velocity multiplier while soft drop is held
}

// Piece is the one falling piece, exclusively owned by the game loop. It
// carries its rotated geometry, pivot, and all movement timing state, and
// queries the grid for legality; it never mutates the grid.
type Piece struct {
	shape    *Shape
	cellX    int
	cellY    int
	color    core.Color
	velocity float64 // fall speed in cells per second
	tuning   PieceTuning

	fallTimer float64 // gravity accumulator

	// Horizontal DAS/ARR state
	lastDirection       int // -1, 0, 1
	dasTimer            float64
	dasActive           bool
	horizontalMoveTimer float64

	stopped bool
}

// NewPiece creates a piece of the given kind with its pivot at the spawn
// cell. The fall timer starts at zero so the piece does not drop on the
// very frame it spawns.
func NewPiece(kind ShapeKind, cellX, cellY int, velocity float64, tuning PieceTuning) *Piece {
	return &Piece{
		shape:    NewShape(kind),
		cellX:    cellX,
		cellY:    cellY,
		color:    kind.Color(),
		velocity: velocity,
		tuning:   tuning,
	}
}

// Kind returns the piece's shape kind.
func (p *Piece) Kind() ShapeKind {
	return p.shape.Kind()
}

// Color returns the piece's display color.
func (p *Piece) Color() core.Color {
	return p.color
}

// Pivot returns the piece's pivot cell.
func (p *Piece) Pivot() (col, row int) {
	return p.cellX, p.cellY
}

// Stopped reports whether the piece can no longer descend. The game loop
// consumes a stopped piece by transferring its cells into the grid.
func (p *Piece) Stopped() bool {
	return p.stopped
}

// Cells returns the piece's occupied cells at its current position.
func (p *Piece) Cells() []Cell {
	return p.cellsAt(p.cellX, p.cellY)
}

func (p *Piece) cellsAt(cellX, cellY int) []Cell {
	offsets := p.shape.Offsets()
	cells := make([]Cell, len(offsets))
	for i, o := range offsets {
		cells[i] = Cell{Col: cellX + o.DX, Row: cellY + o.DY}
	}
	return cells
}

// ColoredCells returns the piece's occupied cells with its color, ready to
// be transferred into the grid on lock.
func (p *Piece) ColoredCells() []ColoredCell {
	cells := p.Cells()
	colored := make([]ColoredCell, len(cells))
	for i, c := range cells {
		colored[i] = ColoredCell{Col: c.Col, Row: c.Row, Color: p.color}
	}
	return colored
}

// positionValid reports whether the piece fits at the given pivot: every
// cell inside the horizontal bounds and above the floor, and every cell at
// a non-negative row unoccupied. Negative rows are the spawn buffer and
// never block placement by themselves.
func (p *Piece) positionValid(cellX, cellY int, grid *Grid) bool {
	for _, c := range p.cellsAt(cellX, cellY) {
		if c.Col < 0 || c.Col >= grid.Width() {
			return false
		}
		if c.Row >= grid.Height() {
			return false
		}
		if c.Row < 0 {
			continue
		}
		if grid.IsOccupied(c.Col, c.Row) {
			return false
		}
	}
	return true
}

// Fits reports whether the piece is legally placed at its current pivot.
func (p *Piece) Fits(grid *Grid) bool {
	return p.positionValid(p.cellX, p.cellY, grid)
}

// RotateClockwise rotates the piece with wall kick: the rotation is tried
// at the current pivot first, then at each horizontal offset in priority
// order. If no position validates, the geometry is reverted and the pivot
// left unchanged. Returns whether the rotation took effect.
func (p *Piece) RotateClockwise(grid *Grid) bool {
	p.shape.RotateClockwise()

	if p.positionValid(p.cellX, p.cellY, grid) {
		return true
	}

	for _, offset := range wallKickOffsets {
		if p.positionValid(p.cellX+offset, p.cellY, grid) {
			p.cellX += offset
			return true
		}
	}

	p.shape.RotateCounterClockwise()
	return false
}

// canMoveHorizontal reports whether every cell can shift by direction
// without leaving the field or hitting an occupied cell.
func (p *Piece) canMoveHorizontal(direction int, grid *Grid) bool {
	for _, c := range p.Cells() {
		col := c.Col + direction
		if col < 0 || col >= grid.Width() {
			return false
		}
		if c.Row < 0 {
			continue
		}
		if grid.IsOccupied(col, c.Row) {
			return false
		}
	}
	return true
}

// Advance moves the piece by one frame: rotation, horizontal DAS/ARR, then
// gravity. Returns whether a rotation took effect this frame (the game loop
// plays a sound cue for it).
func (p *Piece) Advance(in core.InputFrame, dt float64, grid *Grid) bool {
	rotated := false
	if in.Pressed(core.ActionRotate) && !p.stopped {
		rotated = p.RotateClockwise(grid)
	}

	if !p.stopped {
		p.advanceHorizontal(in, dt, grid)
	}
	if !p.stopped && p.velocity > 0 {
		p.advanceFall(in, dt, grid)
	}

	return rotated
}

// advanceHorizontal runs the DAS/ARR state machine. The first frame a
// direction becomes active moves one cell immediately and resets the
// timers. Holding the direction accumulates the DAS delay; once it elapses
// the per-cell timer emits one move per crossing of the ARR interval, with
// catch-up when a frame spans several crossings. A blocked move stops
// further repeats this frame but leaves auto-repeat armed. Releasing, or
// holding both directions at once, resets to idle.
func (p *Piece) advanceHorizontal(in core.InputFrame, dt float64, grid *Grid) {
	movingLeft := in.Held(core.ActionLeft)
	movingRight := in.Held(core.ActionRight)

	direction := 0
	switch {
	case movingLeft && !movingRight:
		direction = -1
	case movingRight && !movingLeft:
		direction = 1
	}

	if direction == 0 {
		p.lastDirection = 0
		p.dasTimer = 0
		p.dasActive = false
		p.horizontalMoveTimer = 0
		return
	}

	if direction != p.lastDirection {
		p.lastDirection = direction
		p.dasTimer = 0
		p.dasActive = false
		p.horizontalMoveTimer = 0

		if p.canMoveHorizontal(direction, grid) {
			p.cellX += direction
		}
		return
	}

	if !p.dasActive {
		p.dasTimer += dt
		if p.dasTimer >= p.tuning.DASDelay {
			p.dasActive = true
			p.horizontalMoveTimer = 0
		}
		return
	}

	timePerCell := 1.0 / p.tuning.ARRRate
	p.horizontalMoveTimer += dt
	for p.horizontalMoveTimer >= timePerCell {
		if !p.canMoveHorizontal(direction, grid) {
			p.horizontalMoveTimer = 0
			break
		}
		p.cellX += direction
		p.horizontalMoveTimer -= timePerCell
	}
}

// advanceFall runs discrete gravity with the same accumulate-and-catch-up
// pattern. Every threshold crossing re-checks the grid; when descent is
// illegal the piece stops in place without moving.
func (p *Piece) advanceFall(in core.InputFrame, dt float64, grid *Grid) {
	velocity := p.velocity
	if in.Held(core.ActionSoftDrop) {
		velocity *= p.tuning.SoftDropFactor
	}

	timePerCell := 1.0 / velocity
	p.fallTimer += dt

	for p.fallTimer >= timePerCell {
		if !grid.CanMoveDown(p.Cells()) {
			p.stopped = true
			p.fallTimer = 0
			break
		}
		p.cellY++
		p.fallTimer -= timePerCell
	}
}
