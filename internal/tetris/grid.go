// Package tetris implements the falling-block puzzle simulation: the
// occupancy grid, the active piece with its movement timing, the scoring
// engine, and the frame-stepped game loop tying them together. The package
// has no terminal dependencies; rendering happens into a core.Screen buffer
// and all I/O goes through the SoundSink and PersistenceSink boundaries.
package tetris

import (
	"github.com/retrogrid/retris/internal/core"
)

// Cell is one grid position.
type Cell struct {
	Col, Row int
}

// ColoredCell is an occupied grid position together with its color.
type ColoredCell struct {
	Col, Row int
	Color    core.Color
}

// Grid is the occupancy field. Rows [0, spawnRows) are a hidden buffer
// above the visible playfield where pieces spawn; visible rows are
// [spawnRows, height). Cells are stored in a flat array indexed row*W+col,
// with core.ColorDefault meaning empty.
type Grid struct {
	width     int
	height    int // total height including the spawn buffer
	spawnRows int

	cells []core.Color

	cascade             []CascadeCell
	cascading           bool
	cascadeBaseVelocity float64
	cascadeColumnFactor float64

	logf       func(format string, args ...any)
	warnedDrop bool // one-shot flag for the out-of-bounds mark diagnostic
}

// NewGrid creates an empty grid with the given visible dimensions and
// hidden spawn rows.
func NewGrid(width, visibleHeight, spawnRows int) *Grid {
	return &Grid{
		width:               width,
		height:              visibleHeight + spawnRows,
		spawnRows:           spawnRows,
		cells:               make([]core.Color, width*(visibleHeight+spawnRows)),
		cascadeBaseVelocity: 800.0,
		cascadeColumnFactor: 0.15,
	}
}

// SetLogf installs a diagnostic logger. The grid logs only caller bugs
// (out-of-bounds lock requests); nil disables logging.
func (g *Grid) SetLogf(logf func(format string, args ...any)) {
	g.logf = logf
}

// SetCascadeTuning overrides the cascade animation velocities.
func (g *Grid) SetCascadeTuning(baseVelocity, columnFactor float64) {
	if baseVelocity > 0 {
		g.cascadeBaseVelocity = baseVelocity
	}
	if columnFactor > 0 {
		g.cascadeColumnFactor = columnFactor
	}
}

// Width returns the field width in cells.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the total field height including the spawn buffer.
func (g *Grid) Height() int {
	return g.height
}

// SpawnRows returns the number of hidden rows above the visible field.
func (g *Grid) SpawnRows() int {
	return g.spawnRows
}

// VisibleHeight returns the on-screen field height in cells.
func (g *Grid) VisibleHeight() int {
	return g.height - g.spawnRows
}

func (g *Grid) inBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

func (g *Grid) index(col, row int) int {
	return row*g.width + col
}

// IsOccupied reports whether the cell is occupied. Out-of-bounds
// coordinates count as occupied, acting as an implicit wall and floor.
func (g *Grid) IsOccupied(col, row int) bool {
	if !g.inBounds(col, row) {
		return true
	}
	return g.cells[g.index(col, row)] != core.ColorDefault
}

// CellColor returns the color of an occupied in-bounds cell, or false.
func (g *Grid) CellColor(col, row int) (core.Color, bool) {
	if !g.inBounds(col, row) {
		return core.ColorDefault, false
	}
	c := g.cells[g.index(col, row)]
	return c, c != core.ColorDefault
}

// MarkOccupied writes the given cells into the grid. Out-of-bounds entries
// are silently dropped: legal placements are always pre-validated by the
// collision queries, so a drop here indicates a caller bug and is logged
// once per grid instance.
func (g *Grid) MarkOccupied(cells []ColoredCell) {
	for _, c := range cells {
		if !g.inBounds(c.Col, c.Row) {
			if !g.warnedDrop && g.logf != nil {
				g.warnedDrop = true
				g.logf("grid: dropped out-of-bounds cell (%d, %d), field %dx%d", c.Col, c.Row, g.width, g.height)
			}
			continue
		}
		g.cells[g.index(c.Col, c.Row)] = c.Color
	}
}

// CanMoveDown reports whether a piece occupying the given cells can descend
// one row. A piece with any cell still above the grid (row < 0) can always
// move down, so it can never lock while partially unspawned, regardless of
// what lies beneath it.
func (g *Grid) CanMoveDown(cells []Cell) bool {
	for _, c := range cells {
		if c.Row < 0 {
			return true
		}
	}

	for _, c := range cells {
		below := c.Row + 1
		if below >= g.height {
			return false
		}
		if g.IsOccupied(c.Col, below) {
			return false
		}
	}
	return true
}

// rowFull reports whether every column of the row is occupied.
func (g *Grid) rowFull(row int) bool {
	for col := 0; col < g.width; col++ {
		if g.cells[g.index(col, row)] == core.ColorDefault {
			return false
		}
	}
	return true
}

// removeRowAndShiftDown clears the row and shifts every row above it down
// by one, leaving the top row empty.
func (g *Grid) removeRowAndShiftDown(row int) {
	for r := row; r > 0; r-- {
		src := g.cells[g.index(0, r-1) : g.index(0, r-1)+g.width]
		dst := g.cells[g.index(0, r) : g.index(0, r)+g.width]
		copy(dst, src)
	}
	for col := 0; col < g.width; col++ {
		g.cells[g.index(col, 0)] = core.ColorDefault
	}
}

// ClearCompletedLines scans from the bottom up to the first visible row,
// clearing every full row and shifting the rows above it down. After a
// clear the same row index is re-tested, because the shift just moved new
// content into it; a single pass without the re-test would miss stacked
// full rows. Returns the number of rows cleared.
func (g *Grid) ClearCompletedLines() int {
	cleared := 0
	row := g.height - 1

	for row >= g.spawnRows {
		if g.rowFull(row) {
			g.removeRowAndShiftDown(row)
			cleared++
			continue // re-test the same index
		}
		row--
	}

	return cleared
}

// OccupiedCells returns every occupied cell with its color, ordered by row
// then column.
func (g *Grid) OccupiedCells() []ColoredCell {
	var cells []ColoredCell
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if c := g.cells[g.index(col, row)]; c != core.ColorDefault {
				cells = append(cells, ColoredCell{Col: col, Row: row, Color: c})
			}
		}
	}
	return cells
}

// Clear empties the grid.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = core.ColorDefault
	}
}
