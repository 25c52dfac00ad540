package tetris

import (
	"github.com/retrogrid/retris/internal/core"
)

// CascadeCell is a transient copy of an occupied cell animated during the
// level transition. Offset is the vertical draw offset in rows below the
// cell's home position; purely cosmetic.
type CascadeCell struct {
	Col, Row int
	Color    core.Color
	Offset   float64
	velocity float64
}

// StartCascade snapshots every occupied cell into cascade cells and empties
// the authoritative grid: the field is logically clear from this instant
// even while the cells are still animating. Fall velocity decreases per
// column by a fixed factor, producing a diagonal sweep across the field.
func (g *Grid) StartCascade() {
	g.cascading = true
	g.cascade = g.cascade[:0]

	for _, c := range g.OccupiedCells() {
		velocity := g.cascadeBaseVelocity * (1.0 - g.cascadeColumnFactor*float64(c.Col))
		g.cascade = append(g.cascade, CascadeCell{
			Col:      c.Col,
			Row:      c.Row,
			Color:    c.Color,
			velocity: velocity,
		})
	}

	g.Clear()
}

// UpdateCascade advances the animation to the given progress in [0, 1].
// Each cell's offset scales with its per-column velocity, so faster columns
// have already fallen off screen while slower ones are still dropping.
func (g *Grid) UpdateCascade(progress float64) {
	if !g.cascading {
		return
	}

	progress = core.ClampF(progress, 0, 1)
	dropDistance := float64(g.VisibleHeight() + 2) // past the bottom edge

	for i := range g.cascade {
		g.cascade[i].Offset = progress * dropDistance * (g.cascade[i].velocity / g.cascadeBaseVelocity)
	}
}

// ClearCascade discards the transient cells and ends the transition.
func (g *Grid) ClearCascade() {
	g.cascading = false
	g.cascade = nil
}

// Cascading reports whether the cascade animation is active.
func (g *Grid) Cascading() bool {
	return g.cascading
}

// CascadeCells returns the transient animation cells. Valid only while
// Cascading returns true.
func (g *Grid) CascadeCells() []CascadeCell {
	return g.cascade
}
