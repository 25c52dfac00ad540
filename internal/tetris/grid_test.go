package tetris

import (
	"math"
	"strings"
	"testing"

	"github.com/retrogrid/retris/internal/core"
)

func newTestGrid() *Grid {
	return NewGrid(10, 20, 4)
}

// fillRow occupies every column of a row except the listed gaps.
func fillRow(g *Grid, row int, gaps ...int) {
	skip := make(map[int]bool, len(gaps))
	for _, c := range gaps {
		skip[c] = true
	}
	cells := make([]ColoredCell, 0, g.Width())
	for col := 0; col < g.Width(); col++ {
		if skip[col] {
			continue
		}
		cells = append(cells, ColoredCell{Col: col, Row: row, Color: core.ColorCyan})
	}
	g.MarkOccupied(cells)
}

func TestGridDimensions(t *testing.T) {
	g := newTestGrid()
	if g.Width() != 10 || g.VisibleHeight() != 20 || g.SpawnRows() != 4 {
		t.Fatalf("dimensions = %dx%d spawn %d", g.Width(), g.VisibleHeight(), g.SpawnRows())
	}
	if g.Height() != 24 {
		t.Fatalf("total height = %d, want 24", g.Height())
	}
}

func TestIsOccupiedOutOfBoundsActsAsWall(t *testing.T) {
	g := newTestGrid()
	for _, c := range []Cell{{-1, 0}, {10, 0}, {0, -1}, {0, 24}} {
		if !g.IsOccupied(c.Col, c.Row) {
			t.Errorf("cell (%d, %d) outside the field should count as occupied", c.Col, c.Row)
		}
	}
	if g.IsOccupied(0, 0) {
		t.Error("empty in-bounds cell reported occupied")
	}
}

func TestMarkOccupiedStoresColor(t *testing.T) {
	g := newTestGrid()
	g.MarkOccupied([]ColoredCell{{Col: 3, Row: 10, Color: core.ColorMagenta}})

	if !g.IsOccupied(3, 10) {
		t.Fatal("marked cell not occupied")
	}
	c, ok := g.CellColor(3, 10)
	if !ok || c != core.ColorMagenta {
		t.Errorf("CellColor = %v, %v", c, ok)
	}
}

func TestMarkOccupiedDropsOutOfBoundsAndLogsOnce(t *testing.T) {
	g := newTestGrid()
	var logs []string
	g.SetLogf(func(format string, args ...any) {
		logs = append(logs, format)
	})

	g.MarkOccupied([]ColoredCell{
		{Col: -1, Row: 5, Color: core.ColorRed},
		{Col: 10, Row: 5, Color: core.ColorRed},
		{Col: 2, Row: 5, Color: core.ColorRed},
	})
	g.MarkOccupied([]ColoredCell{{Col: 0, Row: 99, Color: core.ColorRed}})

	if !g.IsOccupied(2, 5) {
		t.Error("in-bounds cell was not stored")
	}
	if len(logs) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d", len(logs))
	}
	if !strings.Contains(logs[0], "out-of-bounds") {
		t.Errorf("unexpected diagnostic: %q", logs[0])
	}
}

func TestCanMoveDownFloorAndStack(t *testing.T) {
	g := newTestGrid()

	if !g.CanMoveDown([]Cell{{Col: 0, Row: 10}}) {
		t.Error("free fall should be allowed")
	}
	if g.CanMoveDown([]Cell{{Col: 0, Row: 23}}) {
		t.Error("descent through the floor should be blocked")
	}

	g.MarkOccupied([]ColoredCell{{Col: 4, Row: 12, Color: core.ColorCyan}})
	if g.CanMoveDown([]Cell{{Col: 4, Row: 11}}) {
		t.Error("descent onto an occupied cell should be blocked")
	}
}

func TestCanMoveDownAboveGridAlwaysAllowed(t *testing.T) {
	g := newTestGrid()
	fillRow(g, 0)

	// Any cell above the grid makes the whole piece free to descend, even
	// when another cell sits directly on top of the stack.
	cells := []Cell{{Col: 0, Row: -1}, {Col: 0, Row: 23}}
	if !g.CanMoveDown(cells) {
		t.Error("piece partially above the grid must always be able to descend")
	}
}

func TestClearCompletedLinesSingle(t *testing.T) {
	g := newTestGrid()
	g.MarkOccupied([]ColoredCell{{Col: 7, Row: 22, Color: core.ColorYellow}})
	fillRow(g, 23)

	if got := g.ClearCompletedLines(); got != 1 {
		t.Fatalf("cleared = %d, want 1", got)
	}
	if !g.IsOccupied(7, 23) {
		t.Error("cell above the cleared row should shift down")
	}
	if g.IsOccupied(7, 22) {
		t.Error("shifted cell left a copy behind")
	}
}

func TestClearCompletedLinesStackedRows(t *testing.T) {
	// Two adjacent full rows: after the first clear the shift moves the
	// second full row into the same index, which must be re-tested.
	g := newTestGrid()
	fillRow(g, 22)
	fillRow(g, 23)
	g.MarkOccupied([]ColoredCell{{Col: 0, Row: 21, Color: core.ColorGreen}})

	if got := g.ClearCompletedLines(); got != 2 {
		t.Fatalf("cleared = %d, want 2", got)
	}
	if !g.IsOccupied(0, 23) {
		t.Error("surviving cell should land on the floor row")
	}
	if len(g.OccupiedCells()) != 1 {
		t.Errorf("occupied cells = %d, want 1", len(g.OccupiedCells()))
	}
}

func TestClearCompletedLinesSkipsPartialRows(t *testing.T) {
	g := newTestGrid()
	fillRow(g, 23, 4) // gap at column 4

	if got := g.ClearCompletedLines(); got != 0 {
		t.Fatalf("cleared = %d, want 0", got)
	}
	if !g.IsOccupied(0, 23) {
		t.Error("partial row must survive")
	}
}

func TestOccupiedCellsOrdering(t *testing.T) {
	g := newTestGrid()
	g.MarkOccupied([]ColoredCell{
		{Col: 5, Row: 23, Color: core.ColorRed},
		{Col: 1, Row: 22, Color: core.ColorBlue},
		{Col: 3, Row: 22, Color: core.ColorGreen},
	})

	cells := g.OccupiedCells()
	if len(cells) != 3 {
		t.Fatalf("len = %d", len(cells))
	}
	want := []ColoredCell{
		{Col: 1, Row: 22, Color: core.ColorBlue},
		{Col: 3, Row: 22, Color: core.ColorGreen},
		{Col: 5, Row: 23, Color: core.ColorRed},
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("cells[%d] = %+v, want %+v", i, cells[i], want[i])
		}
	}
}

func TestStartCascadeSnapshotsAndEmptiesGrid(t *testing.T) {
	g := newTestGrid()
	g.MarkOccupied([]ColoredCell{
		{Col: 0, Row: 23, Color: core.ColorRed},
		{Col: 9, Row: 23, Color: core.ColorBlue},
	})

	g.StartCascade()

	if !g.Cascading() {
		t.Fatal("grid should be cascading")
	}
	if len(g.OccupiedCells()) != 0 {
		t.Error("grid should be empty during the cascade")
	}
	if len(g.CascadeCells()) != 2 {
		t.Fatalf("cascade cells = %d, want 2", len(g.CascadeCells()))
	}
}

func TestUpdateCascadeColumnStagger(t *testing.T) {
	g := newTestGrid()
	cells := make([]ColoredCell, 0, 5)
	for col := 0; col < 5; col++ {
		cells = append(cells, ColoredCell{Col: col, Row: 20, Color: core.ColorWhite})
	}
	g.MarkOccupied(cells)
	g.StartCascade()

	g.UpdateCascade(0.5)

	// Leftmost columns fall fastest; velocity scales by 1 - 0.15*col.
	snapshot := g.CascadeCells()
	drop := float64(g.VisibleHeight() + 2)
	for i, c := range snapshot {
		want := 0.5 * drop * (1 - 0.15*float64(c.Col))
		if math.Abs(c.Offset-want) > 1e-9 {
			t.Errorf("cell %d (col %d): offset = %f, want %f", i, c.Col, c.Offset, want)
		}
		if i > 0 && snapshot[i].Offset >= snapshot[i-1].Offset {
			t.Errorf("offsets should strictly decrease left to right, got %f then %f",
				snapshot[i-1].Offset, snapshot[i].Offset)
		}
	}
}

func TestUpdateCascadeClampsProgress(t *testing.T) {
	g := newTestGrid()
	g.MarkOccupied([]ColoredCell{{Col: 0, Row: 23, Color: core.ColorRed}})
	g.StartCascade()

	g.UpdateCascade(2.0)
	full := g.CascadeCells()[0].Offset

	g.UpdateCascade(1.0)
	if got := g.CascadeCells()[0].Offset; got != full {
		t.Errorf("progress above 1 should clamp: %f vs %f", full, got)
	}
}

func TestClearCascade(t *testing.T) {
	g := newTestGrid()
	g.MarkOccupied([]ColoredCell{{Col: 0, Row: 23, Color: core.ColorRed}})
	g.StartCascade()
	g.ClearCascade()

	if g.Cascading() {
		t.Error("cascade should be over")
	}
	if len(g.CascadeCells()) != 0 {
		t.Error("cascade cells should be gone")
	}
}
