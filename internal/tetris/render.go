package tetris

import (
	"fmt"
	"math"

	"github.com/retrogrid/retris/internal/core"
)

const cellRune = '█'

// Render draws the visible field, the falling piece, and the HUD onto the
// screen. The spawn buffer rows stay hidden; a piece entering the field
// appears row by row.
func (g *Game) Render(s *core.Screen) {
	s.Clear()

	fieldW := g.grid.Width() + 2
	fieldH := g.grid.VisibleHeight() + 2
	if s.Width() < fieldW+18 || s.Height() < fieldH {
		s.DrawTextCentered(s.Height()/2, "terminal too small")
		return
	}

	left := (s.Width() - fieldW - 18) / 2
	top := (s.Height() - fieldH) / 2
	if top < 0 {
		top = 0
	}

	s.DrawBox(left, top, fieldW, fieldH, core.ColorGray)

	drawCell := func(col, row int, c core.Color) {
		visRow := row - g.grid.SpawnRows()
		if visRow < 0 || visRow >= g.grid.VisibleHeight() {
			return
		}
		s.SetCell(left+1+col, top+1+visRow, cellRune, c)
	}

	if g.grid.Cascading() {
		for _, c := range g.grid.CascadeCells() {
			drawCell(c.Col, c.Row+int(math.Round(c.Offset)), c.Color)
		}
	} else {
		for _, c := range g.grid.OccupiedCells() {
			drawCell(c.Col, c.Row, c.Color)
		}
	}

	if g.piece != nil {
		for _, c := range g.piece.ColoredCells() {
			drawCell(c.Col, c.Row, c.Color)
		}
	}

	g.renderHUD(s, left+fieldW+2, top)

	switch {
	case g.gameOver:
		drawCentered(s, top+fieldH/2-1, " GAME OVER ", core.ColorRed)
		drawCentered(s, top+fieldH/2, " press r to restart ", core.ColorWhite)
	case g.paused:
		drawCentered(s, top+fieldH/2, " PAUSED ", core.ColorYellow)
	case g.phase == phaseLevelTransition:
		drawCentered(s, top+fieldH/2, fmt.Sprintf(" LEVEL %d ", g.score.Level()), core.ColorBrightGreen)
	}
}

func (g *Game) renderHUD(s *core.Screen, x, y int) {
	s.DrawTextColored(x, y, "RETRIS", core.ColorBrightCyan)
	s.DrawTextColored(x, y+2, fmt.Sprintf("score %d", g.score.Score()), core.ColorWhite)
	s.DrawTextColored(x, y+3, fmt.Sprintf("high  %d", g.score.HighScore()), core.ColorGray)
	s.DrawTextColored(x, y+5, fmt.Sprintf("level %d", g.score.Level()), core.ColorBrightGreen)
	s.DrawTextColored(x, y+6, fmt.Sprintf("lines %d", g.score.Lines()), core.ColorWhite)
	if g.score.Multiplier() > 1 {
		s.DrawTextColored(x, y+7, fmt.Sprintf("multi x%d", g.score.Multiplier()), core.ColorBrightYellow)
	}
	if g.score.Combo() > 1 {
		s.DrawTextColored(x, y+8, fmt.Sprintf("combo x%d", g.score.Combo()), core.ColorBrightYellow)
	}
}

func drawCentered(s *core.Screen, y int, text string, c core.Color) {
	s.DrawTextColored((s.Width()-len(text))/2, y, text, c)
}
