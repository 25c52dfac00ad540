package tetris

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying         GameStateType = "playing"
	StateLevelTransition GameStateType = "level_transition"
	StatePaused          GameStateType = "paused"
	StateGameOver        GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Score      uint64
	HighScore  uint64
	Lines      uint32
	Level      uint32
	Multiplier uint32
	Combo      uint32
	PieceKind  ShapeKind // meaningful only when HasPiece
	HasPiece   bool
	PieceCol   int
	PieceRow   int
	Occupied   int // number of locked cells
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.phase == phaseLevelTransition:
		state = StateLevelTransition
	}

	snap := Snapshot{
		Score:      g.score.Score(),
		HighScore:  g.score.HighScore(),
		Lines:      g.score.Lines(),
		Level:      g.score.Level(),
		Multiplier: g.score.Multiplier(),
		Combo:      g.score.Combo(),
		Occupied:   len(g.grid.OccupiedCells()),
		State:      state,
	}
	if g.piece != nil {
		snap.HasPiece = true
		snap.PieceKind = g.piece.Kind()
		snap.PieceCol, snap.PieceRow = g.piece.Pivot()
	}
	return snap
}
