package tetris

// ScoreEngine tracks score, cleared lines, level, and the compounding
// multiplier chain. Points for a clear are
//
//	base × rowsBonus × previousMultiplier × 2^(combo-1) × levelMultiplier
//
// where previousMultiplier is the rows bonus of the preceding clear in the
// current combo chain and combo counts consecutive clearing locks. A lock
// that clears nothing resets both back to their idle values.
type ScoreEngine struct {
	score     uint64
	highScore uint64

	lines      uint32
	level      uint32
	multiplier uint32 // rows bonus of the previous clear; 1 when idle
	combo      uint32 // consecutive clearing locks; 0 when idle

	basePoints    uint64
	linesPerLevel uint32

	persist PersistenceSink
}

// NewScoreEngine creates an engine with the given base points per clear and
// lines-per-level threshold. The persistence sink receives the high score
// whenever it is beaten; pass NopPersistenceSink to keep it in memory only.
func NewScoreEngine(basePoints uint64, linesPerLevel uint32, persist PersistenceSink) *ScoreEngine {
	if persist == nil {
		persist = NopPersistenceSink{}
	}
	s := &ScoreEngine{
		basePoints:    basePoints,
		linesPerLevel: linesPerLevel,
		persist:       persist,
	}
	s.Reset()
	return s
}

// Reset returns the engine to a fresh game, keeping the high score.
func (s *ScoreEngine) Reset() {
	s.score = 0
	s.lines = 0
	s.level = 0
	s.multiplier = 1
	s.combo = 0
}

func (s *ScoreEngine) Score() uint64      { return s.score }
func (s *ScoreEngine) HighScore() uint64  { return s.highScore }
func (s *ScoreEngine) Lines() uint32      { return s.lines }
func (s *ScoreEngine) Level() uint32      { return s.level }
func (s *ScoreEngine) Multiplier() uint32 { return s.multiplier }
func (s *ScoreEngine) Combo() uint32      { return s.combo }

// SetHighScore seeds the high score, typically from storage at game start.
func (s *ScoreEngine) SetHighScore(score uint64) {
	s.highScore = score
}

// rowsBonus rewards clearing more rows at once superlinearly: 2^n − 1.
func rowsBonus(rows uint32) uint64 {
	return (uint64(1) << rows) - 1
}

// levelMultiplier maps the level to a scoring bracket.
func levelMultiplier(level uint32) uint64 {
	switch {
	case level < 5:
		return 1
	case level < 10:
		return 2
	case level < 15:
		return 3
	case level < 20:
		return 5
	default:
		return 8
	}
}

// OnRowsCleared awards points for a lock that cleared rows and reports
// whether the clear crossed a level threshold. Lines and level advance
// before the award, but the level bracket is taken from the level at clear
// time, so the clear that triggers a level-up is still paid at the old
// bracket.
func (s *ScoreEngine) OnRowsCleared(rows uint32) (leveledUp bool) {
	if rows == 0 {
		return false
	}

	levelAtClear := s.level

	s.lines += rows
	newLevel := s.lines / s.linesPerLevel
	if newLevel > s.level {
		s.level = newLevel
		leveledUp = true
	}

	s.combo++

	bonus := rowsBonus(rows)
	points := s.basePoints * bonus * uint64(s.multiplier)
	points <<= s.combo - 1
	points *= levelMultiplier(levelAtClear)
	s.score += points

	if s.score > s.highScore {
		s.highScore = s.score
		_ = s.persist.SaveHighScore(s.highScore)
	}

	s.multiplier = uint32(bonus)
	return leveledUp
}

// OnPieceLandedNoClear breaks the combo chain after a lock that cleared
// nothing.
func (s *ScoreEngine) OnPieceLandedNoClear() {
	s.combo = 0
	s.multiplier = 1
}
