package tetris

import (
	"math/rand"
	"time"

	"github.com/retrogrid/retris/internal/config"
	"github.com/retrogrid/retris/internal/core"
)

type phase int

const (
	phasePlaying phase = iota
	phaseLevelTransition
)

var configPath string

// SetConfigPath overrides the configuration file the game loads on Reset.
// Empty means the default search order.
func SetConfigPath(path string) {
	configPath = path
}

var _ core.Game = (*Game)(nil)

// Game is the falling-block game loop: it owns the grid, the active piece,
// and the score engine, and advances them one fixed-length frame per Step.
// All behavior is deterministic for a given seed and input sequence.
type Game struct {
	cfg     config.Config
	runtime core.RuntimeConfig

	rng *rand.Rand
	dt  float64

	grid  *Grid
	piece *Piece
	score *ScoreEngine

	sound   SoundSink
	persist PersistenceSink
	logf    func(format string, args ...any)

	phase           phase
	transitionTimer float64

	gameOver bool
	paused   bool
}

// NewGame creates a game with no-op sound and persistence sinks. Call the
// setters before Reset to wire real ones.
func NewGame() *Game {
	return &Game{
		sound:   NopSoundSink{},
		persist: NopPersistenceSink{},
	}
}

// SetSoundSink wires the sink that receives event cues.
func (g *Game) SetSoundSink(s SoundSink) {
	if s == nil {
		s = NopSoundSink{}
	}
	g.sound = s
}

// SetPersistenceSink wires the sink used to load and store the high score.
func (g *Game) SetPersistenceSink(p PersistenceSink) {
	if p == nil {
		p = NopPersistenceSink{}
	}
	g.persist = p
}

// SetLogf installs a diagnostic logger, forwarded to the grid on Reset.
func (g *Game) SetLogf(logf func(format string, args ...any)) {
	g.logf = logf
}

// ID returns the stable game identifier.
func (g *Game) ID() string { return "retris" }

// Title returns the display name.
func (g *Game) Title() string { return "Retris" }

// Reset starts a fresh game: loads configuration, seeds the random source,
// builds the grid, and spawns the first piece. A zero seed falls back to
// the wall clock.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	cfg, err := config.Load(configPath)
	if err != nil {
		if g.logf != nil {
			g.logf("config: %v, using defaults", err)
		}
		cfg = config.Default()
	}
	g.cfg = cfg

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.dt = 1.0 / float64(tickRate)

	g.grid = NewGrid(g.cfg.Field.Width, g.cfg.Field.VisibleHeight, g.cfg.Field.SpawnRows)
	g.grid.SetCascadeTuning(g.cfg.Transition.CascadeBaseVelocity, g.cfg.Transition.CascadeColumnFactor)
	g.grid.SetLogf(g.logf)

	g.score = NewScoreEngine(g.cfg.Scoring.BasePoints, g.cfg.Scoring.LinesPerLevel, g.persist)
	if high, err := g.persist.LoadHighScore(); err == nil {
		g.score.SetHighScore(high)
	}

	g.phase = phasePlaying
	g.transitionTimer = 0
	g.gameOver = false
	g.paused = false
	g.piece = nil

	g.spawnPiece()
}

// Step advances the game by one frame under the given input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		if in.Pressed(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return g.result()
	}

	if in.Pressed(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	switch g.phase {
	case phaseLevelTransition:
		g.stepTransition()
	default:
		g.stepPlaying(in)
	}

	return g.result()
}

// stepTransition advances the cascade animation and returns to play when
// the transition duration elapses.
func (g *Game) stepTransition() {
	g.transitionTimer += g.dt
	duration := g.cfg.Transition.Duration
	if duration <= 0 || g.transitionTimer >= duration {
		g.grid.ClearCascade()
		g.phase = phasePlaying
		g.transitionTimer = 0
		g.spawnPiece()
		return
	}
	g.grid.UpdateCascade(g.transitionTimer / duration)
}

func (g *Game) stepPlaying(in core.InputFrame) {
	if g.piece == nil {
		g.spawnPiece()
		if g.gameOver {
			return
		}
	}

	if g.piece.Advance(in, g.dt, g.grid) {
		g.sound.PlayShuffle()
	}

	if g.piece.Stopped() {
		g.lockPiece()
	}
}

// lockPiece transfers the stopped piece into the grid, clears completed
// rows, scores them, and either spawns the next piece or enters the level
// transition. Scoring always happens before the top-out check: a clear on
// the final lock still pays out and can still set a new high score; the
// check only decides whether play continues.
func (g *Game) lockPiece() {
	g.sound.PlayBounce()
	g.grid.MarkOccupied(g.piece.ColoredCells())
	g.piece = nil

	cleared := g.grid.ClearCompletedLines()

	leveledUp := false
	if cleared > 0 {
		g.sound.PlaySuccess()
		leveledUp = g.score.OnRowsCleared(uint32(cleared))
	} else {
		g.score.OnPieceLandedNoClear()
	}

	if g.spawnRowsOccupied() {
		g.gameOver = true
		return
	}

	if leveledUp {
		g.sound.PlayLevelUp()
		g.grid.StartCascade()
		g.phase = phaseLevelTransition
		g.transitionTimer = 0
		return
	}

	g.spawnPiece()
}

// spawnRowsOccupied reports whether any locked cell remains inside the
// spawn buffer rows after clears, which means the stack has reached the
// top.
func (g *Game) spawnRowsOccupied() bool {
	for row := 0; row < g.grid.SpawnRows(); row++ {
		for col := 0; col < g.grid.Width(); col++ {
			if g.grid.IsOccupied(col, row) {
				return true
			}
		}
	}
	return false
}

// spawnPiece creates the next piece at the top center with the level-scaled
// fall velocity. A piece that does not fit at spawn ends the game.
func (g *Game) spawnPiece() {
	kind := ShapeKind(g.rng.Intn(int(shapeKindCount)))
	velocity := g.cfg.Timing.SpawnVelocity + g.cfg.Timing.SpeedupPerLevel*float64(g.score.Level())

	tuning := PieceTuning{
		DASDelay:       g.cfg.Timing.DASDelay,
		ARRRate:        g.cfg.Timing.ARRRate,
		SoftDropFactor: g.cfg.Timing.SoftDropFactor,
	}

	piece := NewPiece(kind, g.grid.Width()/2, 0, velocity, tuning)
	if !piece.Fits(g.grid) {
		g.gameOver = true
		g.piece = nil
		return
	}
	g.piece = piece
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State()}
}

// State returns the current game state snapshot.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Score(),
		Level:    g.score.Level(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Grid exposes the occupancy grid for rendering and tests.
func (g *Game) Grid() *Grid { return g.grid }

// ActivePiece returns the falling piece, or nil between locks and during
// transitions.
func (g *Game) ActivePiece() *Piece { return g.piece }

// ScoreEngine exposes the scoring state for rendering and tests.
func (g *Game) ScoreEngine() *ScoreEngine { return g.score }
