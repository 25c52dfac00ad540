package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/retrogrid/retris/internal/core"
	"github.com/retrogrid/retris/internal/storage"
	"github.com/retrogrid/retris/internal/tetris"
)

// holdDecayTicks is how many simulation ticks a holdable key counts as down
// after its last key event. Terminals deliver no key-up events, so held
// state is synthesized from the autorepeat stream: while the key is down the
// terminal keeps sending the key and the window keeps refreshing; once the
// repeats stop arriving the hold expires. The window has to outlast the
// terminal's initial autorepeat delay, or a held key would flicker.
const holdDecayTicks = 20

// Model is the Bubble Tea model driving the game loop.
type Model struct {
	game   *tetris.Game
	screen *core.Screen
	store  *storage.Store
	keys   *KeyMapper
	config core.RuntimeConfig

	frame     core.InputFrame
	heldTicks map[core.Action]int

	gameState  core.GameState
	quitting   bool
	scoreSaved bool // one save per game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *tetris.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		keys:      NewKeyMapper(),
		config:    cfg,
		frame:     core.NewInputFrame(),
		heldTicks: make(map[core.Action]int),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
	case Holdable(action):
		// First event of a press fires the action; autorepeat events only
		// refresh the hold window.
		if m.heldTicks[action] == 0 {
			m.frame.Press(action)
		}
		m.heldTicks[action] = holdDecayTicks
	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.frame.Press(action)
		}
	default:
		m.frame.Press(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.frame.Pressed(core.ActionRestart) && m.gameState.GameOver {
		// Fresh seed for the new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.frame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	for action, ticks := range m.heldTicks {
		if ticks <= 0 {
			continue
		}
		m.heldTicks[action] = ticks - 1
		m.frame.Hold(action)
	}

	result := m.game.Step(m.frame)
	m.gameState = result.State

	// Record the finished game once
	if m.gameState.GameOver && !m.scoreSaved {
		if m.store != nil && m.gameState.Score > 0 {
			score := m.game.ScoreEngine()
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(score.Score(), score.Level(), score.Lines())
		}
		m.scoreSaved = true
	}

	m.frame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given game.
func Run(game *tetris.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
