package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkotenko/clickrush/internal/core"
	"github.com/dkotenko/clickrush/internal/games/rush"
	"github.com/dkotenko/clickrush/internal/registry"
	"github.com/dkotenko/clickrush/internal/storage"
)

// roundReporter is implemented by games that expose a detailed end-of-round
// summary for persistence.
type roundReporter interface {
	Summary() (rush.Summary, bool)
}

// GameModel is the Bubble Tea model for running a game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the result has been saved for the current round
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionBack {
		m.backToMenu = true
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse turns left-button presses into click input for the game.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.SetClick(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps its logical
// playfield and rescales rendering, so no reset is needed.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by one step.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.RoundOver && !m.scoreSaved {
		m.saveResult()
		m.scoreSaved = true
	}
	if !m.gameState.RoundOver {
		m.scoreSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveResult persists the score and, when available, the full round summary.
// Saving is best-effort, play continues regardless.
func (m *GameModel) saveResult() {
	if m.store == nil {
		return
	}

	//nolint:errcheck
	m.store.SaveScore(m.game.ID(), m.gameState.Score)

	reporter, ok := m.game.(roundReporter)
	if !ok {
		return
	}
	summary, ok := reporter.Summary()
	if !ok {
		return
	}

	//nolint:errcheck
	m.store.SaveRound(storage.RoundResult{
		GameID:       m.game.ID(),
		Score:        summary.Points,
		DurationSecs: summary.DurationSecs,
		PointsPerSec: summary.PointsPerSec,
		Hits:         summary.Hits,
		BonusHits:    summary.BonusHits,
		Misses:       summary.Misses,
		BestStreak:   summary.BestStreak,
	})
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".clickrush", "screenshots")
	//nolint:errcheck
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// WantsMenu returns true if the player asked to go back to the menu.
func (m GameModel) WantsMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if the player asked to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting && !m.backToMenu
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a single game session.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Clicks are a primary input for the games
	)

	_, err := p.Run()
	return err
}
