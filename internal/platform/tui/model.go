package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

// LocalPlayer is the player name recorded for runs played in a local terminal.
const LocalPlayer = "local"

// Model is the Bubble Tea model for running a maze game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	player     string
	keyMapper  *KeyMapper
	held       *HeldKeys
	inputFrame core.InputFrame // one-shot actions for the next tick
	gameState  core.GameState
	quitOnBack bool
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if player == "" {
		player = LocalPlayer
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		player:     player,
		keyMapper:  NewKeyMapper(),
		held:       NewHeldKeys(DefaultHoldWindow, cfg.TickRate),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
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
	if m.keyMapper.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.saveRun()
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		m.saveRun()
		m.backToMenu = true
		if m.quitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case action == core.ActionRestart:
		m.restart()
		return m, nil

	case action.IsMovement():
		m.held.Press(action)

	case action == core.ActionPause:
		m.held.Release()
		m.inputFrame.Set(action)

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The game keeps running; it renders to whatever size the screen has.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	m.held.Apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Record the run once the maze is escaped
	if m.gameState.GameOver {
		m.saveRun()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// restart records an unfinished endless run and starts a new maze.
func (m *Model) restart() {
	m.saveRun()

	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.runSaved = false
	m.held.Release()
	m.inputFrame.Clear()
}

// saveRun stores the current run if it scored and has not been stored yet.
func (m *Model) saveRun() {
	if m.runSaved || m.gameState.Score <= 0 {
		return
	}
	m.runSaved = true
	if m.store == nil {
		return
	}

	s := m.gameState
	_, err := m.store.SaveRun(storage.Run{
		GameID:     m.game.ID(),
		Player:     m.player,
		Score:      s.Score,
		Escapes:    s.Escapes,
		MazeWidth:  s.MazeWidth,
		MazeHeight: s.MazeHeight,
		Ticks:      s.Ticks,
	})
	if err != nil {
		log.Warn("could not save run", "game", m.game.ID(), "player", m.player, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".tui-maze", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		log.Warn("could not save screenshot", "path", path, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a game in the local terminal.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg, LocalPlayer)
	model.quitOnBack = true

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
