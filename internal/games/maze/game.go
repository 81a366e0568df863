// Package maze implements the first-person maze game modes on top of the
// engine. The player walks from the entrance to the exit cell; the classic
// mode ends on escape while the endless mode generates a larger maze after
// every escape.
package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/engine"
	grid "github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeEndless Mode = "endless"
)

// Screen requirements for the 3D view plus HUD.
const (
	minScreenW = 20
	minScreenH = 8
	hudHeight  = 1
)

// bannerSeconds is how long the escape banner stays up in endless mode.
const bannerSeconds = 2

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements a maze run.
type Game struct {
	mode   Mode
	preset config.DifficultyPreset // overrides the package preset when set

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.MazeConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	// Current maze
	state *engine.State
	par   int // ticks
	ticks int // ticks spent in the current maze

	// Session
	score       int
	escapes     int
	totalTicks  int
	escaped     bool
	paused      bool
	bannerTicks int

	// Overlays
	showMap  bool
	showHint bool
	hint     []grid.Point
	hintFrom grid.Point

	view *core.Screen
}

// New creates a classic maze game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates an endless maze game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("maze", func() registry.Game { return New() })
	registry.Register("maze_endless", func() registry.Game { return NewEndless() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "maze_endless"
	}
	return "maze"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Maze (Endless)"
	}
	return "Maze"
}

// SetDifficulty selects a preset for this game only. Sessions sharing a
// process use it instead of SetDifficultyPreset. Unknown names clear it.
func (g *Game) SetDifficulty(preset string) {
	g.preset = config.ParsePreset(preset)
}

// Reset loads the configuration and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadMaze(configPath)
	if err != nil {
		cfg = config.DefaultMazeConfig()
	}

	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	if preset != "" {
		config.ApplyMazePreset(&cfg, preset)
	}
	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig starts a fresh session using cfg as is.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.MazeConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg)

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.score = 0
	g.escapes = 0
	g.totalTicks = 0
	g.escaped = false
	g.paused = false
	g.bannerTicks = 0
	g.showMap = cfg.View.Minimap
	g.showHint = false
	g.newMaze()
}

// newMaze generates the maze for the current escape count and places the
// player at its entrance.
func (g *Game) newMaze() {
	w, h := g.difficulty.Size(g.escapes)
	m := grid.Generate(w, h, g.rng)

	g.state = engine.New(m, g.cfg.EngineParams())
	g.ticks = 0
	g.hint = nil

	// Par follows the shortest route, one cell at a time.
	steps := max(1, len(m.Solve(m.Start(), m.Exit()))-1)
	g.par = steps * g.cfg.Scoring.ParTicksPerCell
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.escaped {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionMap) {
		g.showMap = !g.showMap
	}
	if in.Has(core.ActionHint) {
		g.showHint = !g.showHint
		if g.showHint {
			g.showMap = true
		}
	}

	g.ticks++
	g.totalTicks++
	if g.bannerTicks > 0 {
		g.bannerTicks--
	}

	g.state.Update(PlayerInputFrom(in))

	if g.state.AtExit() {
		g.onEscape()
	}

	return core.StepResult{State: g.State()}
}

// PlayerInputFrom maps the movement actions of a frame to engine intents.
func PlayerInputFrom(in core.InputFrame) engine.PlayerInput {
	return engine.PlayerInput{
		Forward:   in.Has(core.ActionForward),
		Backward:  in.Has(core.ActionBackward),
		Left:      in.Has(core.ActionStrafeLeft),
		Right:     in.Has(core.ActionStrafeRight),
		TurnLeft:  in.Has(core.ActionTurnLeft),
		TurnRight: in.Has(core.ActionTurnRight),
	}
}

func (g *Game) onEscape() {
	g.escapes++
	g.score += g.cfg.Scoring.ScoreFor(g.ticks, g.par)

	if g.mode != ModeEndless {
		g.escaped = true
		return
	}

	g.bannerTicks = bannerSeconds * max(1, g.runtime.TickRate)
	g.newMaze()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.score,
		GameOver:   g.escaped,
		Paused:     g.paused,
		Escapes:    g.escapes,
		Ticks:      g.totalTicks,
		MazeWidth:  g.state.Maze.Width(),
		MazeHeight: g.state.Maze.Height(),
	}
}

// Engine returns the engine state of the current maze.
func (g *Game) Engine() *engine.State {
	return g.state
}

// Escapes returns the number of mazes escaped this session.
func (g *Game) Escapes() int {
	return g.escapes
}

// Elapsed returns the session time derived from the tick count.
func (g *Game) Elapsed() time.Duration {
	rate := max(1, g.runtime.TickRate)
	return time.Duration(g.totalTicks) * time.Second / time.Duration(rate)
}

// hintPath returns the shortest route from the player's cell to the exit,
// recomputed only when the player changes cell.
func (g *Game) hintPath() []grid.Point {
	cell := g.state.Cell()
	if g.hint == nil || cell != g.hintFrom {
		g.hint = g.state.Maze.Solve(cell, g.state.Maze.Exit())
		g.hintFrom = cell
	}
	return g.hint
}

// Status returns a one-line summary for logs.
func (g *Game) Status() string {
	m := g.state.Maze
	return fmt.Sprintf("%s %dx%d escapes=%d score=%d", g.ID(), m.Width(), m.Height(), g.escapes, g.score)
}
