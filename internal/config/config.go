// Package config provides YAML-based maze configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-maze/internal/engine"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// MaxMazeSize bounds both maze dimensions.
const MaxMazeSize = 81

// MazeConfig contains all configuration for the maze game.
type MazeConfig struct {
	Maze    MazeDimensions `yaml:"maze"`
	Player  PlayerConfig   `yaml:"player"`
	View    ViewConfig     `yaml:"view"`
	Scoring ScoringConfig  `yaml:"scoring"`
	Endless EndlessConfig  `yaml:"endless"`
}

// MazeDimensions defines the generated grid size. Both must be odd.
type MazeDimensions struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines movement speeds per tick.
type PlayerConfig struct {
	MoveSpeed float64 `yaml:"move_speed"` // grid units
	TurnSpeed float64 `yaml:"turn_speed"` // radians
}

// ViewConfig defines the projection and overlays.
type ViewConfig struct {
	FOVDegrees  float64 `yaml:"fov_degrees"`
	MaxDistance float64 `yaml:"max_distance"`
	Minimap     bool    `yaml:"minimap"` // shown at start
}

// ScoringConfig defines how an escape is scored.
type ScoringConfig struct {
	Points          int `yaml:"points"`             // awarded for an escape at or under par
	ParTicksPerCell int `yaml:"par_ticks_per_cell"` // par = shortest path length * this
}

// EndlessConfig defines how mazes grow between escapes in endless mode.
type EndlessConfig struct {
	Growth  int `yaml:"growth"`   // added to each dimension per escape, even
	MaxSize int `yaml:"max_size"` // cap for each dimension, odd
}

// ScoreFor returns the score of an escape that took ticks against par.
// Escapes at or under par earn full points; slower ones earn proportionally
// less, never below 1.
func (s ScoringConfig) ScoreFor(ticks, par int) int {
	if ticks <= par || ticks <= 0 {
		return s.Points
	}
	return max(1, s.Points*par/ticks)
}

// Validate reports the first invalid setting.
func (c MazeConfig) Validate() error {
	if err := validDimension("maze.width", c.Maze.Width); err != nil {
		return err
	}
	if err := validDimension("maze.height", c.Maze.Height); err != nil {
		return err
	}
	if err := c.EngineParams().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Scoring.Points <= 0 || c.Scoring.ParTicksPerCell <= 0 {
		return fmt.Errorf("%w: scoring values must be positive", ErrInvalidConfig)
	}
	if c.Endless.Growth < 0 || c.Endless.Growth%2 != 0 {
		return fmt.Errorf("%w: endless.growth %d must be even and non-negative", ErrInvalidConfig, c.Endless.Growth)
	}
	if err := validDimension("endless.max_size", c.Endless.MaxSize); err != nil {
		return err
	}
	return nil
}

// EngineParams converts the configured speeds and view into engine settings.
func (c MazeConfig) EngineParams() engine.Params {
	return engine.Params{
		MoveSpeed:   c.Player.MoveSpeed,
		TurnSpeed:   c.Player.TurnSpeed,
		FOV:         c.View.FOVDegrees * math.Pi / 180,
		MaxDistance: c.View.MaxDistance,
	}
}

func validDimension(name string, v int) error {
	if v < 5 || v > MaxMazeSize || v%2 == 0 {
		return fmt.Errorf("%w: %s %d must be odd and within [5, %d]", ErrInvalidConfig, name, v, MaxMazeSize)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// SizeForPreset returns the square maze size of a preset, or 0 when the
// preset keeps the configured size.
func SizeForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 21
	case DifficultyNormal:
		return 41
	case DifficultyHard:
		return 61
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset keeps the configured maze and
// disables growth in endless mode.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
