package config

import "github.com/vovakirdan/tui-maze/internal/core"

// DifficultyManager computes the maze size for each run of an endless
// session from the number of escapes so far.
type DifficultyManager struct {
	base    MazeDimensions
	endless EndlessConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg MazeConfig) *DifficultyManager {
	return &DifficultyManager{
		base:    cfg.Maze,
		endless: cfg.Endless,
	}
}

// IsEnabled returns whether mazes grow between escapes.
func (d *DifficultyManager) IsEnabled() bool {
	return d.endless.Growth > 0 && d.endless.MaxSize > min(d.base.Width, d.base.Height)
}

// Size returns the maze dimensions after the given number of escapes.
// Each dimension grows independently and stops at the cap; a base already
// above the cap is left alone.
func (d *DifficultyManager) Size(escapes int) (width, height int) {
	if !d.IsEnabled() || escapes <= 0 {
		return d.base.Width, d.base.Height
	}
	return d.grow(d.base.Width, escapes), d.grow(d.base.Height, escapes)
}

func (d *DifficultyManager) grow(base, escapes int) int {
	if base >= d.endless.MaxSize {
		return base
	}
	size := base + d.endless.Growth*escapes
	if size > d.endless.MaxSize {
		size = d.endless.MaxSize
	}
	return size
}

// Level returns progress towards the largest maze (0.0 to 1.0).
func (d *DifficultyManager) Level(escapes int) float64 {
	if !d.IsEnabled() {
		return 0
	}
	base := min(d.base.Width, d.base.Height)
	w, h := d.Size(escapes)
	span := float64(d.endless.MaxSize - base)
	return core.ClampF(float64(min(w, h)-base)/span, 0.0, 1.0)
}
