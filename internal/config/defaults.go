package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the default maze configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Maze: MazeDimensions{
			Width:  41,
			Height: 41,
		},
		Player: PlayerConfig{
			MoveSpeed: 0.05,
			TurnSpeed: 0.05,
		},
		View: ViewConfig{
			FOVDegrees:  60,
			MaxDistance: 20,
			Minimap:     false,
		},
		Scoring: ScoringConfig{
			Points:          1000,
			ParTicksPerCell: 30,
		},
		Endless: EndlessConfig{
			Growth:  2,
			MaxSize: MaxMazeSize,
		},
	}
}
