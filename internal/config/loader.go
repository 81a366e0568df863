package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// mazeFile is the config file name looked up in each search directory.
const mazeFile = "maze.yaml"

// LoadMaze loads the maze configuration.
// Search order: customPath -> ~/.tui-maze/configs/maze.yaml -> ./configs/maze.yaml -> embedded default
//
// Files are decoded over the defaults, so a file may set only the keys it
// changes. A custom path that cannot be read, parsed or validated is an
// error; the other locations are skipped when unusable.
func LoadMaze(customPath string) (MazeConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadMazeFile(customPath)
		if err != nil {
			return DefaultMazeConfig(), err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(mazeFile); userCfgPath != "" {
		if cfg, err := loadMazeFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadMazeFile(filepath.Join("configs", mazeFile)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parseMaze(defaultMazeYAML)
	if err != nil {
		return DefaultMazeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func loadMazeFile(path string) (MazeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MazeConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := parseMaze(data)
	if err != nil {
		return MazeConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// parseMaze decodes data over the defaults and validates the result.
func parseMaze(data []byte) (MazeConfig, error) {
	cfg := DefaultMazeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MazeConfig{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return MazeConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui-maze", "configs", filename)
}

// ApplyMazePreset modifies the config based on a difficulty preset.
func ApplyMazePreset(cfg *MazeConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Endless.Growth = 0
		return
	}
	if size := SizeForPreset(preset); size > 0 {
		cfg.Maze.Width = size
		cfg.Maze.Height = size
		cfg.Endless.MaxSize = max(cfg.Endless.MaxSize, size)
	}

	// View aids per preset
	switch preset {
	case DifficultyEasy:
		cfg.View.Minimap = true
	case DifficultyHard:
		cfg.View.MaxDistance = 12
	}
}
