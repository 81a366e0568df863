// maze is a first-person ASCII maze for the terminal.
//
// Usage:
//
//	maze list              - List game modes
//	maze play [mode]       - Play a mode (default: maze)
//	maze menu              - Pick a mode and difficulty interactively
//	maze serve             - Start SSH server for remote play
//	maze scores [mode]     - Show best runs
//	maze frame             - Print one rendered frame after scripted input
//	maze state             - Print the JSON state of a fresh game
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible mazes
//	--db <path>           - Set database path (default: ~/.tui-maze/scores.db)
//	--config <path>       - Custom maze config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/config"
	mazegame "github.com/vovakirdan/tui-maze/internal/games/maze"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Find your way out of a maze in first person",
	Long: `Maze renders a randomly generated maze in first person with ASCII
ray casting, right in your terminal.

Available commands:
  list     - Show game modes
  play     - Play a mode directly
  menu     - Interactive mode and difficulty picker
  serve    - Start SSH server for remote play
  scores   - View best runs
  frame    - Render a single frame headlessly
  state    - Print a fresh game state as JSON

Examples:
  maze play
  maze play maze_endless --difficulty easy
  maze menu
  maze serve --ssh :2222
  maze frame --seed 7 --input "w*40,e*10"`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tui-maze/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(frameCmd)
	rootCmd.AddCommand(stateCmd)
}

// setup applies the global flags before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	log.SetLevel(level)

	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("invalid --difficulty %q: want easy, normal, hard or fixed", flagDifficulty)
	}

	mazegame.SetConfigPath(flagConfig)
	mazegame.SetDifficultyPreset(flagDifficulty)
	return nil
}

// loadConfig loads the maze config the same way the game does.
func loadConfig() (config.MazeConfig, error) {
	cfg, err := config.LoadMaze(flagConfig)
	if err != nil {
		return cfg, err
	}
	if preset := config.ParsePreset(flagDifficulty); preset != "" {
		config.ApplyMazePreset(&cfg, preset)
	}
	return cfg, nil
}
