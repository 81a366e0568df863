package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/engine"
)

var (
	flagStatePretty bool
	flagStateInput  string
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the JSON state of a fresh game",
	Long: `Print a game state as JSON: {"x", "y", "angle", "maze"}.

Without flags this is a new 41x41 game at the entrance. --seed makes the
maze reproducible, --config and --difficulty change its size and --input
replays a script first (see 'maze frame --help').

Examples:
  maze state
  maze state --seed 7 --pretty
  maze state --difficulty easy --input "w*10"`,
	Args: cobra.NoArgs,
	Run:  runState,
}

func init() {
	stateCmd.Flags().BoolVar(&flagStatePretty, "pretty", false, "Indent the JSON output")
	stateCmd.Flags().StringVarP(&flagStateInput, "input", "i", "", "Input script to replay before printing")
}

func runState(cmd *cobra.Command, _ []string) {
	inputs, err := parseScript(flagStateInput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var state *engine.State
	if flagSeed == 0 && flagConfig == "" && flagDifficulty == "" {
		state = engine.NewGameState()
	} else {
		cfg, err := loadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		state = newState(cfg, flagSeed)
	}

	for _, in := range inputs {
		state.Update(in)
	}

	var data []byte
	if flagStatePretty {
		data, err = json.MarshalIndent(state, "", "  ")
	} else {
		data, err = json.Marshal(state)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
}
