package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	flagScoresLimit int
	flagFastest     bool
	flagSize        int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best runs for a mode",
	Long: `Display the top runs for the given mode (default: maze).

With --fastest, lists the quickest single escapes of one maze size
instead of the highest scores. --limit 0 lists every run and --clear
deletes all runs recorded for the mode.

Examples:
  maze scores
  maze scores maze_endless -n 0
  maze scores --fastest --size 21
  maze scores maze_endless --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of runs to show (0 = all)")
	scoresCmd.Flags().BoolVar(&flagFastest, "fastest", false, "Show fastest escapes instead of top scores")
	scoresCmd.Flags().IntVar(&flagSize, "size", 41, "Maze size for --fastest")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "maze"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'maze list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all runs for %s.\n", title)
		return
	}

	var runs []storage.Run
	switch {
	case flagFastest:
		runs, err = store.FastestEscapes(gameID, flagSize, flagSize, flagScoresLimit)
		title = fmt.Sprintf("%s - Fastest %dx%d", title, flagSize, flagSize)
	case flagScoresLimit <= 0:
		runs, err = store.AllScores(gameID)
		title = fmt.Sprintf("All Runs - %s", title)
	default:
		runs, err = store.TopScores(gameID, flagScoresLimit)
		title = fmt.Sprintf("High Scores - %s", title)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'maze play %s' to set the first one!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-7s  %-7s  %-7s  %-7s  %-12s  %s\n", "Rank", "Score", "Escapes", "Maze", "Ticks", "Player", "Date")
	fmt.Printf("  %-4s  %-7s  %-7s  %-7s  %-7s  %-12s  %s\n", "----", "-----", "-------", "----", "-----", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-7d  %-7d  %-7s  %-7d  %-12s  %s\n",
			i+1, r.Score, r.Escapes, fmt.Sprintf("%dx%d", r.MazeWidth, r.MazeHeight),
			r.Ticks, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  |  Runs: %d  |  Escapes: %d", stats.HighScore, stats.RunsCount, stats.TotalEscapes)
		if stats.BestTicks > 0 {
			fmt.Printf("  |  Fastest: %d ticks", stats.BestTicks)
		}
		fmt.Println()
	}
}
