package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game modes",
	Long: `Shows a list of all registered maze modes with the number of runs
and the best score recorded for each.`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err != nil {
		log.Warn("could not open scores database", "error", err)
	} else {
		defer store.Close()
		if stats, err = store.GetAllGamesStats(); err != nil {
			log.Warn("could not read stats", "error", err)
		}
	}

	printModes(cmd.OutOrStdout(), registry.List(), stats)
}

// printModes writes the mode table. stats may be nil.
func printModes(w io.Writer, games []registry.GameInfo, stats map[string]*storage.GameStats) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	fmt.Fprintln(w, "Available modes:")
	fmt.Fprintln(w)

	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Fprintf(w, "  %-*s  %-*s  %5s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Runs", "Best")
	fmt.Fprintf(w, "  %-*s  %-*s  %5s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----", "----")
	for _, g := range games {
		runs, best := 0, "-"
		if s := stats[g.ID]; s != nil {
			runs = s.RunsCount
			best = fmt.Sprintf("%d", s.HighScore)
		}
		fmt.Fprintf(w, "  %-*s  %-*s  %5d  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, runs, best)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'maze play <id>' to play a mode.")
}
