package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/buggy-racer/internal/core"
	"github.com/vovakirdan/buggy-racer/internal/platform/tui"
	"github.com/vovakirdan/buggy-racer/internal/registry"
	"github.com/vovakirdan/buggy-racer/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
	flagHistory     bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show session and lap records",
	Long: `Display the sessions with the most laps and the fastest single laps.

Examples:
  buggy scores
  buggy scores --limit 20
  buggy scores --interactive
  buggy scores --history
  buggy scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse records in a scrollable table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries per list")
	scoresCmd.Flags().BoolVar(&flagHistory, "history", false, "List every recorded session, newest first")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all sessions and laps of the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := gameArg(args)

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'buggy list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Fprintf(out, "Cleared all records for %s.\n", title)
		return nil
	}

	if flagHistory {
		return printHistory(out, store, gameID, title)
	}

	if flagInteractive {
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, gameID, title, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	laps, err := store.BestLaps(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving laps: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n", title)
	fmt.Fprintln(out)

	if len(scores) == 0 && len(laps) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'buggy play %s' to set the first record!\n", gameID)
		return nil
	}

	fmt.Fprintln(out, "Most laps in a session")
	fmt.Fprintf(out, "  %-4s  %-12s  %-6s  %s\n", "Rank", "Player", "Laps", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %-6s  %s\n", "----", "------", "----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-12s  %-6d  %s\n",
			i+1, orDash(entry.Player), entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Fastest laps")
	fmt.Fprintf(out, "  %-4s  %-12s  %-8s  %s\n", "Rank", "Player", "Time", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %-8s  %s\n", "----", "------", "----", "----")
	for i, entry := range laps {
		fmt.Fprintf(out, "  %-4d  %-12s  %-8s  %s\n",
			i+1, orDash(entry.Player), core.FormatLapTime(entry.Duration), entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Sessions: %d  Average laps: %.1f  Laps driven: %d\n",
			stats.GamesCount, stats.AvgScore, stats.TotalLaps)
	}
	return nil
}

func printHistory(out io.Writer, store *storage.Store, gameID, title string) error {
	sessions, err := store.AllScores(gameID)
	if err != nil {
		return fmt.Errorf("retrieving sessions: %w", err)
	}

	fmt.Fprintf(out, "Session history - %s\n", title)
	fmt.Fprintln(out)
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-16s  %-12s  %s\n", "Date", "Player", "Laps")
	fmt.Fprintf(out, "  %-16s  %-12s  %s\n", "----", "------", "----")
	for _, entry := range sessions {
		fmt.Fprintf(out, "  %-16s  %-12s  %d\n",
			entry.CreatedAt.Format("2006-01-02 15:04"), orDash(entry.Player), entry.Score)
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
