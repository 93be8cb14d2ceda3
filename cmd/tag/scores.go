package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tag/internal/platform/tui"
	"github.com/vovakirdan/tui-tag/internal/storage"
)

var (
	flagLimit  int
	flagBrowse bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recent rounds and wins per color",
	Long: `Display the most recent finished rounds and how often each color won.

Examples:
  tag scores
  tag scores --limit 5
  tag scores --browse
  tag scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to list")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse the history in an interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored rounds")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening rounds database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRounds(); err != nil {
			return err
		}
		fmt.Println("Round history cleared.")
		return nil
	}

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunHistory(store, width, height)
	}

	rounds, err := store.RecentRounds(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving rounds: %w", err)
	}

	fmt.Println("Recent rounds")
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tag' and finish a round to fill the history!")
		return nil
	}

	// Print header
	fmt.Printf("  %-16s  %-7s  %-7s  %-8s  %s\n", "Played", "Players", "Winner", "Time", "Tags")
	fmt.Printf("  %-16s  %-7s  %-7s  %-8s  %s\n", "------", "-------", "------", "----", "----")

	for _, r := range rounds {
		fmt.Printf("  %-16s  %-7d  %-7s  %-8s  %d\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Players, r.WinnerColor,
			fmt.Sprintf("%.1fs", r.DurationSecs), r.Transfers)
	}

	wins, err := store.WinsByColor()
	if err != nil {
		return fmt.Errorf("retrieving wins: %w", err)
	}
	fmt.Println()
	fmt.Println("Wins by color")
	for _, w := range wins {
		fmt.Printf("  %-7s  %d\n", w.Color, w.Wins)
	}

	stats, err := store.Stats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Println()
	fmt.Printf("Rounds played: %d   Average length: %.1fs   Longest: %.1fs   Average tags: %.1f\n",
		stats.Rounds, stats.AvgDuration, stats.LongestRound, stats.AvgTransfers)
	return nil
}
