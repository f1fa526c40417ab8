package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/loop-arcade/internal/platform/tui"
	"github.com/vovakirdan/loop-arcade/internal/registry"
	"github.com/vovakirdan/loop-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top scores for a game, or a summary of every game when no
game is given.

Examples:
  arcade scores
  arcade scores flappy
  arcade scores invaders --limit 25
  arcade scores racer --clear
  arcade scores --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "How many scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every score of the game")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagScoresTUI:
		return tui.RunScoreboard(store)
	case len(args) == 0:
		return printSummary(store)
	}

	gameID := args[0]
	g, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w\nRun 'arcade list' to see available games", err)
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all scores for %s.\n", g.Title())
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", g.Title())
	fmt.Println()
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	now := time.Now()
	fmt.Printf("  %-4s  %-12s  %s\n", "Rank", "Score", "When")
	fmt.Printf("  %-4s  %-12s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-12s  %s\n", i+1, humanize.Comma(int64(entry.Score)), humanize.RelTime(entry.CreatedAt, now, "ago", "from now"))
	}

	fmt.Println()
	if best, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %s\n", humanize.Comma(int64(best)))
	}
	return nil
}

// printSummary lists every game that has been played.
func printSummary(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	now := time.Now()
	fmt.Printf("  %-10s  %8s  %12s  %12s  %s\n", "Game", "Played", "Best", "Average", "Last played")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-10s  %8s  %12s  %12s  %s\n",
			id,
			humanize.Comma(int64(s.GamesCount)),
			humanize.Comma(int64(s.HighScore)),
			humanize.CommafWithDigits(s.AvgScore, 1),
			humanize.RelTime(s.LastPlayed, now, "ago", "from now"),
		)
	}
	return nil
}
