package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [profile]",
	Short: "Show score history for a profile",
	Long: `Display the best sessions recorded for the given profile (default: classic).

Examples:
  flappy scores
  flappy scores rush --limit 20
  flappy scores --interactive
  flappy scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the history and best score")
	scoresCmd.Flags().BoolVarP(&flagScoresTUI, "interactive", "i", false, "Browse all profiles in the scoreboard")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := profileArg(args)
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown profile %q (run 'flappy profiles' to list them)", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresTUI {
		cfg := runtimeConfig()
		return tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", registry.Title(gameID))
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", registry.Title(gameID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'flappy play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %-7s  %s\n", "Rank", "Score", "Distance", "Medal", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %-7s  %s\n", "----", "-----", "--------", "-----", "----")
	for i, entry := range scores {
		medal := flappy.MedalFor(entry.Score).String()
		if medal == "" {
			medal = "-"
		}
		fmt.Printf("  %-4d  %-6d  %-8s  %-7s  %s\n",
			i+1, entry.Score, fmt.Sprintf("%dm", entry.Distance), medal,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  |  Sessions: %d  |  Average: %.1f\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
