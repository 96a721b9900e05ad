package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexpop/internal/registry"
	"github.com/vovakirdan/hexpop/internal/storage"
)

var (
	flagScoresLevel string
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top scores for a mode (default: the campaign).

Campaign scores are saved per level; --level narrows the list to one
level. --clear deletes every score of the mode.

Examples:
  hexpop scores
  hexpop scores hexpop-endless
  hexpop scores --level lvl02
  hexpop scores hexpop-endless --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresLevel, "level", "", "Only show scores of this campaign level")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "hexpop"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'hexpop list' to see available modes.")
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared all scores for %s.\n", title)
		return
	}

	var scores []storage.ScoreEntry
	if flagScoresLevel != "" {
		scores, err = store.TopLevelScores(gameID, flagScoresLevel, flagScoresLimit)
		title += " - " + flagScoresLevel
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'hexpop play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-12s  %-5s  %s\n", "Rank", "Score", "Level", "Balls", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")

	for i, entry := range scores {
		level := entry.LevelID
		if level == "" {
			level = "-"
		} else if entry.Cleared {
			level += " *"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-12s  %-5d  %s\n", i+1, entry.Score, level, entry.Balls, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Average: %.0f", stats.HighScore, stats.GamesCount, stats.AvgScore)
		if stats.LevelsCleared > 0 {
			fmt.Printf("  Levels cleared: %d", stats.LevelsCleared)
		}
		fmt.Println()
	}
}
