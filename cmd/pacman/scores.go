package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores, optionally for one difficulty.

Examples:
  pacman scores
  pacman scores --difficulty hard
  pacman scores --limit 20`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, _ []string) {
	difficulty := ""
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		exitOnError(err)
		difficulty = string(preset)
	}

	store, err := storage.Open(flagDBPath)
	exitOnError(err)
	defer store.Close()

	scores, err := store.TopScores(pacman.ID, difficulty, flagScoresLimit)
	exitOnError(err)

	title := "High Scores - Pac-Man"
	if difficulty != "" {
		title += " (" + difficulty + ")"
	}
	fmt.Println(title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pacman play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-5s  %-8s  %s\n", "Rank", "Score", "Level", "Mode", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-8s  %s\n", "----", "-----", "-----", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-5d  %-8s  %s\n", i+1, entry.Score, entry.Level, entry.Difficulty, dateStr)
	}

	stats, err := store.GetGameStats(pacman.ID)
	if err != nil {
		logger.Warn("could not read game stats", "error", err)
		return
	}
	fmt.Println()
	fmt.Printf("Games: %d  Best: %d  Best level: %d  Average: %.0f\n",
		stats.GamesCount, stats.HighScore, stats.BestLevel, stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
