package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkotenko/clickrush/internal/registry"
	"github.com/dkotenko/clickrush/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores and aggregate statistics for the
specified game.

Examples:
  clickrush scores rush`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'clickrush list' to see available games.")
		os.Exit(1)
	}

	title := gameID
	for _, g := range registry.List() {
		if g.ID == gameID {
			title = g.Title
			break
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'clickrush play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return
	}

	fmt.Println()
	fmt.Printf("Rounds played: %d\n", stats.GamesCount)
	fmt.Printf("Best:          %d\n", stats.HighScore)
	fmt.Printf("Average:       %.1f\n", stats.AvgScore)
	if stats.BestRate > 0 {
		fmt.Printf("Best rate:     %.2f points/second\n", stats.BestRate)
	}
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played:   %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
