package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/coindash/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best runs",
	Long: `Display the top 10 recorded runs.

Examples:
  coindash scores
  coindash scores --db ./runs.db`,
	Run: runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns("coindash", 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - Coin Dash")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'coindash play' to set the first best score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-12s  %-9s  %s\n", "Rank", "Score", "Coins", "Level", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-12s  %-9s  %s\n", "----", "-----", "-----", "-----", "------", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6d  %-12s  %-9s  %s\n", i+1, r.Score, r.Coins, r.Level, r.Outcome, dateStr)
	}

	fmt.Println()
	best, err := store.BestScore("coindash")
	if err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	wins, err := store.WinCount("coindash")
	if err == nil {
		fmt.Printf("Wins: %d\n", wins)
	}
}
