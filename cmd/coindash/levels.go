package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/coindash/internal/games/platformer"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long:  `Shows a list of the levels shipped with the game.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	ids := platformer.LevelIDs()

	if len(ids) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, id := range ids {
		if len(id) > maxIDLen {
			maxIDLen = len(id)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "ID", "Name", "Coins")
	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "--", "----", "-----")

	for _, id := range ids {
		lvl, err := platformer.LoadEmbedded(id)
		if err != nil {
			continue
		}
		marker := ""
		if id == platformer.DefaultLevelID {
			marker = "  (default)"
		}
		fmt.Printf("  %-*s  %-16s  %d%s\n", maxIDLen, id, lvl.Name, len(lvl.Coins), marker)
	}

	fmt.Println()
	fmt.Println("Run 'coindash play <id>' to play a level.")
}
