// coindash is a terminal platformer: run and jump across platforms,
// collect coins, reach the goal flag.
//
// Usage:
//
//	coindash play              - Play the default level
//	coindash play summit       - Play a specific embedded level
//	coindash menu              - Pick a level interactively
//	coindash levels            - List available levels
//	coindash scores            - Show best runs
//	coindash serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.coindash/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/coindash/internal/games/platformer"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "coindash",
	Short: "Coin Dash - a platformer in your terminal",
	Long: `Coin Dash is a terminal platformer. Run right, jump between
platforms, grab every coin and reach the goal flag before you fall.

Available commands:
  play     - Play a level directly
  menu     - Interactive level picker
  levels   - List available levels
  scores   - View best runs
  serve    - Start SSH server for remote play

Examples:
  coindash play
  coindash play summit
  coindash menu
  coindash serve --ssh :2222
  coindash scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.coindash/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
