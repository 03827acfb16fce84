// clickrush is a terminal arcade built around Target Rush, a
// click-the-target reaction game.
//
// Usage:
//
//	clickrush list              - List available games
//	clickrush play <game>       - Play a game
//	clickrush menu              - Start menu to pick games interactively
//	clickrush serve             - Start SSH server for remote play
//	clickrush scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.clickrush/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/dkotenko/clickrush/internal/games/rush"
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
	Use:   "clickrush",
	Short: "Click Rush - Chase targets in your terminal",
	Long: `Click Rush is a terminal-based reaction game: a target appears at a
random spot, hit it before the clock runs out. Decoys cost you points.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  clickrush list
  clickrush play rush
  clickrush play rush --preset blitz
  clickrush menu
  clickrush serve --ssh :2222
  clickrush scores rush`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.clickrush/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
