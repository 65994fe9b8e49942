// arcade is a terminal arcade of bite-sized touch-style games.
//
// Usage:
//
//	arcade list              - List the game types
//	arcade levels            - Show the level catalog and unlock status
//	arcade play [game]       - Play a game (menu when omitted)
//	arcade scores <game>     - Show high scores for a game
//	arcade shop              - Spend and earn coins
//	arcade serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Frame rate (default: 30)
//	--seed <value>  - RNG seed for reproducible runs
//	--db <path>     - Save database path (default: ~/.pocket-arcade/save.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import engines to register them
	_ "github.com/vkondratev/pocket-arcade/internal/engine/cards"
	_ "github.com/vkondratev/pocket-arcade/internal/engine/platformer"
	_ "github.com/vkondratev/pocket-arcade/internal/engine/puzzle"
	_ "github.com/vkondratev/pocket-arcade/internal/engine/runner"
	_ "github.com/vkondratev/pocket-arcade/internal/engine/word"
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
	Use:   "arcade",
	Short: "Pocket Arcade - bite-sized games in your terminal",
	Long: `Pocket Arcade is a terminal gaming shell hosting five game types
(runner, platformer, puzzle, word, card) over a shared level catalog.

Available commands:
  list     - Show the game types
  levels   - Show the level catalog and unlock status
  play     - Play a game directly or via the menu
  scores   - View high scores
  shop     - Earn and spend coins
  serve    - Start SSH server for remote play

Examples:
  arcade list
  arcade play runner --level 1
  arcade play
  arcade scores puzzle
  arcade serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pocket-arcade/save.db", "Path to save database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(serveCmd)
}
