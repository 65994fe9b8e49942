package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vkondratev/pocket-arcade/internal/engine"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		gt, err := engine.ParseGameType(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		store := openStore()
		if store == nil {
			os.Exit(1)
		}
		defer store.Close()

		entries, err := store.TopScores(gt.String(), flagScoresLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if len(entries) == 0 {
			fmt.Printf("No scores recorded for %s yet.\n", gt)
			return
		}

		fmt.Printf("Top scores for %s:\n\n", gt)
		fmt.Printf("%-4s %-8s %-8s %s\n", "#", "SCORE", "LEVEL", "DATE")
		for i, e := range entries {
			fmt.Printf("%-4d %-8d %-8d %s\n",
				i+1, e.Score, e.LevelID, e.CreatedAt.Format("2006-01-02 15:04"))
		}
	},
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}
