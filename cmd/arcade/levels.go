package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vkondratev/pocket-arcade/internal/catalog"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level catalog and unlock status",
	Run: func(cmd *cobra.Command, args []string) {
		cat := loadCatalog()

		var completed []int
		if store := openStore(); store != nil {
			defer store.Close()
			if ids, err := store.UnlockedLevels(); err == nil {
				completed = ids
			}
		}

		fmt.Printf("%-4s %-16s %-6s %-8s %-8s %s\n",
			"ID", "NAME", "DIFF", "TARGET", "TIME", "STATUS")
		for _, lvl := range cat.Levels() {
			timeLimit := "-"
			if lvl.TimeLimit > 0 {
				timeLimit = fmt.Sprintf("%.0fs", lvl.TimeLimit)
			}
			status := "locked"
			switch {
			case lvl.ComingSoon:
				status = "coming soon"
			case !lvl.IsPlayable:
				status = "unavailable"
			case catalog.IsUnlocked(lvl.ID, completed):
				status = "unlocked"
			}
			fmt.Printf("%-4d %-16s %-6d %-8d %-8s %s\n",
				lvl.ID, lvl.Name, lvl.Difficulty, lvl.TargetScore, timeLimit, status)
		}
	},
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevels, "levels", "", "Path to a custom level catalog (YAML)")
}
