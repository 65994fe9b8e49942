package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vkondratev/pocket-arcade/internal/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game types",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Game types:")
		fmt.Println()
		for _, meta := range catalog.GameTypes() {
			fmt.Printf("  %-12s %s\n", meta.ID, meta.Name)
			fmt.Printf("  %-12s %s\n", "", meta.Mechanics)
			fmt.Println()
		}
		fmt.Println("Play one with: arcade play <game>")
	},
}
