package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vkondratev/pocket-arcade/internal/catalog"
	"github.com/vkondratev/pocket-arcade/internal/engine"
	"github.com/vkondratev/pocket-arcade/internal/platform/tui"
	"github.com/vkondratev/pocket-arcade/internal/save"
)

var (
	flagLevel  int
	flagLevels string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Play a game directly or pick one from the menu.

With no argument, opens the game/level picker. With a game type
(runner, platformer, puzzle, word, card) the chosen level starts
immediately.

Examples:
  arcade play
  arcade play runner
  arcade play puzzle --level 2
  arcade play word --levels my_levels.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cat := loadCatalog()
		store := openStore()
		if store != nil {
			defer store.Close()
		}

		width, height := termSize()

		if len(args) == 0 {
			if err := tui.RunSession(cat, store, width, height, flagFPS, flagSeed); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}

		gt, err := engine.ParseGameType(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		meta, ok := catalog.GameTypeByID(gt.String())
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no configuration for game type %q\n", gt)
			os.Exit(1)
		}

		level, ok := cat.ByID(flagLevel)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: level %d not in catalog\n", flagLevel)
			os.Exit(1)
		}
		if !level.IsPlayable {
			fmt.Fprintf(os.Stderr, "Error: level %d is not playable yet\n", flagLevel)
			os.Exit(1)
		}
		if store != nil {
			completed, err := store.UnlockedLevels()
			if err == nil && !catalog.IsUnlocked(level.ID, completed) {
				fmt.Fprintf(os.Stderr, "Error: level %d is locked; finish the previous level first\n", flagLevel)
				os.Exit(1)
			}
		}

		cfg := tui.GameConfig{
			Type:   gt,
			Level:  level,
			Meta:   meta,
			Width:  width,
			Height: height,
			FPS:    flagFPS,
			Seed:   flagSeed,
		}
		if err := tui.RunGame(cfg, store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to play")
	playCmd.Flags().StringVar(&flagLevels, "levels", "", "Path to a custom level catalog (YAML)")
}

// loadCatalog loads the level catalog, falling back to the built-in
// levels when no file is found.
func loadCatalog() *catalog.Catalog {
	cat, err := catalog.Load(flagLevels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; using built-in levels\n", err)
		return catalog.NewCatalog(catalog.DefaultLevels())
	}
	return cat
}

// openStore opens the save database. A nil store means progress is
// not persisted; play still works.
func openStore() *save.Store {
	store, err := save.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: save database unavailable: %v\n", err)
		return nil
	}
	return store
}

// termSize returns the terminal dimensions, defaulting to 80x24 when
// they cannot be determined.
func termSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return 80, 24
	}
	return width, height
}
