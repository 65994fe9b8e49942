package catalog

import (
	_ "embed"
)

//go:embed defaults/levels.yaml
var defaultLevelsYAML []byte

// DefaultLevels returns the stock 10-level catalog used when no YAML
// override is found and the embedded file fails to parse.
func DefaultLevels() []Level {
	return []Level{
		{ID: 1, Name: "First Steps", Difficulty: 1, TimeLimit: 60, TargetScore: 10, Obstacles: 3, PowerUps: 2, CoinValue: 10, Background: "meadow", IsPlayable: true},
		{ID: 2, Name: "Warming Up", Difficulty: 1, TimeLimit: 60, TargetScore: 20, Obstacles: 5, PowerUps: 2, CoinValue: 10, Background: "meadow", IsPlayable: true},
		{ID: 3, Name: "Picking Up Speed", Difficulty: 2, TimeLimit: 75, TargetScore: 35, Obstacles: 8, PowerUps: 3, CoinValue: 15, Background: "forest", IsPlayable: true},
		{ID: 4, Name: "Deep Woods", Difficulty: 2, TimeLimit: 75, TargetScore: 50, Obstacles: 10, PowerUps: 3, CoinValue: 15, Background: "forest", ComingSoon: true},
		{ID: 5, Name: "Cavern Crawl", Difficulty: 3, TimeLimit: 90, TargetScore: 70, Obstacles: 12, PowerUps: 4, CoinValue: 20, Background: "cavern", ComingSoon: true},
		{ID: 6, Name: "Underground River", Difficulty: 3, TimeLimit: 90, TargetScore: 90, Obstacles: 14, PowerUps: 4, CoinValue: 20, Background: "cavern", ComingSoon: true},
		{ID: 7, Name: "Mountain Pass", Difficulty: 4, TimeLimit: 105, TargetScore: 120, Obstacles: 16, PowerUps: 5, CoinValue: 25, Background: "mountain", ComingSoon: true},
		{ID: 8, Name: "Thin Air", Difficulty: 4, TimeLimit: 105, TargetScore: 150, Obstacles: 18, PowerUps: 5, CoinValue: 25, Background: "mountain", ComingSoon: true},
		{ID: 9, Name: "Storm Front", Difficulty: 5, TimeLimit: 120, TargetScore: 190, Obstacles: 20, PowerUps: 6, CoinValue: 30, Background: "storm", ComingSoon: true},
		{ID: 10, Name: "The Summit", Difficulty: 5, TimeLimit: 120, TargetScore: 240, Obstacles: 24, PowerUps: 6, CoinValue: 30, Background: "summit", ComingSoon: true},
	}
}
