// Package catalog provides the static level and game-type configuration
// consumed by the mechanics engines. Catalog data is read-only at
// runtime; YAML files can override the embedded defaults at load time.
package catalog

// Level is an immutable catalog entry describing one playable level.
type Level struct {
	ID          int     `yaml:"id"`
	Name        string  `yaml:"name"`
	Difficulty  int     `yaml:"difficulty"`   // 1 (easy) .. 5 (hard)
	TimeLimit   float64 `yaml:"time_limit"`   // Seconds; 0 means untimed
	TargetScore int     `yaml:"target_score"` // Win threshold
	Obstacles   int     `yaml:"obstacles"`    // Obstacle density knob
	PowerUps    int     `yaml:"power_ups"`
	CoinValue   int     `yaml:"coin_value"`
	Background  string  `yaml:"background"`
	IsPlayable  bool    `yaml:"is_playable"`
	ComingSoon  bool    `yaml:"coming_soon"`
}

// Catalog is an ordered, immutable set of levels.
type Catalog struct {
	levels []Level
}

// NewCatalog wraps a level list. The slice is copied so later mutation
// by the caller cannot leak into the catalog.
func NewCatalog(levels []Level) *Catalog {
	c := &Catalog{levels: make([]Level, len(levels))}
	copy(c.levels, levels)
	return c
}

// Levels returns a copy of all catalog entries.
func (c *Catalog) Levels() []Level {
	out := make([]Level, len(c.levels))
	copy(out, c.levels)
	return out
}

// ByID returns the level with the given id.
func (c *Catalog) ByID(id int) (Level, bool) {
	for _, lv := range c.levels {
		if lv.ID == id {
			return lv, true
		}
	}
	return Level{}, false
}

// Playable returns the levels marked playable, in catalog order.
func (c *Catalog) Playable() []Level {
	var out []Level
	for _, lv := range c.levels {
		if lv.IsPlayable {
			out = append(out, lv)
		}
	}
	return out
}

// Next returns the level after the given id in catalog order.
// There is no level after the last one.
func (c *Catalog) Next(id int) (Level, bool) {
	for i, lv := range c.levels {
		if lv.ID == id && i+1 < len(c.levels) {
			return c.levels[i+1], true
		}
	}
	return Level{}, false
}

// IsUnlocked reports whether a level can be entered given the set of
// completed level ids. The first level is always unlocked; every other
// level unlocks when its predecessor has been completed.
func IsUnlocked(id int, completed []int) bool {
	if id <= 1 {
		return true
	}
	for _, done := range completed {
		if done == id-1 {
			return true
		}
	}
	return false
}
