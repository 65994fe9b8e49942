package catalog

// Theme holds the visual identity of one game type. Colors are hex
// strings consumed by the terminal frontend.
type Theme struct {
	Primary    string `yaml:"primary"`
	Secondary  string `yaml:"secondary"`
	Accent     string `yaml:"accent"`
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
	// AnimationProfile selects the easing family used for this game's
	// transitions: "smooth", "bouncy", or "snappy".
	AnimationProfile string `yaml:"animation_profile"`
}

// GameTypeConfig is the static, per-game-type configuration: theme plus
// a mechanics description shown in menus. One instance per game type,
// never mutated at runtime.
type GameTypeConfig struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Mechanics string `yaml:"mechanics"`
	Theme     Theme  `yaml:"theme"`
}

// GameTypes returns the stock game-type configurations in menu order.
func GameTypes() []GameTypeConfig {
	return []GameTypeConfig{
		{
			ID:        "runner",
			Name:      "Turbo Dash",
			Mechanics: "Swipe between three lanes, dodge obstacles, grab coins.",
			Theme: Theme{
				Primary: "#ff6b35", Secondary: "#f7c59f", Accent: "#ffd700",
				Background: "#1a1a2e", Text: "#eaeaea",
				AnimationProfile: "snappy",
			},
		},
		{
			ID:        "platformer",
			Name:      "Sky Hopper",
			Mechanics: "Tap to jump between platforms and reach the goal.",
			Theme: Theme{
				Primary: "#4ecca3", Secondary: "#232931", Accent: "#eeeeee",
				Background: "#393e46", Text: "#eeeeee",
				AnimationProfile: "bouncy",
			},
		},
		{
			ID:        "puzzle",
			Name:      "Gem Swap",
			Mechanics: "Swap adjacent gems to line up three or more of a color.",
			Theme: Theme{
				Primary: "#e94560", Secondary: "#0f3460", Accent: "#ffd369",
				Background: "#16213e", Text: "#f0f0f0",
				AnimationProfile: "smooth",
			},
		},
		{
			ID:        "word",
			Name:      "Letter Rush",
			Mechanics: "Build words from the letter pool before the clock runs out.",
			Theme: Theme{
				Primary: "#6a8caf", Secondary: "#d7e1ec", Accent: "#ffb347",
				Background: "#2b2d42", Text: "#edf2f4",
				AnimationProfile: "smooth",
			},
		},
		{
			ID:        "card",
			Name:      "Twenty Duel",
			Mechanics: "Hit or stand against the dealer, first to three rounds wins.",
			Theme: Theme{
				Primary: "#c0392b", Secondary: "#2c3e50", Accent: "#f1c40f",
				Background: "#145a32", Text: "#fdfefe",
				AnimationProfile: "snappy",
			},
		},
	}
}

// GameTypeByID returns the configuration for one game type id.
func GameTypeByID(id string) (GameTypeConfig, bool) {
	for _, cfg := range GameTypes() {
		if cfg.ID == id {
			return cfg, true
		}
	}
	return GameTypeConfig{}, false
}
