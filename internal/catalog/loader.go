package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type levelsFile struct {
	Levels []Level `yaml:"levels"`
}

// Load builds the level catalog.
// Search order: customPath -> ~/.pocket-arcade/configs/levels.yaml ->
// ./configs/levels.yaml -> embedded default.
func Load(customPath string) (*Catalog, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("catalog: failed to read %s: %w", customPath, err)
		}
		levels, err := parseLevels(data)
		if err != nil {
			return nil, fmt.Errorf("catalog: failed to parse %s: %w", customPath, err)
		}
		return NewCatalog(levels), nil
	}

	if userPath := userConfigPath("levels.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if levels, err := parseLevels(data); err == nil {
				return NewCatalog(levels), nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "levels.yaml")); err == nil {
		if levels, err := parseLevels(data); err == nil {
			return NewCatalog(levels), nil
		}
	}

	if levels, err := parseLevels(defaultLevelsYAML); err == nil {
		return NewCatalog(levels), nil
	}
	return NewCatalog(DefaultLevels()), nil
}

func parseLevels(data []byte) ([]Level, error) {
	var f levelsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if len(f.Levels) == 0 {
		return nil, fmt.Errorf("no levels defined")
	}
	seen := make(map[int]bool, len(f.Levels))
	for _, lv := range f.Levels {
		if seen[lv.ID] {
			return nil, fmt.Errorf("duplicate level id %d", lv.ID)
		}
		seen[lv.ID] = true
	}
	return f.Levels, nil
}

func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pocket-arcade", "configs", filename)
}
