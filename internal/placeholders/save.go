package placeholders

import (
	"fmt"
	"os"
	"path/filepath"
)

// GenerateAndSave writes every preset character sheet into dir as
// <name>.png and returns the written paths in preset order.
func GenerateAndSave(dir string, frameW, frameH int) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create skins directory: %w", err)
	}

	var paths []string
	for i, p := range Presets {
		// Numbered so the files keep preset order when scanned by name
		path := filepath.Join(dir, fmt.Sprintf("%d-%s.png", i+1, p.Name))
		if err := SavePNG(CreateCharacterSheet(p, frameW, frameH), path); err != nil {
			return paths, fmt.Errorf("failed to save %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
