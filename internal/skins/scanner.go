package skins

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MaxSlots is the number of skin slots reachable from the digit keys
const MaxSlots = 6

// Entry is a sprite sheet found on disk
type Entry struct {
	Name string // File name without extension
	Path string // Full path to the PNG file
	Size int64  // File size in bytes
}

// ScanDirectory finds PNG sprite sheets in dir, sorted by name and limited
// to MaxSlots entries. A missing directory yields no entries and no error.
func ScanDirectory(dir string) ([]Entry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read skins directory: %w", err)
	}

	var skins []Entry
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") || !strings.EqualFold(filepath.Ext(name), ".png") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// File vanished between ReadDir and Info
			continue
		}

		skins = append(skins, Entry{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dir, name),
			Size: info.Size(),
		})
	}

	sort.Slice(skins, func(i, j int) bool { return skins[i].Name < skins[j].Name })
	if len(skins) > MaxSlots {
		skins = skins[:MaxSlots]
	}
	return skins, nil
}
