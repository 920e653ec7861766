package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"chosenoffset.com/adventure/internal/config"
	"chosenoffset.com/adventure/internal/placeholders"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON config file")
	outDir := flag.String("out", "", "output directory (defaults to the configured skins directory)")
	flag.Parse()

	fmt.Println("Adventure Placeholder Sheet Generator")
	fmt.Println("=====================================")
	fmt.Println()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	dir := *outDir
	if dir == "" {
		dir = cfg.Skins.Dir
	}

	paths, err := placeholders.GenerateAndSave(dir, cfg.Animation.FrameWidth, cfg.Animation.FrameHeight)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, p := range paths {
		size := "?"
		if info, err := os.Stat(p); err == nil {
			size = humanize.Bytes(uint64(info.Size()))
		}
		fmt.Printf("✓ Generated %s (%s)\n", p, size)
	}

	fmt.Println()
	fmt.Println("Done! Keys 1-6 in the game now use these sheets.")
	fmt.Println("Edit or replace the PNGs to customize the player.")
}
