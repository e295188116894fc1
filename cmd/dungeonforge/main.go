// Package main is the entry point for dungeonforge, a CLI around the
// BSP dungeon layout generator: (seed, params) -> map, plus an ASCII
// dump and an optional read-only debug viewer.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/mrasmith/dungeonforge/internal/dungeon"
	"github.com/mrasmith/dungeonforge/internal/logging"
	"github.com/mrasmith/dungeonforge/internal/params"
	"github.com/mrasmith/dungeonforge/internal/presets"
	"github.com/mrasmith/dungeonforge/internal/rng"
	"github.com/mrasmith/dungeonforge/internal/telemetry"
	"github.com/mrasmith/dungeonforge/internal/ui"
)

func main() {
	seedFlag := flag.Int64("seed", 0, "random seed for reproducible generation (0 = auto)")
	presetFlag := flag.String("preset", "default", "parameter preset: small, default, cavernous, warren")
	widthFlag := flag.Int("width", 64, "map width in cells (>= 10)")
	heightFlag := flag.Int("height", 64, "map height in cells (>= 10)")
	dumpFlag := flag.Bool("dump", true, "print the reference ASCII dump to stdout")
	viewFlag := flag.Bool("view", false, "open a read-only tcell viewer over the generated map")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("note: .env file not loaded: %v", err)
	}

	seed := determineSeed(*seedFlag)

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("warning: telemetry setup failed: %v", err)
		log.Printf("continuing without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("error shutting down telemetry: %v", err)
			}
		}()
	}

	logger := logging.New(logging.DefaultConfig())

	p, err := presets.Load(*presetFlag)
	if err != nil {
		logger.WithError(err).Warnf("preset %q not found, falling back to defaults", *presetFlag)
		p = params.Default()
	}

	if *widthFlag < 10 || *heightFlag < 10 {
		log.Fatalf("width and height must each be >= 10, got %dx%d", *widthFlag, *heightFlag)
	}

	src := rng.NewSeeded(seed)
	gen := dungeon.NewGenerator(telemetry.Tracer("dungeonforge"), logger)
	m, report := gen.Generate(ctx, src, *widthFlag, *heightFlag, p)

	logger.WithFields(map[string]interface{}{
		"run_id":     report.RunID.String(),
		"duration":   report.Duration,
		"rooms":      report.RoomCount,
		"leaves":     report.LeafCount,
		"seed":       seed,
		"checksum":   fmt.Sprintf("%x", m.Checksum()),
		"preset":     *presetFlag,
		"dimensions": fmt.Sprintf("%dx%d", m.Width(), m.Height()),
	}).Info("dungeon generated")

	if *dumpFlag && !*viewFlag {
		fmt.Print(m.ASCII())
	}

	if *viewFlag {
		if err := ui.View(m, seed); err != nil {
			log.Fatalf("viewer error: %v", err)
		}
	}
}

// determineSeed returns the seed to use. Priority: CLI flag >
// DUNGEONFORGE_SEED env var > random (from time).
func determineSeed(flagValue int64) int64 {
	if flagValue != 0 {
		return flagValue
	}
	if envSeed := os.Getenv("DUNGEONFORGE_SEED"); envSeed != "" {
		if parsed, err := strconv.ParseInt(envSeed, 10, 64); err == nil {
			return parsed
		}
		log.Printf("warning: invalid DUNGEONFORGE_SEED value %q, using random seed", envSeed)
	}
	return time.Now().UnixNano()
}
