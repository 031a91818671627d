// Command mapfhet runs a single decentralized collision-avoidance
// simulation: generate a random perimeter-to-perimeter scenario, drive
// it through the tick-synchronous orchestrator, and optionally write a
// per-tick frame sequence.
package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/elektrokombinacika/mapf-het-research/internal/core"
	"github.com/elektrokombinacika/mapf-het-research/internal/scenario"
	"github.com/elektrokombinacika/mapf-het-research/internal/sim"
	"github.com/elektrokombinacika/mapf-het-research/internal/vis"
)

func main() {
	var (
		agents   = pflag.IntP("agents", "n", 3, "number of agents in the fleet")
		gridSize = pflag.Int("grid", 10, "grid width and height in cells")
		seed     = pflag.Int64("seed", 1, "scenario RNG seed")
		forecast = pflag.Float64("forecast", -1, "broadcast forecast length in cells, -1 for full path")
		outDir   = pflag.String("out", "", "directory to write per-tick PNG frames, empty to skip rendering")
		verbose  = pflag.Bool("verbose", false, "enable debug logging")
	)
	pflag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).With().Timestamp().Logger()

	grid := core.Grid{W: *gridSize, H: *gridSize}
	gen := scenario.NewGenerator(grid, *seed)

	var pairs []core.ScenarioPair
	for attempt := 0; ; attempt++ {
		pairs = gen.Generate(*agents)
		if scenario.GuaranteesConflict(grid, pairs) {
			break
		}
		if attempt >= 1000 {
			log.Fatal().Msg("could not sample a colliding scenario after 1000 attempts")
		}
	}

	fleet := core.NewFleet(grid, pairs)
	cfg := sim.DefaultConfig()
	cfg.ForecastLength = *forecast

	orch := sim.NewOrchestrator(fleet, cfg, log)

	var renderer *vis.FrameRenderer
	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			log.Fatal().Err(err).Msg("creating output directory")
		}
		renderer = vis.NewFrameRenderer()
	}

	for !fleet.AllArrived() {
		if renderer != nil {
			if err := writeFrame(renderer, fleet, *outDir, orch.Tick()); err != nil {
				log.Fatal().Err(err).Msg("writing frame")
			}
		}
		if err := orch.Step(); err != nil {
			log.Fatal().Err(err).Int("tick", orch.Tick()).Msg("simulation failed")
		}
	}
	if renderer != nil {
		if err := writeFrame(renderer, fleet, *outDir, orch.Tick()); err != nil {
			log.Fatal().Err(err).Msg("writing final frame")
		}
	}

	fmt.Printf("arrived after %d ticks\n", orch.Tick())
}

func writeFrame(r *vis.FrameRenderer, fleet *core.Fleet, outDir string, tick int) error {
	img := r.RenderTick(fleet)
	f, err := os.Create(filepath.Join(outDir, fmt.Sprintf("tick-%05d.png", tick)))
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
