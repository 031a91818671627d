// Command mapfhetvis provides an interactive live viewer for the
// decentralized collision-avoidance simulation: space pauses/resumes,
// the right arrow single-steps, dragging with the right or middle mouse
// button pans, and scroll zooms.
package main

import (
	"os"

	"gioui.org/app"
	"gioui.org/unit"
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
	)
	pflag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

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

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("Decentralized Collision Avoidance Viewer"),
			app.Size(unit.Dp(1000), unit.Dp(1000)),
		)

		application := vis.NewApp(fleet, orch, log)
		if err := application.Run(window); err != nil {
			log.Fatal().Err(err).Msg("viewer failed")
		}
		os.Exit(0)
	}()
	app.Main()
}
