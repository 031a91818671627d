// Command gen_instances generates deterministic scenario files: fleets
// of source/destination pairs sampled from a grid perimeter, guaranteed
// to collide along their initial greedy paths, written as JSON files.
// Neither cmd/mapfhet nor tools/run_benchmarks loads these files; both
// sample their own scenarios through internal/scenario.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/elektrokombinacika/mapf-het-research/internal/core"
	"github.com/elektrokombinacika/mapf-het-research/internal/scenario"
)

// ScenarioFile is the on-disk representation of one generated scenario.
type ScenarioFile struct {
	Name   string  `json:"name"`
	Seed   int64   `json:"seed"`
	Grid   Grid    `json:"grid"`
	Agents []Agent `json:"agents"`
}

// Grid mirrors core.Grid for JSON encoding.
type Grid struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Agent is one source/destination assignment.
type Agent struct {
	Source      Point `json:"source"`
	Destination Point `json:"destination"`
}

// Point mirrors core.Point for JSON encoding.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func toScenarioFile(name string, seed int64, grid core.Grid, pairs []core.ScenarioPair) *ScenarioFile {
	sf := &ScenarioFile{
		Name:   name,
		Seed:   seed,
		Grid:   Grid{W: grid.W, H: grid.H},
		Agents: make([]Agent, len(pairs)),
	}
	for i, p := range pairs {
		sf.Agents[i] = Agent{
			Source:      Point{X: p.Source.X, Y: p.Source.Y},
			Destination: Point{X: p.Destination.X, Y: p.Destination.Y},
		}
	}
	return sf
}

// FromScenarioFile reconstructs grid and pairs from a loaded ScenarioFile.
func FromScenarioFile(sf *ScenarioFile) (core.Grid, []core.ScenarioPair) {
	grid := core.Grid{W: sf.Grid.W, H: sf.Grid.H}
	pairs := make([]core.ScenarioPair, len(sf.Agents))
	for i, a := range sf.Agents {
		pairs[i] = core.ScenarioPair{
			Source:      core.Point{X: a.Source.X, Y: a.Source.Y},
			Destination: core.Point{X: a.Destination.X, Y: a.Destination.Y},
		}
	}
	return grid, pairs
}

func main() {
	seed := pflag.Int64("seed", 42, "random seed for deterministic generation")
	numAgents := pflag.Int("agents", 3, "number of agents per scenario")
	gridWidth := pflag.Int("width", 10, "grid width")
	gridHeight := pflag.Int("height", 10, "grid height")
	count := pflag.Int("count", 1, "number of scenario files to generate")
	outputDir := pflag.String("output", "testdata", "output directory")
	pflag.Parse()

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "error creating output directory: %v\n", err)
		os.Exit(1)
	}

	grid := core.Grid{W: *gridWidth, H: *gridHeight}

	for i := 0; i < *count; i++ {
		scenarioSeed := *seed + int64(i)
		gen := scenario.NewGenerator(grid, scenarioSeed)

		var pairs []core.ScenarioPair
		attempt := 0
		for {
			pairs = gen.Generate(*numAgents)
			if scenario.GuaranteesConflict(grid, pairs) {
				break
			}
			attempt++
			if attempt >= 1000 {
				fmt.Fprintf(os.Stderr, "could not sample a colliding scenario for seed %d after 1000 attempts\n", scenarioSeed)
				os.Exit(1)
			}
		}

		name := fmt.Sprintf("scenario_%dagents_%dx%d_%d", *numAgents, grid.W, grid.H, scenarioSeed)
		sf := toScenarioFile(name, scenarioSeed, grid, pairs)

		data, err := json.MarshalIndent(sf, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "error marshaling scenario %s: %v\n", name, err)
			continue
		}

		filename := filepath.Join(*outputDir, name+".json")
		if err := os.WriteFile(filename, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "error writing scenario %s: %v\n", filename, err)
			continue
		}

		fmt.Printf("generated: %s (%d agents, %dx%d grid, seed %d)\n", filename, *numAgents, grid.W, grid.H, scenarioSeed)
	}
}
