package scenario

import (
	"testing"

	"github.com/elektrokombinacika/mapf-het-research/internal/core"
)

func TestGenerateProducesRequestedCount(t *testing.T) {
	grid := core.Grid{W: 10, H: 10}
	gen := NewGenerator(grid, 1)
	pairs := gen.Generate(5)
	if len(pairs) != 5 {
		t.Fatalf("len(pairs) = %d, want 5", len(pairs))
	}
}

func TestGeneratePairsAreOnPerimeter(t *testing.T) {
	grid := core.Grid{W: 10, H: 10}
	gen := NewGenerator(grid, 1)
	pairs := gen.Generate(4)
	for _, p := range pairs {
		for _, pt := range []core.Point{p.Source, p.Destination} {
			onBoundary := pt.X == 0 || pt.X == float64(grid.W) || pt.Y == 0 || pt.Y == float64(grid.H)
			if !onBoundary {
				t.Errorf("point %+v is not on the grid perimeter", pt)
			}
		}
	}
}

func TestGenerateNoDuplicateSources(t *testing.T) {
	grid := core.Grid{W: 10, H: 10}
	gen := NewGenerator(grid, 7)
	pairs := gen.Generate(6)
	seen := make(map[core.Point]bool)
	for _, p := range pairs {
		if seen[p.Source] {
			t.Errorf("duplicate source %+v", p.Source)
		}
		seen[p.Source] = true
	}
}

func TestGenerateIsDeterministicForASeed(t *testing.T) {
	grid := core.Grid{W: 10, H: 10}
	a := NewGenerator(grid, 42).Generate(3)
	b := NewGenerator(grid, 42).Generate(3)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("pair %d differs between runs with the same seed: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGuaranteesConflictRejectsDisjointPaths(t *testing.T) {
	grid := core.Grid{W: 10, H: 10}
	pairs := []core.ScenarioPair{
		{Source: core.Point{X: 0, Y: 5}, Destination: core.Point{X: 0, Y: 6}},
		{Source: core.Point{X: 10, Y: 5}, Destination: core.Point{X: 10, Y: 6}},
	}
	if GuaranteesConflict(grid, pairs) {
		t.Error("widely separated agents should not be reported as guaranteed to collide")
	}
}
