// Package baseline implements centralized MAPF solvers used only as
// comparison points against the distributed protocol in internal/algo —
// prioritized planning and Conflict-Based Search over a shared grid,
// adapted from graph-based workspace solvers to plain grid cells and
// discrete time steps. None of these solvers participate in the
// tick-synchronous simulation; they are run offline by the benchmark
// driver against the same scenarios.
package baseline

import "github.com/elektrokombinacika/mapf-het-research/internal/core"

// Cell is a grid cell at whole-number resolution, the unit the
// centralized solvers plan over (as opposed to core.Point's sub-step
// resolution).
type Cell struct {
	X, Y int
}

// Plan is one agent's solution path: a cell per discrete time step,
// starting at its source at t=0.
type Plan []Cell

// Solution is a full assignment of plans to agents, plus whether every
// agent's plan is conflict-free.
type Solution struct {
	Plans    map[core.AgentID]Plan
	Feasible bool
	Makespan int
}

// Solver is the interface every centralized baseline implements.
type Solver interface {
	Solve(grid core.Grid, pairs []core.ScenarioPair) *Solution
	Name() string
}

func toCell(p core.Point) Cell {
	x, y := p.Cell()
	return Cell{X: x, Y: y}
}

func manhattan(a, b Cell) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

func makespan(plans map[core.AgentID]Plan) int {
	m := 0
	for _, p := range plans {
		if len(p)-1 > m {
			m = len(p) - 1
		}
	}
	return m
}
