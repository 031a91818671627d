// Package core defines the domain model for decentralized collision
// avoidance: the bounded grid, agent state, broadcast messages, and the
// path-generation geometry shared by the priority protocol and the
// constrained planner.
package core

// Grid is the bounded integer airspace the fleet operates in. Agents may
// occupy any lattice point with 0 <= x <= W and 0 <= y <= H.
type Grid struct {
	W, H int
}

// InBounds reports whether a cell lies within the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x <= g.W && y >= 0 && y <= g.H
}

// PerimeterCells returns every cell on the grid boundary except the four
// corners, used by the scenario generator to sample source/destination
// pairs.
func (g Grid) PerimeterCells() []Point {
	var cells []Point
	for i := 1; i < g.H; i++ {
		cells = append(cells, NewPoint(0, float64(i)))
	}
	for i := 1; i < g.W; i++ {
		cells = append(cells, NewPoint(float64(i), 0))
	}
	for i := 1; i < g.H; i++ {
		cells = append(cells, NewPoint(float64(g.W), float64(i)))
	}
	for i := 1; i < g.W; i++ {
		cells = append(cells, NewPoint(float64(i), float64(g.H)))
	}
	return cells
}
