package core

import "testing"

func TestGridInBounds(t *testing.T) {
	g := Grid{W: 10, H: 10}
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{10, 10, true},
		{-1, 0, false},
		{0, -1, false},
		{11, 0, false},
		{0, 11, false},
	}
	for _, tt := range tests {
		if got := g.InBounds(tt.x, tt.y); got != tt.want {
			t.Errorf("InBounds(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestGridPerimeterCellsAreOnBoundary(t *testing.T) {
	g := Grid{W: 10, H: 10}
	cells := g.PerimeterCells()
	if len(cells) == 0 {
		t.Fatal("expected non-empty perimeter")
	}
	for _, c := range cells {
		onBoundary := c.X == 0 || c.X == float64(g.W) || c.Y == 0 || c.Y == float64(g.H)
		if !onBoundary {
			t.Errorf("cell %+v is not on the grid boundary", c)
		}
		if !g.InBounds(int(c.X), int(c.Y)) {
			t.Errorf("perimeter cell %+v is out of bounds", c)
		}
	}
}

func TestGridPerimeterCellsExcludeCorners(t *testing.T) {
	g := Grid{W: 10, H: 10}
	cells := g.PerimeterCells()
	for _, c := range cells {
		if (c.X == 0 || c.X == float64(g.W)) && (c.Y == 0 || c.Y == float64(g.H)) {
			t.Errorf("corner cell %+v should not be included (matches reference implementation's range exclusion)", c)
		}
	}
}
