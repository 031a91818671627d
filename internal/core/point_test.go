package core

import "testing"

func TestNewPointRounds(t *testing.T) {
	p := NewPoint(1.23456, 2.00001)
	if p.X != 1.23 || p.Y != 2.0 {
		t.Errorf("NewPoint(1.23456, 2.00001) = %+v, want {1.23 2}", p)
	}
}

func TestPointCell(t *testing.T) {
	tests := []struct {
		p          Point
		wantX, wantY int
	}{
		{Point{X: 0, Y: 0}, 0, 0},
		{Point{X: 2.4, Y: 2.6}, 2, 3},
		{Point{X: 4.9, Y: 0.1}, 5, 0},
	}
	for _, tt := range tests {
		x, y := tt.p.Cell()
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("Cell(%+v) = (%d, %d), want (%d, %d)", tt.p, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestManhattanCells(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 3, Y: 4}
	if got := ManhattanCells(a, b); got != 7 {
		t.Errorf("ManhattanCells = %d, want 7", got)
	}
}

func TestChebyshevCells(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 3, Y: 4}
	if got := ChebyshevCells(a, b); got != 4 {
		t.Errorf("ChebyshevCells = %d, want 4", got)
	}
}
