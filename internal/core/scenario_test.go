package core

import "testing"

func TestNewFleetAssignsSequentialIDs(t *testing.T) {
	grid := Grid{W: 10, H: 10}
	pairs := []ScenarioPair{
		{Source: Point{X: 0, Y: 0}, Destination: Point{X: 5, Y: 5}},
		{Source: Point{X: 9, Y: 9}, Destination: Point{X: 0, Y: 0}},
	}
	fleet := NewFleet(grid, pairs)
	for i, a := range fleet.Agents {
		if a.ID != AgentID(i) {
			t.Errorf("agent %d has id %d", i, a.ID)
		}
	}
}

func TestFleetAllArrived(t *testing.T) {
	grid := Grid{W: 10, H: 10}
	pairs := []ScenarioPair{
		{Source: Point{X: 0, Y: 0}, Destination: Point{X: 0, Y: 0}},
	}
	fleet := NewFleet(grid, pairs)
	if !fleet.AllArrived() {
		t.Error("fleet with agents already at their destination should report AllArrived")
	}
}

func TestFleetByID(t *testing.T) {
	grid := Grid{W: 10, H: 10}
	pairs := []ScenarioPair{
		{Source: Point{X: 0, Y: 0}, Destination: Point{X: 5, Y: 5}},
	}
	fleet := NewFleet(grid, pairs)
	if fleet.ByID(0) == nil {
		t.Error("ByID(0) should return the first agent")
	}
	if fleet.ByID(99) != nil {
		t.Error("ByID with an out-of-range id should return nil")
	}
}
