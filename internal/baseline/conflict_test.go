package baseline

import (
	"testing"

	"github.com/elektrokombinacika/mapf-het-research/internal/core"
)

func TestFindFirstConflictDetectsVertexCollision(t *testing.T) {
	plans := map[core.AgentID]Plan{
		0: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
		1: {{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}},
	}
	c := FindFirstConflict(plans)
	if c == nil {
		t.Fatal("expected a conflict")
	}
	if c.Cell != (Cell{X: 1, Y: 0}) || c.T != 1 {
		t.Errorf("conflict = %+v, want cell (1,0) at t=1", c)
	}
}

func TestFindFirstConflictDetectsSwap(t *testing.T) {
	plans := map[core.AgentID]Plan{
		0: {{X: 0, Y: 0}, {X: 1, Y: 0}},
		1: {{X: 1, Y: 0}, {X: 0, Y: 0}},
	}
	c := FindFirstConflict(plans)
	if c == nil || !c.IsEdge {
		t.Fatalf("expected a swap conflict, got %+v", c)
	}
}

func TestFindFirstConflictNilWhenNoOverlap(t *testing.T) {
	plans := map[core.AgentID]Plan{
		0: {{X: 0, Y: 0}, {X: 1, Y: 0}},
		1: {{X: 0, Y: 5}, {X: 1, Y: 5}},
	}
	if c := FindFirstConflict(plans); c != nil {
		t.Errorf("expected no conflict, got %+v", c)
	}
}
