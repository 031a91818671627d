package core

import "testing"

func TestCheckMoveInvariantsPasses(t *testing.T) {
	a := NewAgent(0, Point{X: 0, Y: 0}, Point{X: 2, Y: 0}, 1)
	a.Move()
	if err := CheckMoveInvariants(a); err != nil {
		t.Errorf("unexpected invariant violation: %v", err)
	}
}

func TestCheckMoveInvariantsCatchesETAMismatch(t *testing.T) {
	a := NewAgent(0, Point{X: 0, Y: 0}, Point{X: 2, Y: 0}, 1)
	a.ETA = len(a.Path) + 1
	if err := CheckMoveInvariants(a); err == nil {
		t.Error("expected violation for mismatched ETA")
	}
}

func TestCheckMoveInvariantsCatchesArrivedWithRemainingPath(t *testing.T) {
	a := NewAgent(0, Point{X: 0, Y: 0}, Point{X: 2, Y: 0}, 1)
	a.Arrived = true
	if err := CheckMoveInvariants(a); err == nil {
		t.Error("expected violation for arrived agent with non-empty path")
	}
}

func TestCheckPathInvariantsPasses(t *testing.T) {
	a := NewAgent(0, Point{X: 0, Y: 0}, Point{X: 2, Y: 3}, 1)
	if err := CheckPathInvariants(a); err != nil {
		t.Errorf("unexpected invariant violation: %v", err)
	}
}

func TestCheckPathInvariantsCatchesDiagonal(t *testing.T) {
	a := NewAgent(0, Point{X: 0, Y: 0}, Point{X: 1, Y: 1}, 1)
	a.Path = Path{{X: 0.8, Y: 0.8}, {X: 1, Y: 1}}
	if err := CheckPathInvariants(a); err == nil {
		t.Error("expected violation for a diagonal step")
	}
}

func TestCheckPathInvariantsCatchesWrongDestination(t *testing.T) {
	a := NewAgent(0, Point{X: 0, Y: 0}, Point{X: 2, Y: 0}, 1)
	a.Path[len(a.Path)-1] = Point{X: 99, Y: 99}
	if err := CheckPathInvariants(a); err == nil {
		t.Error("expected violation for a path not ending at the destination")
	}
}

func TestCheckPriorityInvariantPasses(t *testing.T) {
	a := NewAgent(0, Point{X: 0, Y: 0}, Point{X: 2, Y: 0}, 2)
	a.RecognizedPriority = []AgentID{0}
	if err := CheckPriorityInvariant(a); err != nil {
		t.Errorf("unexpected invariant violation: %v", err)
	}
}

func TestCheckPriorityInvariantCatchesDuplicate(t *testing.T) {
	a := NewAgent(0, Point{X: 0, Y: 0}, Point{X: 2, Y: 0}, 2)
	a.RecognizedPriority = []AgentID{0, 1, 1}
	if err := CheckPriorityInvariant(a); err == nil {
		t.Error("expected violation for duplicate id")
	}
}

func TestCheckPriorityInvariantCatchesMissingSelf(t *testing.T) {
	a := NewAgent(0, Point{X: 0, Y: 0}, Point{X: 2, Y: 0}, 2)
	a.RecognizedPriority = []AgentID{1}
	if err := CheckPriorityInvariant(a); err == nil {
		t.Error("expected violation for recognized priority omitting self")
	}
}
