package sim

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/elektrokombinacika/mapf-het-research/internal/core"
)

func newTestFleet(pairs []core.ScenarioPair) *core.Fleet {
	grid := core.Grid{W: 10, H: 10}
	return core.NewFleet(grid, pairs)
}

func TestOrchestratorRunSingleAgentArrives(t *testing.T) {
	fleet := newTestFleet([]core.ScenarioPair{
		{Source: core.Point{X: 0, Y: 0}, Destination: core.Point{X: 3, Y: 0}},
	})
	orch := NewOrchestrator(fleet, DefaultConfig(), zerolog.Nop())

	if err := orch.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fleet.AllArrived() {
		t.Error("fleet should have arrived")
	}
}

func TestOrchestratorRunTwoCollidingAgentsResolve(t *testing.T) {
	fleet := newTestFleet([]core.ScenarioPair{
		{Source: core.Point{X: 0, Y: 0}, Destination: core.Point{X: 6, Y: 0}},
		{Source: core.Point{X: 6, Y: 0}, Destination: core.Point{X: 0, Y: 0}},
	})
	orch := NewOrchestrator(fleet, DefaultConfig(), zerolog.Nop())

	if err := orch.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, a := range fleet.Agents {
		if err := core.CheckPathInvariants(a); err != nil {
			t.Errorf("agent %d: %v", a.ID, err)
		}
	}
}

func TestOrchestratorStepIncrementsTick(t *testing.T) {
	fleet := newTestFleet([]core.ScenarioPair{
		{Source: core.Point{X: 0, Y: 0}, Destination: core.Point{X: 5, Y: 0}},
	})
	orch := NewOrchestrator(fleet, DefaultConfig(), zerolog.Nop())

	if orch.Tick() != 0 {
		t.Fatalf("tick should start at 0, got %d", orch.Tick())
	}
	if err := orch.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orch.Tick() != 1 {
		t.Errorf("tick should be 1 after one Step, got %d", orch.Tick())
	}
}

func TestOrchestratorRunRespectsMaxTicks(t *testing.T) {
	fleet := newTestFleet([]core.ScenarioPair{
		{Source: core.Point{X: 0, Y: 0}, Destination: core.Point{X: 9, Y: 9}},
	})
	cfg := DefaultConfig()
	cfg.MaxTicks = 1
	orch := NewOrchestrator(fleet, cfg, zerolog.Nop())

	err := orch.Run(context.Background())
	if err == nil {
		t.Fatal("expected an error when MaxTicks is exceeded before arrival")
	}
}

func TestOrchestratorRunRespectsContextCancellation(t *testing.T) {
	fleet := newTestFleet([]core.ScenarioPair{
		{Source: core.Point{X: 0, Y: 0}, Destination: core.Point{X: 9, Y: 9}},
	})
	orch := NewOrchestrator(fleet, DefaultConfig(), zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := orch.Run(ctx); err == nil {
		t.Error("expected context cancellation to abort the run")
	}
}
