package bridge

import (
	"testing"

	"github.com/elektrokombinacika/mapf-het-research/internal/core"
)

func newTestFleet() []*core.Agent {
	return []*core.Agent{
		core.NewAgent(0, core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 0}, 3),
		core.NewAgent(1, core.Point{X: 1, Y: 1}, core.Point{X: 0, Y: 0}, 3),
		core.NewAgent(2, core.Point{X: 9, Y: 9}, core.Point{X: 0, Y: 0}, 3),
	}
}

func TestPublishAllBuildsEveryBroadcast(t *testing.T) {
	agents := newTestFleet()
	bus := NewBus(agents)
	bus.PublishAll()

	for _, a := range agents {
		if a.BroadcastMsg == nil {
			t.Errorf("agent %d has no broadcast message after PublishAll", a.ID)
		}
	}
}

func TestDeliverAllRespectsProximity(t *testing.T) {
	agents := newTestFleet()
	bus := NewBus(agents)
	bus.PublishAll()
	bus.DeliverAll(false)

	if agents[0].Inbox[1] == nil {
		t.Error("agent 0 should observe nearby agent 1")
	}
	if agents[0].Inbox[2] != nil {
		t.Error("agent 0 should not observe far-away agent 2")
	}
}

func TestDeliverFromOnlyPublishesOneSender(t *testing.T) {
	agents := newTestFleet()
	bus := NewBus(agents)
	bus.PublishAll()

	bus.DeliverFrom(0, false)
	if agents[1].Inbox[0] == nil {
		t.Error("agent 1 should have received agent 0's snapshot")
	}
	if agents[1].Inbox[2] != nil {
		t.Error("DeliverFrom(0, ...) should not deliver any other sender")
	}
}

func TestDeliverStuckForcedSkipsOkayAgents(t *testing.T) {
	agents := newTestFleet()
	bus := NewBus(agents)
	bus.PublishAll()
	bus.DeliverAll(false)
	for _, a := range agents {
		a.RecognizedPriority = []core.AgentID{a.ID}
	}

	agents[1].RecognizedPriority = []core.AgentID{2, 1, 0}
	agents[1].Broadcast()

	okay := map[core.AgentID]bool{0: true, 1: false, 2: true}
	bus.DeliverStuckForced(okay)

	if len(agents[0].RecognizedPriority) == 0 {
		t.Fatal("agent 0 should have adopted a recognized priority from the forced fetch")
	}
	if agents[0].RecognizedPriority[0] != 1 {
		t.Errorf("agent 0 should adopt stuck agent 1's priority ordering, got %v", agents[0].RecognizedPriority)
	}
}
