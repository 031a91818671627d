package algo

import (
	"testing"

	"github.com/elektrokombinacika/mapf-het-research/internal/core"
)

func TestCheckMaxEtaOrdersByDescendingETA(t *testing.T) {
	a := core.NewAgent(0, core.Point{X: 0, Y: 0}, core.Point{X: 1, Y: 0}, 3) // short path, small ETA
	b := core.NewAgent(1, core.Point{X: 0, Y: 0}, core.Point{X: 9, Y: 9}, 3) // long path, large ETA

	b.Broadcast()
	a.Fetch(b.ID, b.BroadcastMsg, false)

	CheckMaxEta(a)

	if len(a.RecognizedPriority) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(a.RecognizedPriority), a.RecognizedPriority)
	}
	if a.RecognizedPriority[0] != b.ID {
		t.Errorf("the further agent (larger ETA) should be first in priority, got %v", a.RecognizedPriority)
	}
}

func TestCheckMaxEtaTieBreaksByAscendingID(t *testing.T) {
	a := core.NewAgent(0, core.Point{X: 0, Y: 0}, core.Point{X: 2, Y: 0}, 3)
	b := core.NewAgent(1, core.Point{X: 0, Y: 0}, core.Point{X: 2, Y: 0}, 3) // identical ETA

	b.Broadcast()
	a.Fetch(b.ID, b.BroadcastMsg, false)

	CheckMaxEta(a)

	if a.RecognizedPriority[0] != a.ID {
		t.Errorf("equal ETA should tie-break to the lower id, got %v", a.RecognizedPriority)
	}
}

func TestCheckMaxEtaRebroadcasts(t *testing.T) {
	a := core.NewAgent(0, core.Point{X: 0, Y: 0}, core.Point{X: 2, Y: 0}, 1)
	CheckMaxEta(a)
	if a.BroadcastMsg == nil {
		t.Error("CheckMaxEta should rebroadcast after updating recognized priority")
	}
}
