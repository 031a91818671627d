package algo

import (
	"testing"

	"github.com/elektrokombinacika/mapf-het-research/internal/core"
)

func TestPreferenceListDiagonalGoalPrefersLargerAxisFirst(t *testing.T) {
	cur := core.Point{X: 0, Y: 0}
	dest := core.Point{X: 5, Y: 1}

	prefs := PreferenceList(cur, dest)
	if len(prefs) != 4 {
		t.Fatalf("expected 4 preferences, got %d", len(prefs))
	}
	if prefs[0] != (core.Orientation{DX: 1}) {
		t.Errorf("first preference = %+v, want +X (larger delta axis)", prefs[0])
	}
	if prefs[1] != (core.Orientation{DY: 1}) {
		t.Errorf("second preference = %+v, want +Y (smaller delta axis)", prefs[1])
	}
}

func TestPreferenceListIsPermutationOfFourDirections(t *testing.T) {
	cur := core.Point{X: 2, Y: 2}
	dest := core.Point{X: 0, Y: 5}

	prefs := PreferenceList(cur, dest)
	seen := make(map[core.Orientation]bool)
	for _, p := range prefs {
		seen[p] = true
	}
	want := []core.Orientation{{DX: 1}, {DX: -1}, {DY: 1}, {DY: -1}}
	for _, w := range want {
		if !seen[w] {
			t.Errorf("missing direction %+v from preference list %v", w, prefs)
		}
	}
}

func TestPreferenceListAxisAlignedGoal(t *testing.T) {
	cur := core.Point{X: 0, Y: 0}
	dest := core.Point{X: 5, Y: 0}

	prefs := PreferenceList(cur, dest)
	if prefs[0] != (core.Orientation{DX: 1}) {
		t.Errorf("first preference = %+v, want +X", prefs[0])
	}
}
