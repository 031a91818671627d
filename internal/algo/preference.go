// Package algo implements the distributed collision-avoidance protocol's
// per-tick algorithms: conflict detection, the ETA priority protocol, and
// the constrained BFS planner that re-routes lower-priority agents.
package algo

import (
	"math"

	"github.com/elektrokombinacika/mapf-het-research/internal/core"
)

// PreferenceList orders the four unit moves from cur toward dest,
// goal-biased: first the sign that reduces whichever axis has the larger
// remaining delta, then the sign that reduces the smaller delta, then the
// opposite of the first choice, then the opposite of the second. This is
// the general rule behind spec.md §8 scenario S1 and resolves the
// reference implementation's quadrant-table typo (spec.md §9, Open
// Question (b)) structurally: there is no per-quadrant table to typo.
func PreferenceList(cur, dest core.Point) []core.Orientation {
	dx := dest.X - cur.X
	dy := dest.Y - cur.Y
	absDx, absDy := math.Abs(dx), math.Abs(dy)

	switch {
	case dx != 0 && dy != 0:
		var larger, smaller core.Orientation
		if absDx > absDy {
			larger = core.Orientation{DX: sign(dx)}
			smaller = core.Orientation{DY: sign(dy)}
		} else {
			larger = core.Orientation{DY: sign(dy)}
			smaller = core.Orientation{DX: sign(dx)}
		}
		return []core.Orientation{larger, smaller, larger.Negate(), smaller.Negate()}

	case dx == 0 && dy != 0:
		if dy < 0 {
			return []core.Orientation{{DY: -1}, {DX: -1}, {DX: 1}, {DY: 1}}
		}
		return []core.Orientation{{DY: 1}, {DX: -1}, {DX: 1}, {DY: -1}}

	default: // dy == 0 (including dx == 0 && dy == 0, already at goal)
		if dx < 0 {
			return []core.Orientation{{DX: -1}, {DY: -1}, {DY: 1}, {DX: 1}}
		}
		return []core.Orientation{{DX: 1}, {DY: -1}, {DY: 1}, {DX: -1}}
	}
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
