package core

import (
	"fmt"

	"github.com/elektrokombinacika/mapf-het-research/internal/simerr"
)

// CheckMoveInvariants validates I2 and I6 against an agent immediately
// after Move(): ETA must equal the remaining path length, and an arrived
// agent must have an empty path. Callers that detect a violation should
// treat it as unrecoverable (spec.md §7: invariant-violation aborts the
// run, it is never retried).
func CheckMoveInvariants(a *Agent) error {
	if a.ETA != len(a.Path) {
		return fmt.Errorf("agent %d: %w: eta %d does not match path length %d", a.ID, simerr.ErrInvariantViolation, a.ETA, len(a.Path))
	}
	if a.Arrived && len(a.Path) != 0 {
		return fmt.Errorf("agent %d: %w: arrived but path is not empty (%d remaining)", a.ID, simerr.ErrInvariantViolation, len(a.Path))
	}
	return nil
}

// CheckPathInvariants validates I3 (unit-Speed axis-aligned steps, no
// diagonals or teleports) and I4 (the path ends at the destination) for a
// freshly generated or regenerated path.
func CheckPathInvariants(a *Agent) error {
	for i := 1; i < len(a.Path); i++ {
		prev, next := a.Path[i-1], a.Path[i]
		dx, dy := abs(next.X-prev.X), abs(next.Y-prev.Y)
		switch {
		case dx == 0 && dy == 0:
			return fmt.Errorf("agent %d: %w: stalled step (no movement) at %v", a.ID, simerr.ErrInvariantViolation, prev)
		case dx > 0 && dy > 0:
			return fmt.Errorf("agent %d: %w: diagonal step between %v and %v", a.ID, simerr.ErrInvariantViolation, prev, next)
		case dx > 0 && round2(dx) != Speed:
			return fmt.Errorf("agent %d: %w: non-unit horizontal step %v -> %v", a.ID, simerr.ErrInvariantViolation, prev, next)
		case dy > 0 && round2(dy) != Speed:
			return fmt.Errorf("agent %d: %w: non-unit vertical step %v -> %v", a.ID, simerr.ErrInvariantViolation, prev, next)
		}
	}
	if len(a.Path) > 0 {
		last := a.Path[len(a.Path)-1]
		if last.X != a.Destination.X || last.Y != a.Destination.Y {
			return fmt.Errorf("agent %d: %w: path ends at %v, not destination %v", a.ID, simerr.ErrInvariantViolation, last, a.Destination)
		}
	}
	return nil
}

// CheckPriorityInvariant validates I5: RecognizedPriority, after
// checkMaxEta, must be a permutation (no duplicates) of the ids the agent
// currently observes (itself plus every non-nil inbox entry).
func CheckPriorityInvariant(a *Agent) error {
	seen := make(map[AgentID]bool, len(a.RecognizedPriority))
	for _, id := range a.RecognizedPriority {
		if seen[id] {
			return fmt.Errorf("agent %d: %w: duplicate id %d in recognized priority", a.ID, simerr.ErrInvariantViolation, id)
		}
		seen[id] = true
	}
	for _, id := range a.RecognizedPriority {
		if id != a.ID && (int(id) < 0 || int(id) >= len(a.Inbox) || a.Inbox[id] == nil) {
			return fmt.Errorf("agent %d: %w: recognized priority includes unobserved id %d", a.ID, simerr.ErrInvariantViolation, id)
		}
	}
	if !seen[a.ID] {
		return fmt.Errorf("agent %d: %w: recognized priority omits self", a.ID, simerr.ErrInvariantViolation)
	}
	for id, msg := range a.Inbox {
		if msg != nil && !seen[AgentID(id)] {
			return fmt.Errorf("agent %d: %w: recognized priority omits observed peer %d", a.ID, simerr.ErrInvariantViolation, id)
		}
	}
	return nil
}
