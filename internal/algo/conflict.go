package algo

import "github.com/elektrokombinacika/mapf-het-research/internal/core"

// WillCollide scans self's path against every peer it currently observes
// (a non-nil inbox entry — out-of-radio-range peers are not checked) for a
// vertex conflict (same cell at the same sub-step) or a swap conflict
// (the two agents trade cells between consecutive sub-steps). It returns
// whether any conflict was found and the ids of every peer in conflict.
func WillCollide(self *core.Agent) (bool, []core.AgentID) {
	var collidingIDs []core.AgentID

	for _, msg := range self.Inbox {
		if msg == nil {
			continue
		}
		if PathsCollide(self.Path, msg.Path) {
			collidingIDs = append(collidingIDs, msg.SenderID)
		}
	}

	return len(collidingIDs) > 0, collidingIDs
}

// PathsCollide reports whether two paths share a vertex conflict (same
// cell at the same sub-step) or a swap conflict (the two trade cells
// between consecutive sub-steps), independent of radio range. This is the
// proximity-free scan the standalone willCollide check in the reference
// implementation performs directly on two aircrafts' full paths.
func PathsCollide(a, b core.Path) bool {
	limit := min(len(a), len(b))
	for i := 0; i < limit; i++ {
		if a[i] == b[i] {
			return true
		}
		if i < limit-1 && a[i+1] == b[i] && a[i] == b[i+1] {
			return true
		}
	}
	return false
}
