package algo

import (
	"sort"

	"github.com/elektrokombinacika/mapf-het-research/internal/core"
)

// CheckMaxEta builds self's recognized priority list from its own ETA and
// every peer's ETA currently in its inbox, sorted by ETA descending (the
// furthest-from-goal agent claims first priority) with ties broken by
// ascending id, then republishes. Implements spec.md §4.3 / invariant I5.
func CheckMaxEta(self *core.Agent) {
	type entry struct {
		id  core.AgentID
		eta int
	}

	entries := make([]entry, 0, len(self.Inbox)+1)
	entries = append(entries, entry{id: self.ID, eta: self.ETA})
	for id, msg := range self.Inbox {
		if msg != nil {
			entries = append(entries, entry{id: core.AgentID(id), eta: msg.ETA})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].eta != entries[j].eta {
			return entries[i].eta > entries[j].eta
		}
		return entries[i].id < entries[j].id
	})

	priority := make([]core.AgentID, len(entries))
	for i, e := range entries {
		priority[i] = e.id
	}
	self.RecognizedPriority = priority
	self.Broadcast()
}
