// Package bridge implements the fleet's message bus: the single point
// through which every agent publishes its broadcast snapshot and pulls
// peer snapshots, rather than reading another agent's live fields
// directly. This is the decoupling spec.md's design notes call for —
// an agent only ever sees what was last handed to it through the bus.
package bridge

import "github.com/elektrokombinacika/mapf-het-research/internal/core"

// Bus dispatches broadcast/fetch traffic for one fleet. It holds no
// state of its own beyond the agent roster: every snapshot lives in the
// sender's own BroadcastMsg field until a receiver's Fetch pulls it in.
type Bus struct {
	agents []*core.Agent
}

// NewBus builds a bus over the given agent roster.
func NewBus(agents []*core.Agent) *Bus {
	return &Bus{agents: agents}
}

// PublishAll has every agent build its outgoing snapshot.
func (b *Bus) PublishAll() {
	for _, a := range b.agents {
		a.Broadcast()
	}
}

// DeliverAll has every agent fetch every other agent's latest published
// snapshot, subject to the receiver's own proximity filter.
func (b *Bus) DeliverAll(forcePriority bool) {
	for _, receiver := range b.agents {
		for _, sender := range b.agents {
			if receiver.ID == sender.ID {
				continue
			}
			receiver.Fetch(sender.ID, sender.BroadcastMsg, forcePriority)
		}
	}
}

// DeliverFrom has every other agent fetch a single sender's latest
// published snapshot. Used by the replan loop, which republishes one
// agent at a time as it resolves its path.
func (b *Bus) DeliverFrom(senderID core.AgentID, forcePriority bool) {
	var sender *core.Agent
	for _, a := range b.agents {
		if a.ID == senderID {
			sender = a
			break
		}
	}
	if sender == nil {
		return
	}
	for _, receiver := range b.agents {
		if receiver.ID == senderID {
			continue
		}
		receiver.Fetch(senderID, sender.BroadcastMsg, forcePriority)
	}
}

// DeliverStuckForced forces every agent to adopt recognized priority
// from every sender still marked not-okay in the given map — the
// dead-end recovery fetch of spec.md §4.5, run between failed replan
// rounds so the fleet converges on a shared priority ordering.
func (b *Bus) DeliverStuckForced(okay map[core.AgentID]bool) {
	for _, sender := range b.agents {
		if okay[sender.ID] {
			continue
		}
		for _, receiver := range b.agents {
			if receiver.ID == sender.ID {
				continue
			}
			receiver.Fetch(sender.ID, sender.BroadcastMsg, true)
		}
	}
}
