package core

// ScenarioPair is one agent's source/destination assignment, as produced
// by a scenario source (spec.md §6).
type ScenarioPair struct {
	Source      Point
	Destination Point
}

// Fleet is the set of agents participating in one simulation run, indexed
// by AgentID.
type Fleet struct {
	Grid   Grid
	Agents []*Agent
}

// NewFleet builds a Fleet from scenario pairs, generating each agent's
// initial greedy path.
func NewFleet(grid Grid, pairs []ScenarioPair) *Fleet {
	agents := make([]*Agent, len(pairs))
	for i, pair := range pairs {
		agents[i] = NewAgent(AgentID(i), pair.Source, pair.Destination, len(pairs))
	}
	return &Fleet{Grid: grid, Agents: agents}
}

// AllArrived reports whether every agent in the fleet has reached its
// destination.
func (f *Fleet) AllArrived() bool {
	for _, a := range f.Agents {
		if !a.Arrived {
			return false
		}
	}
	return true
}

// ByID returns the agent with the given id, or nil if out of range.
func (f *Fleet) ByID(id AgentID) *Agent {
	if int(id) < 0 || int(id) >= len(f.Agents) {
		return nil
	}
	return f.Agents[id]
}
