package baseline

import "github.com/elektrokombinacika/mapf-het-research/internal/core"

// Prioritized plans each agent in a fixed priority order, treating every
// already-planned higher-priority agent's path as a hard constraint for
// everyone planned after it.
type Prioritized struct {
	MaxTime int
}

// NewPrioritized builds a Prioritized solver with the given search
// horizon.
func NewPrioritized(maxTime int) *Prioritized {
	return &Prioritized{MaxTime: maxTime}
}

func (p *Prioritized) Name() string { return "Prioritized" }

// Solve plans agents in ascending id order.
func (p *Prioritized) Solve(grid core.Grid, pairs []core.ScenarioPair) *Solution {
	plans := make(map[core.AgentID]Plan, len(pairs))
	var constraints []Constraint

	for i, pair := range pairs {
		id := core.AgentID(i)
		start, goal := toCell(pair.Source), toCell(pair.Destination)

		plan := SpaceTimeAStar(grid, id, start, goal, constraints, p.MaxTime)
		if plan == nil {
			return &Solution{Plans: plans, Feasible: false}
		}
		plans[id] = plan

		for t, cell := range plan {
			for j := range pairs {
				other := core.AgentID(j)
				if other == id {
					continue
				}
				constraints = append(constraints, Constraint{Agent: other, Cell: cell, T: t})
				if t > 0 {
					constraints = append(constraints, Constraint{Agent: other, IsEdge: true, EdgeFrom: cell, EdgeTo: plan[t-1], T: t - 1})
				}
			}
		}
	}

	return &Solution{Plans: plans, Feasible: true, Makespan: makespan(plans)}
}
