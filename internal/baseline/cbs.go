package baseline

import (
	"container/heap"

	"github.com/elektrokombinacika/mapf-het-research/internal/core"
)

// CBS implements Conflict-Based Search: plan every agent independently,
// then repeatedly branch on the first detected conflict by adding a
// constraint to one of the two colliding agents and re-planning just
// that agent, exploring branches in increasing-cost order.
type CBS struct {
	MaxTime int
}

// NewCBS builds a CBS solver with the given search horizon.
func NewCBS(maxTime int) *CBS {
	return &CBS{MaxTime: maxTime}
}

func (c *CBS) Name() string { return "CBS" }

type cbsNode struct {
	constraints []Constraint
	plans       map[core.AgentID]Plan
	cost        int
	index       int
}

type cbsHeap []*cbsNode

func (h cbsHeap) Len() int          { return len(h) }
func (h cbsHeap) Less(i, j int) bool { return h[i].cost < h[j].cost }
func (h cbsHeap) Swap(i, j int)     { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *cbsHeap) Push(x interface{}) {
	n := x.(*cbsNode)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *cbsHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return x
}

// Solve runs CBS to completion or exhaustion of the search tree.
func (c *CBS) Solve(grid core.Grid, pairs []core.ScenarioPair) *Solution {
	root := &cbsNode{plans: make(map[core.AgentID]Plan, len(pairs))}
	if !c.planAll(grid, pairs, root) {
		return &Solution{Feasible: false}
	}
	root.cost = makespan(root.plans)

	open := &cbsHeap{}
	heap.Init(open)
	heap.Push(open, root)

	for open.Len() > 0 {
		node := heap.Pop(open).(*cbsNode)

		conflict := FindFirstConflict(node.plans)
		if conflict == nil {
			return &Solution{Plans: node.plans, Feasible: true, Makespan: node.cost}
		}

		for _, agentID := range []core.AgentID{conflict.Agent1, conflict.Agent2} {
			// A swap conflict records Agent1's move; Agent2 traverses the
			// same edge in the opposite direction.
			from, to := conflict.EdgeFrom, conflict.EdgeTo
			if agentID == conflict.Agent2 {
				from, to = to, from
			}
			child := &cbsNode{
				constraints: append(append([]Constraint{}, node.constraints...), Constraint{
					Agent:    agentID,
					Cell:     conflict.Cell,
					T:        conflict.T,
					IsEdge:   conflict.IsEdge,
					EdgeFrom: from,
					EdgeTo:   to,
				}),
				plans: make(map[core.AgentID]Plan, len(pairs)),
			}
			for id, plan := range node.plans {
				if id != agentID {
					child.plans[id] = plan
				}
			}
			if c.replanOne(grid, pairs, agentID, child) {
				child.cost = makespan(child.plans)
				heap.Push(open, child)
			}
		}
	}

	return &Solution{Feasible: false}
}

func (c *CBS) planAll(grid core.Grid, pairs []core.ScenarioPair, node *cbsNode) bool {
	for i, pair := range pairs {
		id := core.AgentID(i)
		plan := SpaceTimeAStar(grid, id, toCell(pair.Source), toCell(pair.Destination), node.constraints, c.MaxTime)
		if plan == nil {
			return false
		}
		node.plans[id] = plan
	}
	return true
}

func (c *CBS) replanOne(grid core.Grid, pairs []core.ScenarioPair, agentID core.AgentID, node *cbsNode) bool {
	pair := pairs[agentID]
	plan := SpaceTimeAStar(grid, agentID, toCell(pair.Source), toCell(pair.Destination), node.constraints, c.MaxTime)
	if plan == nil {
		return false
	}
	node.plans[agentID] = plan
	return true
}
