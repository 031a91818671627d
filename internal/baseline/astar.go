package baseline

import (
	"container/heap"

	"github.com/elektrokombinacika/mapf-het-research/internal/core"
)

type spaceTimeState struct {
	cell Cell
	t    int
}

type astarNode struct {
	state  spaceTimeState
	g      int
	f      int
	parent *astarNode
	index  int
}

type astarHeap []*astarNode

func (h astarHeap) Len() int            { return len(h) }
func (h astarHeap) Less(i, j int) bool   { return h[i].f < h[j].f }
func (h astarHeap) Swap(i, j int)        { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *astarHeap) Push(x interface{}) { n := x.(*astarNode); n.index = len(*h); *h = append(*h, n) }
func (h *astarHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return x
}

// SpaceTimeAStar searches for the shortest cell path from start to goal
// that avoids every given constraint, using the Manhattan distance to
// goal as an admissible heuristic. maxTime bounds the search horizon.
func SpaceTimeAStar(grid core.Grid, agent core.AgentID, start, goal Cell, constraints []Constraint, maxTime int) Plan {
	violates := func(c Cell, t int) bool {
		for _, con := range constraints {
			if con.Agent != agent || con.T != t || con.IsEdge {
				continue
			}
			if con.Cell == c {
				return true
			}
		}
		return false
	}
	violatesEdge := func(from, to Cell, t int) bool {
		for _, con := range constraints {
			if con.Agent != agent || !con.IsEdge || con.T != t {
				continue
			}
			if con.EdgeFrom == from && con.EdgeTo == to {
				return true
			}
		}
		return false
	}

	open := &astarHeap{}
	heap.Init(open)
	heap.Push(open, &astarNode{state: spaceTimeState{cell: start, t: 0}, g: 0, f: manhattan(start, goal)})

	visited := make(map[spaceTimeState]bool)

	for open.Len() > 0 {
		cur := heap.Pop(open).(*astarNode)
		if cur.state.cell == goal {
			return reconstruct(cur)
		}
		if visited[cur.state] {
			continue
		}
		visited[cur.state] = true
		if cur.state.t >= maxTime {
			continue
		}

		nextT := cur.state.t + 1

		if !violates(cur.state.cell, nextT) {
			waitState := spaceTimeState{cell: cur.state.cell, t: nextT}
			if !visited[waitState] {
				heap.Push(open, &astarNode{state: waitState, g: cur.g + 1, f: cur.g + 1 + manhattan(cur.state.cell, goal), parent: cur})
			}
		}

		for _, d := range [4]Cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			next := Cell{X: cur.state.cell.X + d.X, Y: cur.state.cell.Y + d.Y}
			if !grid.InBounds(next.X, next.Y) {
				continue
			}
			if violates(next, nextT) || violatesEdge(cur.state.cell, next, cur.state.t) {
				continue
			}
			moveState := spaceTimeState{cell: next, t: nextT}
			if visited[moveState] {
				continue
			}
			heap.Push(open, &astarNode{state: moveState, g: cur.g + 1, f: cur.g + 1 + manhattan(next, goal), parent: cur})
		}
	}
	return nil
}

func reconstruct(n *astarNode) Plan {
	var plan Plan
	for cur := n; cur != nil; cur = cur.parent {
		plan = append(Plan{cur.state.cell}, plan...)
	}
	return plan
}
