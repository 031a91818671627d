package algo

import (
	"fmt"

	"github.com/elektrokombinacika/mapf-het-research/internal/core"
	"github.com/elektrokombinacika/mapf-het-research/internal/simerr"
)

// bfsState is one expanded node of the constrained BFS: a cell, the
// orientation the agent entered it with, the number of cells traversed
// since the search root, and the index of its parent in the search
// arena (-1 for the root). t is counted in cells, not sub-steps — see
// spec.md §4.5.
type bfsState struct {
	x, y   int
	orient core.Orientation
	t      int
	parent int
}

// ModifyPath re-routes self around higher-priority peers when a conflict
// has been detected. An agent that already holds top priority succeeds
// without replanning. Otherwise it runs a bounded, goal-biased BFS over
// (x, y, orientation, t) subject to peer-path safety constraints from
// every higher-priority peer, reconstructs the detour as a sub-step path,
// and lets autoGenPath finish the journey greedily from the last planned
// cell. Returns simerr.ErrPlannerDeadEnd if the search frontier is
// exhausted; the caller (the orchestrator's replan loop) decides what to
// do next — spec.md §4.5/§4.6.
func ModifyPath(self *core.Agent, grid core.Grid, fleetSize int) error {
	if len(self.RecognizedPriority) == 0 {
		return fmt.Errorf("modifyPath agent %d: %w: empty recognized priority", self.ID, simerr.ErrInvariantViolation)
	}
	if self.RecognizedPriority[0] == self.ID {
		return nil
	}

	selfIdx := indexOf(self.RecognizedPriority, self.ID)
	if selfIdx < 0 {
		return fmt.Errorf("modifyPath agent %d: %w: self missing from recognized priority", self.ID, simerr.ErrInvariantViolation)
	}
	higherPriority := self.RecognizedPriority[:selfIdx]

	startX, startY := cellRound(self.X), cellRound(self.Y)
	destX, destY := cellRound(self.Destination.X), cellRound(self.Destination.Y)

	etaCells := self.ETA / core.SubStepsPerCell
	costCap := etaCells + 2*fleetSize - 2

	used := make([][][4]bool, grid.W+1)
	for i := range used {
		used[i] = make([][4]bool, grid.H+1)
	}

	// The root cell is deliberately left unmarked in used: the reference
	// implementation's modifyPath never marks its own starting state
	// either, so a detour that legitimately returns to the start cell
	// under the same entry orientation is not pruned.
	queue := []bfsState{{x: startX, y: startY, orient: self.Orientation, t: 0, parent: -1}}

	ptr := 0
	goalIdx := -1
	for {
		if ptr >= len(queue) {
			break // dead end
		}
		curIdx := ptr
		cur := queue[curIdx]
		ptr++

		if cur.x == destX && cur.y == destY {
			goalIdx = curIdx
			break
		}

		for _, move := range PreferenceList(core.NewPoint(float64(cur.x), float64(cur.y)), core.NewPoint(float64(destX), float64(destY))) {
			// No U-turns.
			if move.DX+cur.orient.DX == 0 && move.DY+cur.orient.DY == 0 {
				continue
			}

			nx, ny := cur.x+move.DX, cur.y+move.DY
			if !grid.InBounds(nx, ny) {
				continue
			}

			oid := move.ID()
			if used[nx][ny][oid] {
				continue
			}

			tNext := cur.t + 1
			if !peerPathSafe(self, higherPriority, cur.x, cur.y, nx, ny, tNext) {
				continue
			}

			h := absInt(nx-destX) + absInt(ny-destY)
			if tNext+h > costCap {
				continue
			}

			used[nx][ny][oid] = true
			queue = append(queue, bfsState{x: nx, y: ny, orient: move, t: tNext, parent: curIdx})
		}
	}

	if goalIdx == -1 {
		rotatePriorityToFront(self)
		self.Broadcast()
		return fmt.Errorf("modifyPath agent %d: %w", self.ID, simerr.ErrPlannerDeadEnd)
	}

	applyDetour(self, queue, goalIdx)
	self.Broadcast()
	return nil
}

// peerPathSafe implements the three peer-path safety conditions of
// spec.md §4.5: vertex conflict at arrival time, immediate swap with the
// peer's current cell, and a swap one cell back in time.
func peerPathSafe(self *core.Agent, higherPriority []core.AgentID, curX, curY, nx, ny, tNext int) bool {
	tau := core.SubStepsPerCell * tNext

	for _, pid := range higherPriority {
		if pid == self.ID {
			continue
		}
		msg := self.Inbox[pid]
		if msg == nil {
			continue
		}
		p := msg.Path
		xb, yb := cellRound(msg.X), cellRound(msg.Y)

		if len(p) >= tau {
			px, py := p[tau-1].Cell()
			if px == nx && py == ny {
				return false
			}
		}

		if nx == xb && ny == yb && len(p) >= core.SubStepsPerCell {
			px, py := p[core.SubStepsPerCell-1].Cell()
			if px == curX && py == curY {
				return false
			}
		}

		// On the first cell (tNext == 1) "one cell back" lies before the
		// start of the peer's path, so there is no earlier entry to test.
		if tau > core.SubStepsPerCell && len(p) >= tau && len(p) >= 2*core.SubStepsPerCell {
			backX, backY := p[tau-1-core.SubStepsPerCell].Cell()
			aheadX, aheadY := p[tau-1].Cell()
			if backX == nx && backY == ny && aheadX == curX && aheadY == curY {
				return false
			}
		}
	}
	return true
}

// applyDetour walks the BFS arena's parent chain from goalIdx back to the
// root, drops the first (current-position) cell, interpolates each
// remaining cell-to-cell hop into sub-steps, and lets autoGenPath finish
// the path greedily from there.
func applyDetour(self *core.Agent, queue []bfsState, goalIdx int) {
	var chain []bfsState
	for idx := goalIdx; idx != -1; idx = queue[idx].parent {
		chain = append([]bfsState{queue[idx]}, chain...)
	}

	detour := core.Path{core.NewPoint(float64(chain[0].x), float64(chain[0].y))}
	for i := 1; i < len(chain); i++ {
		last := detour[len(detour)-1]
		if last.X == float64(chain[i].x) && last.Y == float64(chain[i].y) {
			continue // goal reached mid-chain; remaining entries (if any) are unreachable
		}
		detour = append(detour, core.InterpolateCells(last, float64(chain[i].x), float64(chain[i].y))...)
	}

	newPath, eta := core.AutoGenPath(self.Source, self.Destination, detour[1:])
	self.Path = newPath
	self.ETA = eta
}

// rotatePriorityToFront mutates self's recognized priority by moving self
// to the front, preserving every other id's relative order — the
// dead-end recovery / consensus-repair proposal of spec.md §4.5.
func rotatePriorityToFront(self *core.Agent) {
	idx := indexOf(self.RecognizedPriority, self.ID)
	if idx < 0 {
		return
	}
	rotated := make([]core.AgentID, 0, len(self.RecognizedPriority))
	rotated = append(rotated, self.ID)
	rotated = append(rotated, self.RecognizedPriority[:idx]...)
	rotated = append(rotated, self.RecognizedPriority[idx+1:]...)
	self.RecognizedPriority = rotated
}

func indexOf(ids []core.AgentID, target core.AgentID) int {
	for i, id := range ids {
		if id == target {
			return i
		}
	}
	return -1
}

func cellRound(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return -int(-v + 0.5)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
