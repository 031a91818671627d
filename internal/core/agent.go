package core

import (
	"math"

	"github.com/google/uuid"
)

// Agent is one aircraft in the fleet: its identity, immutable
// source/destination, and the mutable state the distributed protocol
// advances every tick.
type Agent struct {
	ID          AgentID
	Source      Point
	Destination Point

	X, Y        float64
	Orientation Orientation

	Path        Path // remaining sub-steps, not including the current cell
	PathHistory Path // visited sub-steps

	ETA     int // len(Path), invariant I2
	Arrived bool

	// ForecastLength is the number of cells (not sub-steps) of path to
	// publish on Broadcast; -1 means "publish the entire remaining path".
	ForecastLength float64

	RecognizedPriority []AgentID
	BroadcastMsg       *Message
	Inbox              Mailbox
}

// NewAgent builds an agent with its initial greedy path already generated
// (autoGenPath with no mandatory prefix) and its mailbox sized for a fleet
// of n members.
func NewAgent(id AgentID, source, destination Point, fleetSize int) *Agent {
	a := &Agent{
		ID:             id,
		Source:         source,
		Destination:    destination,
		X:              source.X,
		Y:              source.Y,
		ForecastLength: -1,
		Inbox:          NewMailbox(fleetSize),
	}
	path, eta := AutoGenPath(source, destination, nil)
	a.Path = path
	a.ETA = eta
	a.Orientation = a.computeOrientation()
	a.Arrived = source.X == destination.X && source.Y == destination.Y
	return a
}

// computeOrientation derives the unit vector from the current position to
// the next path point. If fewer than two path points remain, orientation
// is undefined by the protocol and the previous value is retained (I3's
// "no diagonals, no teleports" guarantee relies on this never changing
// except in discrete unit steps).
func (a *Agent) computeOrientation() Orientation {
	if len(a.Path) < 2 {
		return a.Orientation
	}
	dx := int(math.Round((a.Path[0].X - a.X) / Speed))
	dy := int(math.Round((a.Path[0].Y - a.Y) / Speed))
	return Orientation{DX: dx, DY: dy}
}

// Broadcast fills the agent's outgoing snapshot. When ForecastLength is
// non-negative, the published path is truncated to its first
// round(ForecastLength/Speed) sub-steps.
func (a *Agent) Broadcast() {
	path := a.Path
	if a.ForecastLength >= 0 {
		n := int(math.Round(a.ForecastLength / Speed))
		if n < len(path) {
			path = path[:n]
		}
	}
	a.BroadcastMsg = &Message{
		TraceID:            uuid.New(),
		SenderID:           a.ID,
		X:                  a.X,
		Y:                  a.Y,
		Orientation:        a.Orientation,
		ETA:                a.ETA,
		Path:               path.Clone(),
		Arrived:            a.Arrived,
		Destination:        a.Destination,
		RecognizedPriority: append([]AgentID{}, a.RecognizedPriority...),
	}
}

// Fetch copies peer's broadcast snapshot into this agent's mailbox iff the
// two agents are within the Chebyshev proximity radius; otherwise the
// slot is cleared. With forcePriority, the receiver additionally adopts
// the peer's recognized priority list, filtered down to ids it can
// currently observe (plus itself) — the consensus-repair mechanism used
// after a dead end.
func (a *Agent) Fetch(peerID AgentID, peerMsg *Message, forcePriority bool) {
	if peerMsg != nil && chebyshev(a.X, a.Y, peerMsg.X, peerMsg.Y) <= 2 {
		a.Inbox[peerID] = peerMsg
	} else {
		a.Inbox[peerID] = nil
	}

	if !forcePriority || peerMsg == nil {
		return
	}
	a.RecognizedPriority = append([]AgentID{}, peerMsg.RecognizedPriority...)
	filtered := a.RecognizedPriority[:0:0]
	for _, id := range a.RecognizedPriority {
		if id != a.ID && int(id) < len(a.Inbox) && a.Inbox[id] == nil {
			continue
		}
		filtered = append(filtered, id)
	}
	a.RecognizedPriority = filtered
}

func chebyshev(ax, ay, bx, by float64) int {
	dx := int(math.Round(math.Abs(ax - bx)))
	dy := int(math.Round(math.Abs(ay - by)))
	if dx > dy {
		return dx
	}
	return dy
}

// Move advances the agent by one sub-step: records the current cell in
// path history, derives orientation for the upcoming move, steps onto
// path[0], and marks arrival at the destination.
func (a *Agent) Move() {
	if a.Arrived {
		return
	}
	a.PathHistory = append(a.PathHistory, Point{X: a.X, Y: a.Y})
	a.Orientation = a.computeOrientation()
	next := a.Path[0]
	a.X, a.Y = next.X, next.Y
	a.Path = a.Path[1:]
	a.ETA = len(a.Path)
	if a.X == a.Destination.X && a.Y == a.Destination.Y {
		a.Arrived = true
	}
}
