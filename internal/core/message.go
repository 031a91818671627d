package core

import "github.com/google/uuid"

// AgentID is a unique agent identifier, 0..N-1 within a fleet.
type AgentID int

// Message is an immutable snapshot of a peer published at its most recent
// Broadcast. Fetch copies it into the receiver's Mailbox slot; nothing
// ever mutates a Message after it is built, so the receiver never aliases
// the sender's live state (see design note in spec.md §9).
type Message struct {
	// TraceID correlates a single broadcast across every agent's logs for
	// one coordination phase.
	TraceID uuid.UUID

	SenderID           AgentID
	X, Y               float64
	Orientation        Orientation
	ETA                int
	Path               Path
	Arrived            bool
	Destination        Point
	RecognizedPriority []AgentID
}

// Mailbox is a fixed-size inbox, one slot per fleet member. A nil slot
// means the sender has not been observed (never broadcast, or out of
// proximity range at the last fetch).
type Mailbox []*Message

// NewMailbox allocates an empty mailbox sized for a fleet of n agents.
func NewMailbox(n int) Mailbox {
	return make(Mailbox, n)
}
