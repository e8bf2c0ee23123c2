package domain

// Phase is the execution phase of a CallNode at a point in playback.
type Phase string

const (
	PhasePending   Phase = "pending"
	PhaseActive    Phase = "active"
	PhaseCompleted Phase = "completed"
)

// EventKind categorizes one step of tracer execution.
type EventKind string

const (
	// EventCallEnter marks entry into a recursive call (phase -> active).
	EventCallEnter EventKind = "enter"
	// EventMove marks emission of one disk move.
	EventMove EventKind = "move"
	// EventCallLeave marks completion of a recursive call (phase -> completed).
	EventCallLeave EventKind = "leave"
)

// CallNode is one recursive invocation of the solving algorithm.
// Nodes live in the flat Trace.Nodes slice; Parent and Children reference
// positions in that slice, so the tree is a plain immutable value with no
// pointer aliasing between traces.
type CallNode struct {
	ID    int `json:"id"`
	Disks int `json:"disks"`

	From Peg `json:"from"`
	Aux  Peg `json:"aux"`
	To   Peg `json:"to"`

	Parent   int   `json:"parent"` // -1 for the root
	Children []int `json:"children,omitempty"`
	Depth    int   `json:"depth"`

	// EnterSeq and LeaveSeq are the sequence indexes of this node's
	// enter and leave events in Trace.Events.
	EnterSeq int `json:"enter_seq"`
	LeaveSeq int `json:"leave_seq"`
}

// TraceEvent is one ordered step of the solve execution. Seq equals the
// event's position in Trace.Events.
type TraceEvent struct {
	Seq  int       `json:"seq"`
	Kind EventKind `json:"kind"`
	Node int       `json:"node"`

	// Move is set only for EventMove events.
	Move *Move `json:"move,omitempty"`
}

// Trace is the full (tree, event stream) bundle produced by one solve
// invocation. It is created once, never mutated afterwards, and is
// randomly indexable so playback can pause, resume and seek without
// recomputation.
type Trace struct {
	Disks int `json:"disks"`
	From  Peg `json:"from"`
	Aux   Peg `json:"aux"`
	To    Peg `json:"to"`

	Nodes  []CallNode   `json:"nodes"`
	Events []TraceEvent `json:"events"`
}

// Root returns the root call node, or nil for an empty trace.
func (t *Trace) Root() *CallNode {
	if len(t.Nodes) == 0 {
		return nil
	}
	return &t.Nodes[0]
}

// Moves filters the event stream down to the emitted move sequence,
// in execution order.
func (t *Trace) Moves() []Move {
	moves := make([]Move, 0, (1<<t.Disks)-1)
	for _, ev := range t.Events {
		if ev.Kind == EventMove && ev.Move != nil {
			moves = append(moves, *ev.Move)
		}
	}
	return moves
}

// PhaseAt returns the phase of node after the events with Seq <= eventIndex
// have been applied. An eventIndex < 0 means nothing has run yet.
// This replaces in-place phase mutation: coloring a replayed tree is a pure
// function of the immutable trace and the playback cursor.
func (t *Trace) PhaseAt(node, eventIndex int) Phase {
	if node < 0 || node >= len(t.Nodes) {
		return PhasePending
	}
	n := t.Nodes[node]
	switch {
	case eventIndex < n.EnterSeq:
		return PhasePending
	case eventIndex < n.LeaveSeq:
		return PhaseActive
	default:
		return PhaseCompleted
	}
}

// ActiveNodeAt returns the ID of the deepest call active after eventIndex
// events, or -1 when no call is active (before the run or after it ends).
func (t *Trace) ActiveNodeAt(eventIndex int) int {
	active := -1
	for _, n := range t.Nodes {
		if n.EnterSeq <= eventIndex && eventIndex < n.LeaveSeq {
			if active == -1 || n.Depth > t.Nodes[active].Depth {
				active = n.ID
			}
		}
	}
	return active
}
