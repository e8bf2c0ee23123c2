package solver

import (
	"github.com/aretw0/hanoi/pkg/domain"
)

// Trace runs the same recursion as Solve and records the call tree plus the
// ordered event stream. Exactly one CallNode is created per recursive
// invocation, so the node count follows C(1)=1, C(k)=2*C(k-1)+1.
// Filtering the events down to moves reproduces Solve's output exactly.
func Trace(n int, from, aux, to domain.Peg) (*domain.Trace, error) {
	if err := Validate(n, from, aux, to); err != nil {
		return nil, err
	}

	b := &traceBuilder{
		nodes:  make([]domain.CallNode, 0, callCount(n)),
		events: make([]domain.TraceEvent, 0, 2*callCount(n)+(1<<n)-1),
	}
	b.walk(n, from, aux, to, -1, 0)

	return &domain.Trace{
		Disks:  n,
		From:   from,
		Aux:    aux,
		To:     to,
		Nodes:  b.nodes,
		Events: b.events,
	}, nil
}

// callCount is the number of recursive invocations for n disks: 2^n - 1.
func callCount(n int) int {
	return (1 << n) - 1
}

type traceBuilder struct {
	nodes  []domain.CallNode
	events []domain.TraceEvent
}

func (b *traceBuilder) record(kind domain.EventKind, node int, move *domain.Move) {
	b.events = append(b.events, domain.TraceEvent{
		Seq:  len(b.events),
		Kind: kind,
		Node: node,
		Move: move,
	})
}

// walk creates the node for this invocation on entry and seals it on exit,
// after both sub-calls (if any) completed and the node's own move was
// emitted. It mirrors emit exactly; only the recording is added.
func (b *traceBuilder) walk(n int, from, aux, to domain.Peg, parent, depth int) {
	id := len(b.nodes)
	b.nodes = append(b.nodes, domain.CallNode{
		ID:       id,
		Disks:    n,
		From:     from,
		Aux:      aux,
		To:       to,
		Parent:   parent,
		Depth:    depth,
		EnterSeq: len(b.events),
	})
	if parent >= 0 {
		b.nodes[parent].Children = append(b.nodes[parent].Children, id)
	}
	b.record(domain.EventCallEnter, id, nil)

	if n == 1 {
		b.record(domain.EventMove, id, &domain.Move{From: from, To: to})
	} else {
		b.walk(n-1, from, to, aux, id, depth+1)
		b.record(domain.EventMove, id, &domain.Move{From: from, To: to})
		b.walk(n-1, aux, from, to, id, depth+1)
	}

	b.nodes[id].LeaveSeq = len(b.events)
	b.record(domain.EventCallLeave, id, nil)
}
