// Package playback advances a pre-computed trace one event at a time.
//
// The solve itself is synchronous and instantaneous; playback is the
// time-driven part. Because the trace is an immutable, randomly indexable
// value, pausing is just "stop stepping" and seeking is a cheap replay of
// the move prefix, never a re-run of the solver.
package playback

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/hanoi/internal/logging"
	"github.com/aretw0/hanoi/pkg/domain"
)

// Step interval bounds, in line with the product's speed slider.
const (
	MinStepDelay = 100 * time.Millisecond
	MaxStepDelay = 2 * time.Second
)

// Coordinator steps through a trace's event stream, threading the immutable
// board state through move events and firing hooks for observers.
// Safe for concurrent use.
type Coordinator struct {
	trace *domain.Trace
	delay time.Duration
	hooks domain.PlaybackHooks
	log   *slog.Logger

	mu     sync.Mutex
	board  domain.State
	cursor int // number of events already applied
	paused bool
}

// Option configures a Coordinator.
type Option func(*Coordinator) error

// WithStepDelay sets the interval between automatic steps.
func WithStepDelay(d time.Duration) Option {
	return func(c *Coordinator) error {
		if d < MinStepDelay || d > MaxStepDelay {
			return fmt.Errorf("%w: step delay %s outside [%s,%s]", domain.ErrInvalidConfiguration, d, MinStepDelay, MaxStepDelay)
		}
		c.delay = d
		return nil
	}
}

// WithHooks registers playback observability hooks.
func WithHooks(hooks domain.PlaybackHooks) Option {
	return func(c *Coordinator) error {
		c.hooks = hooks
		return nil
	}
}

// WithLogger sets a structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Coordinator) error {
		c.log = log
		return nil
	}
}

// New creates a coordinator positioned before the first event, with the
// initial board derived from the trace parameters.
func New(trace *domain.Trace, opts ...Option) (*Coordinator, error) {
	board, err := domain.InitialState(trace.Disks, trace.From)
	if err != nil {
		return nil, err
	}
	c := &Coordinator{
		trace: trace,
		delay: 500 * time.Millisecond,
		log:   logging.NewNop(),
		board: board,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Cursor returns the number of events already applied.
func (c *Coordinator) Cursor() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor
}

// Board returns the current board state.
func (c *Coordinator) Board() domain.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.board
}

// Done reports whether every event has been applied.
func (c *Coordinator) Done() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor >= len(c.trace.Events)
}

// Pause stops automatic stepping at the current event index.
func (c *Coordinator) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = true
}

// Resume re-enables automatic stepping. No recomputation happens: the
// cursor simply picks up where it stopped.
func (c *Coordinator) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = false
}

// Step applies the next event and fires the matching hook. It returns
// false once the stream is exhausted.
func (c *Coordinator) Step(ctx context.Context) (bool, error) {
	c.mu.Lock()
	if c.cursor >= len(c.trace.Events) {
		c.mu.Unlock()
		return false, nil
	}
	ev := c.trace.Events[c.cursor]

	if ev.Kind == domain.EventMove && ev.Move != nil {
		next, err := c.board.Apply(*ev.Move)
		if err != nil {
			// The trace only emits legal moves, so this indicates a
			// corrupted bundle rather than a user error.
			c.mu.Unlock()
			return false, fmt.Errorf("replaying event %d: %w", ev.Seq, err)
		}
		c.board = next
	}
	c.cursor++
	board := c.board
	c.mu.Unlock()

	c.fire(ctx, ev, board)
	return true, nil
}

// Seek repositions playback so that exactly eventIndex events are applied,
// rebuilding the board from the trace's move prefix.
func (c *Coordinator) Seek(eventIndex int) error {
	if eventIndex < 0 || eventIndex > len(c.trace.Events) {
		return fmt.Errorf("%w: event index %d outside [0,%d]", domain.ErrInvalidConfiguration, eventIndex, len(c.trace.Events))
	}
	board, err := domain.InitialState(c.trace.Disks, c.trace.From)
	if err != nil {
		return err
	}
	for _, ev := range c.trace.Events[:eventIndex] {
		if ev.Kind != domain.EventMove || ev.Move == nil {
			continue
		}
		board, err = board.Apply(*ev.Move)
		if err != nil {
			return fmt.Errorf("replaying event %d: %w", ev.Seq, err)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.board = board
	c.cursor = eventIndex
	return nil
}

// Run steps through the remaining events on the configured interval until
// the stream ends or ctx is cancelled. While paused, ticks are skipped.
func (c *Coordinator) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.delay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.mu.Lock()
			paused := c.paused
			c.mu.Unlock()
			if paused {
				continue
			}

			more, err := c.Step(ctx)
			if err != nil {
				return err
			}
			if !more {
				return nil
			}
		}
	}
}

func (c *Coordinator) fire(ctx context.Context, ev domain.TraceEvent, board domain.State) {
	base := domain.EventBase{Timestamp: time.Now(), Seq: ev.Seq}
	node := c.trace.Nodes[ev.Node]

	switch ev.Kind {
	case domain.EventCallEnter:
		c.log.Debug("call enter", "node", node.ID, "disks", node.Disks)
		if c.hooks.OnCallEnter != nil {
			c.hooks.OnCallEnter(ctx, &domain.CallEvent{EventBase: base, NodeID: node.ID, Disks: node.Disks, From: node.From, To: node.To})
		}
	case domain.EventCallLeave:
		c.log.Debug("call leave", "node", node.ID, "disks", node.Disks)
		if c.hooks.OnCallLeave != nil {
			c.hooks.OnCallLeave(ctx, &domain.CallEvent{EventBase: base, NodeID: node.ID, Disks: node.Disks, From: node.From, To: node.To})
		}
	case domain.EventMove:
		c.log.Debug("move", "node", node.ID, "move", ev.Move.String())
		if c.hooks.OnMove != nil {
			c.hooks.OnMove(ctx, &domain.MoveEvent{EventBase: base, NodeID: node.ID, Move: *ev.Move, Board: board})
		}
	}
}
