package hanoi

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aretw0/hanoi/internal/playback"
	"github.com/aretw0/hanoi/pkg/domain"
)

// Runner replays a trace against provided IO. This keeps the playback loop
// testable and lets different frontends (plain CLI, TUI) plug in their own
// board rendering.
type Runner struct {
	Output   io.Writer
	Delay    time.Duration
	Headless bool

	// Renderer turns a board into text. Nil means boards are skipped and
	// only the move list is printed.
	Renderer BoardRenderer

	// Hooks are chained after the Runner's own output hooks.
	Hooks domain.PlaybackHooks
}

// BoardRenderer is a function that renders the board for display.
// This allows TUI rendering (colored bars) without coupling the core package.
type BoardRenderer func(domain.State) string

// NewRunner creates a new Runner with default Stdout and a 500ms step.
func NewRunner() *Runner {
	return &Runner{
		Delay: 500 * time.Millisecond,
	}
}

// Run replays the trace to completion, printing each move (and the board,
// when a renderer is set) as the corresponding event is applied.
// In headless mode the delay is skipped and events are drained immediately.
func (r *Runner) Run(ctx context.Context, trace *domain.Trace) error {
	out := r.Output
	if out == nil {
		out = os.Stdout
	}

	step := 0
	hooks := domain.PlaybackHooks{
		OnCallEnter: r.Hooks.OnCallEnter,
		OnCallLeave: r.Hooks.OnCallLeave,
		OnMove: func(ctx context.Context, e *domain.MoveEvent) {
			step++
			fmt.Fprintf(out, "%4d. %s\n", step, e.Move)
			if r.Renderer != nil {
				fmt.Fprintln(out, r.Renderer(e.Board))
			}
			if r.Hooks.OnMove != nil {
				r.Hooks.OnMove(ctx, e)
			}
		},
	}

	opts := []playback.Option{playback.WithHooks(hooks)}
	if !r.Headless {
		opts = append(opts, playback.WithStepDelay(r.Delay))
	}

	coord, err := playback.New(trace, opts...)
	if err != nil {
		return err
	}

	if r.Headless {
		for {
			more, err := coord.Step(ctx)
			if err != nil {
				return err
			}
			if !more {
				return nil
			}
		}
	}
	return coord.Run(ctx)
}
