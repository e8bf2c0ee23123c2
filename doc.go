/*
Package hanoi is a Tower of Hanoi engine built around a recursion tracer:
it runs the classic divide-and-conquer solver and, as a side channel, emits
a structured, replayable trace of every recursive call synchronized with
the move sequence it produces.

The core is pure computation. One solve invocation returns an immutable
(tree, event stream) bundle that front-ends replay at their own pace:
pausing, seeking and coloring the call tree are index lookups into the
bundle, never re-runs of the solver. Rendering, timers and transport are
adapters around this core (CLI, HTTP, Redis-backed sessions).

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/hanoi"
	)

	func main() {
		trace, err := hanoi.Trace(3)
		if err != nil {
			log.Fatal(err)
		}

		for _, m := range trace.Moves() {
			fmt.Println(m) // A->C, A->B, C->B, ...
		}
	}

For interactive (non-auto-solve) play, NewGame exposes the board with the
domain rules as the sole mutation gate:

	game, _ := hanoi.NewGame(3)
	if err := game.Move(hanoi.PegA, hanoi.PegC); err != nil {
		// illegal move; the board is unchanged
	}
*/
package hanoi
