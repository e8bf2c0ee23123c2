package hanoi_test

import (
	"fmt"

	hanoi "github.com/aretw0/hanoi"
)

func ExampleSolve() {
	moves, _ := hanoi.Solve(2)
	for _, m := range moves {
		fmt.Println(m)
	}
	// Output:
	// A->B
	// A->C
	// B->C
}

func ExampleTrace() {
	trace, _ := hanoi.Trace(3)
	fmt.Println("calls:", len(trace.Nodes))
	fmt.Println("moves:", len(trace.Moves()))
	fmt.Println("root:", trace.Root().Disks, "disks")
	// Output:
	// calls: 7
	// moves: 7
	// root: 3 disks
}

func ExampleNewGame() {
	game, _ := hanoi.NewGame(1)
	_ = game.Move(hanoi.PegA, hanoi.PegC)
	fmt.Println("solved:", game.Solved())
	// Output:
	// solved: true
}
