/*
Package domain contains the core domain models and business logic for the Hanoi engine.

It defines the fundamental entities of the puzzle, such as Pegs, Moves,
the immutable board State, and the recursion Trace (CallNodes plus TraceEvents).
This package is kept pure and free of external dependencies
like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Peg: One of the three positions disks can occupy (A, B, C).
  - Move: Transfer of the top disk of one peg to another.
  - State: The complete assignment of all disks to pegs at one instant.
  - CallNode: One recursive invocation of the solving algorithm, tracked for visualization.
  - TraceEvent: One ordered step of the solve execution (call entered/left, or move emitted).
  - Trace: The full (tree, event stream) bundle produced by one solve invocation.
*/
package domain
