/*
Package solver implements the recursive Tower of Hanoi move generator and
its recursion tracer.

Solve produces the optimal 2^n - 1 move sequence. Trace runs the identical
recursion once and additionally records the call tree and the ordered event
stream (call entered, move emitted, call left) that drives visualization.
Both are pure: the same arguments always reproduce the same output, and a
solve for the maximum disk count is cheap enough to recompute on demand
instead of persisting.
*/
package solver
