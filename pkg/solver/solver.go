package solver

import (
	"fmt"
	"iter"

	"github.com/aretw0/hanoi/pkg/domain"
)

// Validate checks the solver arguments before any computation starts.
func Validate(n int, from, aux, to domain.Peg) error {
	if n < domain.MinDisks || n > domain.MaxDisks {
		return fmt.Errorf("%w: disk count %d outside [%d,%d]", domain.ErrInvalidConfiguration, n, domain.MinDisks, domain.MaxDisks)
	}
	return domain.ValidateRoles(from, aux, to)
}

// Sequence returns the move sequence for n disks as a lazy, restartable
// iterator. Iterating twice replays the identical sequence; arguments are
// not validated here, so callers outside this package should prefer Solve.
func Sequence(n int, from, aux, to domain.Peg) iter.Seq[domain.Move] {
	return func(yield func(domain.Move) bool) {
		emit(n, from, aux, to, yield)
	}
}

// emit walks the classic recursion: clear n-1 disks onto aux (using to as
// the spare), move the largest disk, then bring the n-1 stack home (using
// from as the spare). The role rotation between the two sub-calls is the
// whole correctness argument.
func emit(n int, from, aux, to domain.Peg, yield func(domain.Move) bool) bool {
	if n == 1 {
		return yield(domain.Move{From: from, To: to})
	}
	if !emit(n-1, from, to, aux, yield) {
		return false
	}
	if !yield(domain.Move{From: from, To: to}) {
		return false
	}
	return emit(n-1, aux, from, to, yield)
}

// Solve returns the full ordered move sequence solving n disks from `from`
// to `to`. The result always holds exactly 2^n - 1 moves.
func Solve(n int, from, aux, to domain.Peg) ([]domain.Move, error) {
	if err := Validate(n, from, aux, to); err != nil {
		return nil, err
	}
	moves := make([]domain.Move, 0, (1<<n)-1)
	for m := range Sequence(n, from, aux, to) {
		moves = append(moves, m)
	}
	return moves, nil
}
