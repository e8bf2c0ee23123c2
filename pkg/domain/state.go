package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Disk counts accepted by the core. The playable range exposed to users
// (3-10) is narrower and enforced by the config layer, not here.
const (
	MinDisks = 1
	MaxDisks = 10
)

// State is the complete assignment of all disks to pegs at one instant.
// Each peg holds disk ranks ordered bottom-to-top, strictly decreasing
// (largest at the bottom). A rank of 1 is the smallest disk.
//
// State is an immutable value: Apply returns a new State and never touches
// its receiver. The zero State is an empty board with no disks.
type State struct {
	pegs  [PegCount][]int
	disks int
}

// InitialState returns a board with all n disks stacked on src.
func InitialState(n int, src Peg) (State, error) {
	if n < MinDisks || n > MaxDisks {
		return State{}, fmt.Errorf("%w: disk count %d outside [%d,%d]", ErrInvalidConfiguration, n, MinDisks, MaxDisks)
	}
	if !src.Valid() {
		return State{}, fmt.Errorf("%w: peg %d out of range", ErrInvalidConfiguration, int(src))
	}
	var s State
	s.disks = n
	stack := make([]int, n)
	for i := range stack {
		stack[i] = n - i
	}
	s.pegs[src] = stack
	return s, nil
}

// Disks returns the total number of disks on the board.
func (s State) Disks() int {
	return s.disks
}

// Peg returns a copy of the stack on p, bottom-to-top.
func (s State) Peg(p Peg) []int {
	if !p.Valid() {
		return nil
	}
	out := make([]int, len(s.pegs[p]))
	copy(out, s.pegs[p])
	return out
}

// Top returns the rank of the top disk on p, or false if the peg is empty.
func (s State) Top(p Peg) (int, bool) {
	if !p.Valid() || len(s.pegs[p]) == 0 {
		return 0, false
	}
	return s.pegs[p][len(s.pegs[p])-1], true
}

// IsLegal reports whether m may be applied to s. It never errors: a move
// from an empty peg, onto a smaller disk, off the board, or with
// from == to is simply not legal.
func (s State) IsLegal(m Move) bool {
	if !m.From.Valid() || !m.To.Valid() || m.From == m.To {
		return false
	}
	top, ok := s.Top(m.From)
	if !ok {
		return false
	}
	if dst, ok := s.Top(m.To); ok && dst <= top {
		return false
	}
	return true
}

// Apply returns a new State with the top disk of m.From relocated to m.To.
// The receiver is left untouched. Returns ErrIllegalMove if IsLegal is false.
func (s State) Apply(m Move) (State, error) {
	if !s.IsLegal(m) {
		return State{}, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}

	next := s
	from := s.pegs[m.From]
	next.pegs[m.From] = from[: len(from)-1 : len(from)-1]

	to := make([]int, len(s.pegs[m.To]), len(s.pegs[m.To])+1)
	copy(to, s.pegs[m.To])
	next.pegs[m.To] = append(to, from[len(from)-1])
	return next, nil
}

// IsSolved reports whether every disk sits on target. Given the stacking
// invariant, all disks on one peg implies correct order.
func (s State) IsSolved(target Peg) bool {
	return target.Valid() && len(s.pegs[target]) == s.disks && s.disks > 0
}

// Equal reports structural equality of two boards.
func (s State) Equal(o State) bool {
	if s.disks != o.disks {
		return false
	}
	for p := PegA; p < PegCount; p++ {
		if len(s.pegs[p]) != len(o.pegs[p]) {
			return false
		}
		for i, d := range s.pegs[p] {
			if o.pegs[p][i] != d {
				return false
			}
		}
	}
	return true
}

func (s State) String() string {
	var sb strings.Builder
	for p := PegA; p < PegCount; p++ {
		if p > PegA {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s:%v", p, s.pegs[p])
	}
	return sb.String()
}

type stateJSON struct {
	Pegs [PegCount][]int `json:"pegs"`
}

// MarshalJSON encodes the board as {"pegs": [[...],[...],[...]]},
// bottom-to-top per peg.
func (s State) MarshalJSON() ([]byte, error) {
	var out stateJSON
	for p := PegA; p < PegCount; p++ {
		out.Pegs[p] = s.Peg(p)
		if out.Pegs[p] == nil {
			out.Pegs[p] = []int{}
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a board and re-validates the stacking invariant,
// so a hand-crafted payload can never produce an illegal State.
func (s *State) UnmarshalJSON(data []byte) error {
	var in stateJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	total := 0
	seen := make(map[int]bool)
	for p := PegA; p < PegCount; p++ {
		for i, d := range in.Pegs[p] {
			if d < 1 || seen[d] {
				return fmt.Errorf("%w: duplicate or non-positive disk rank %d", ErrInvalidConfiguration, d)
			}
			if i > 0 && in.Pegs[p][i-1] <= d {
				return fmt.Errorf("%w: peg %s not strictly decreasing", ErrInvalidConfiguration, p)
			}
			seen[d] = true
			total++
		}
	}
	// Ranks must be exactly 1..total.
	for d := 1; d <= total; d++ {
		if !seen[d] {
			return fmt.Errorf("%w: disk %d missing from board", ErrInvalidConfiguration, d)
		}
	}

	var next State
	next.disks = total
	for p := PegA; p < PegCount; p++ {
		next.pegs[p] = append([]int(nil), in.Pegs[p]...)
	}
	*s = next
	return nil
}
