package domain

import (
	"fmt"
	"strings"
)

// Peg identifies one of the three positions disks can occupy.
type Peg int

const (
	PegA Peg = iota
	PegB
	PegC
)

// PegCount is the fixed number of pegs on the board.
const PegCount = 3

// Valid reports whether p is one of the three board pegs.
func (p Peg) Valid() bool {
	return p >= PegA && p < PegCount
}

func (p Peg) String() string {
	switch p {
	case PegA:
		return "A"
	case PegB:
		return "B"
	case PegC:
		return "C"
	}
	return fmt.Sprintf("Peg(%d)", int(p))
}

// ParsePeg accepts a peg label ("A", "B", "C", case-insensitive) or a
// numeric index ("0", "1", "2").
func ParsePeg(s string) (Peg, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A", "0":
		return PegA, nil
	case "B", "1":
		return PegB, nil
	case "C", "2":
		return PegC, nil
	}
	return 0, fmt.Errorf("%w: unknown peg %q", ErrInvalidConfiguration, s)
}

// ValidateRoles checks that the three peg roles passed to the solver are
// valid board pegs and pairwise distinct.
func ValidateRoles(from, aux, to Peg) error {
	for _, p := range []Peg{from, aux, to} {
		if !p.Valid() {
			return fmt.Errorf("%w: peg %d out of range", ErrInvalidConfiguration, int(p))
		}
	}
	if from == aux || from == to || aux == to {
		return fmt.Errorf("%w: peg roles must be distinct (from=%s aux=%s to=%s)", ErrInvalidConfiguration, from, aux, to)
	}
	return nil
}
