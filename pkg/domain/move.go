package domain

import "fmt"

// Move is the transfer of the top disk of one peg to another.
type Move struct {
	From Peg `json:"from" yaml:"from"`
	To   Peg `json:"to" yaml:"to"`
}

func (m Move) String() string {
	return fmt.Sprintf("%s->%s", m.From, m.To)
}
