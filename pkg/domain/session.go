package domain

import "fmt"

// SessionMode distinguishes the two mutually exclusive ways to drive a board.
type SessionMode string

const (
	// ModeAuto replays the pre-computed trace one event at a time.
	ModeAuto SessionMode = "auto"
	// ModeManual lets the player apply moves directly; no trace is attached.
	ModeManual SessionMode = "manual"
)

// Session is the persistable snapshot of one playing session: the puzzle
// parameters, the board, and (for auto mode) the playback cursor into the
// trace's event stream. The trace itself is never persisted; it is a pure
// function of the parameters and is recomputed on demand.
type Session struct {
	Disks int `json:"disks"`
	From  Peg `json:"from"`
	Aux   Peg `json:"aux"`
	To    Peg `json:"to"`

	Mode SessionMode `json:"mode"`

	// Cursor is the number of trace events already applied (auto mode).
	Cursor int `json:"cursor"`

	// MoveCount is the number of moves applied so far (manual mode).
	MoveCount int `json:"move_count"`

	Board State `json:"board"`
}

// NewSession starts a fresh session with all disks on from.
func NewSession(disks int, from, aux, to Peg, mode SessionMode) (*Session, error) {
	if err := ValidateRoles(from, aux, to); err != nil {
		return nil, err
	}
	if mode != ModeAuto && mode != ModeManual {
		return nil, fmt.Errorf("%w: unknown session mode %q", ErrInvalidConfiguration, mode)
	}
	board, err := InitialState(disks, from)
	if err != nil {
		return nil, err
	}
	return &Session{
		Disks: disks,
		From:  from,
		Aux:   aux,
		To:    to,
		Mode:  mode,
		Board: board,
	}, nil
}

// Clone returns an independent copy of the session.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}
