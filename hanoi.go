package hanoi

import (
	"fmt"

	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/aretw0/hanoi/pkg/solver"
)

// Version is the library version, surfaced by the CLI.
var Version = "0.3.0"

// Re-exported peg identifiers for embedding hosts.
const (
	PegA = domain.PegA
	PegB = domain.PegB
	PegC = domain.PegC
)

// Solve returns the optimal move sequence for n disks with the default peg
// roles (A source, B auxiliary, C destination).
func Solve(n int) ([]domain.Move, error) {
	return solver.Solve(n, domain.PegA, domain.PegB, domain.PegC)
}

// Trace returns the full (tree, event stream) bundle for n disks with the
// default peg roles.
func Trace(n int) (*domain.Trace, error) {
	return solver.Trace(n, domain.PegA, domain.PegB, domain.PegC)
}

// Game is the manual-play facade: it owns a board and exposes the domain
// rules as the only way to change it. Auto-solve and manual play are
// mutually exclusive sessions; a Game carries no trace.
type Game struct {
	board  domain.State
	target domain.Peg
	moves  int
}

// GameOption configures a new Game.
type GameOption func(*gameConfig)

type gameConfig struct {
	source domain.Peg
	target domain.Peg
}

// WithPegs overrides the source and target pegs.
func WithPegs(source, target domain.Peg) GameOption {
	return func(c *gameConfig) {
		c.source = source
		c.target = target
	}
}

// NewGame starts an interactive game with n disks on the source peg.
func NewGame(n int, opts ...GameOption) (*Game, error) {
	cfg := gameConfig{source: domain.PegA, target: domain.PegC}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.source.Valid() || !cfg.target.Valid() || cfg.source == cfg.target {
		return nil, fmt.Errorf("%w: source and target pegs must be distinct board pegs", domain.ErrInvalidConfiguration)
	}

	board, err := domain.InitialState(n, cfg.source)
	if err != nil {
		return nil, err
	}
	return &Game{board: board, target: cfg.target}, nil
}

// Board returns the current immutable board state.
func (g *Game) Board() domain.State {
	return g.board
}

// IsLegal reports whether moving the top disk from one peg to another is
// allowed right now.
func (g *Game) IsLegal(from, to domain.Peg) bool {
	return g.board.IsLegal(domain.Move{From: from, To: to})
}

// Move applies one manual move. On an illegal move the board is unchanged
// and ErrIllegalMove is returned.
func (g *Game) Move(from, to domain.Peg) error {
	next, err := g.board.Apply(domain.Move{From: from, To: to})
	if err != nil {
		return err
	}
	g.board = next
	g.moves++
	return nil
}

// MoveCount returns the number of moves applied so far.
func (g *Game) MoveCount() int {
	return g.moves
}

// Solved reports whether every disk sits on the target peg.
func (g *Game) Solved() bool {
	return g.board.IsSolved(g.target)
}
