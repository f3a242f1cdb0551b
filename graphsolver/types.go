package graphsolver

import (
	"math"
	"sync"

	"github.com/katalvlaran/retrosolve/puzzle"
)

// Unreachable marks a reachable state from which no primitive can be
// reached — the "+inf" sentinel of the remoteness map.
const Unreachable = math.MaxInt32

// noCopy helps `go vet`'s copylocks check catch accidental value copies
// of a GraphSolver after Solve has populated its internal maps — Go
// slices/maps alias on copy, so a by-value copy here would silently
// share (and race on) solver state rather than produce an independent
// solver.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// GraphSolver computes remoteness over a puzzle's reachable-state graph
// via forward BFS plus one parallel backward BFS per primitive. See the
// package doc for the two-phase algorithm. A GraphSolver must not be
// copied after construction; pass it by pointer.
type GraphSolver struct {
	_ noCopy

	puzzle puzzle.Puzzle
	opts   Options

	mu         sync.Mutex // protects rmt during Phase B's concurrent relax
	solved     bool
	rmt        map[uint64]int          // hash -> remoteness, Unreachable if no primitive reachable
	states     map[uint64]puzzle.State // canonical arena: hash -> state body
	reverse    map[uint64][]uint64     // child hash -> parent hashes (transient, discarded after Solve)
	primitives []uint64                // hashes found primitive during Phase A

	initial    puzzle.State
	initialRmt int
}

// New constructs a GraphSolver for puzzle, applying any number of
// functional Options. The solver is not yet solved; call Solve to
// populate remoteness data.
func New(p puzzle.Puzzle, opts ...Option) (*GraphSolver, error) {
	if p == nil {
		return nil, ErrNilPuzzle
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &GraphSolver{
		puzzle: p,
		opts:   o,
		rmt:    make(map[uint64]int),
		states: make(map[uint64]puzzle.State),
	}, nil
}
