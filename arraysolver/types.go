package arraysolver

import (
	"github.com/katalvlaran/retrosolve/puzzle"
)

// Unseen marks a slot in the distance array that BFS has not yet
// reached, widened here (see doc.go) from a signed byte to int32.
const Unseen int32 = -1

// noCopy helps `go vet`'s copylocks check catch accidental value copies
// of an ArraySolver after Solve has populated its distance array.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// ArraySolver computes depth-from-initial-state over a puzzle's
// reachable-state graph via a single dense forward BFS. A ArraySolver
// must not be copied after construction; pass it by pointer.
type ArraySolver struct {
	_ noCopy

	puzzle puzzle.Puzzle
	opts   Options

	solved  bool
	data    []int32 // dense distance array, length HashSize()
	depth   int32   // maximum level assigned during Solve
	initial puzzle.State
}

// New constructs an ArraySolver for p, applying any number of
// functional Options, and allocating a dense distance array of length
// p.HashSize() up front. It rejects puzzles with HashSize() == 0 —
// those must use graphsolver instead.
func New(p puzzle.Puzzle, opts ...Option) (*ArraySolver, error) {
	if p == nil {
		return nil, ErrNilPuzzle
	}
	size := p.HashSize()
	if size == 0 {
		return nil, ErrUnboundedHashSize
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	data := make([]int32, size)
	for i := range data {
		data[i] = Unseen
	}
	return &ArraySolver{
		puzzle: p,
		opts:   o,
		data:   data,
	}, nil
}
