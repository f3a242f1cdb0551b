package arraysolver_test

import (
	"strconv"

	"github.com/katalvlaran/retrosolve/puzzle"
)

// densePuzzle is a small puzzle fixture whose states hash directly to
// dense array slots, for exercising arraysolver against known graph
// shapes without a real puzzle package.
type densePuzzle struct {
	initial    uint64
	size       uint64
	primitives map[uint64]bool
	edges      map[uint64][]uint64
}

func (p *densePuzzle) InitialState() puzzle.State { return denseState(p.initial) }

func (p *densePuzzle) IsPrimitive(s puzzle.State) bool {
	return p.primitives[uint64(s.(denseState))]
}

func (p *densePuzzle) Moves(s puzzle.State) []puzzle.Move {
	nexts := p.edges[uint64(s.(denseState))]
	moves := make([]puzzle.Move, 0, len(nexts))
	for _, next := range nexts {
		moves = append(moves, denseMove(next))
	}
	return moves
}

func (p *densePuzzle) DoMove(s puzzle.State, m puzzle.Move) (puzzle.State, bool) {
	return denseState(m.(denseMove)), true
}

func (p *densePuzzle) HashSize() uint64 { return p.size }

type denseState uint64

func (s denseState) Hash() uint64 { return uint64(s) }

func (s denseState) Equal(other puzzle.State) bool {
	o, ok := other.(denseState)
	return ok && s == o
}

type denseMove uint64

func (m denseMove) String() string {
	return "to-" + strconv.FormatUint(uint64(m), 10)
}
