package graphsolver_test

import (
	"hash/fnv"

	"github.com/katalvlaran/retrosolve/puzzle"
)

// testPuzzle is a small puzzle fixture defined directly by its move
// edges, for exercising graphsolver's algorithm on known graph shapes
// without depending on a real puzzle package.
type testPuzzle struct {
	initial    string
	primitives map[string]bool
	edges      map[string][]string
}

func (p *testPuzzle) InitialState() puzzle.State { return testState(p.initial) }

func (p *testPuzzle) IsPrimitive(s puzzle.State) bool {
	return p.primitives[string(s.(testState))]
}

func (p *testPuzzle) Moves(s puzzle.State) []puzzle.Move {
	nexts := p.edges[string(s.(testState))]
	moves := make([]puzzle.Move, 0, len(nexts))
	for _, next := range nexts {
		moves = append(moves, testMove(next))
	}
	return moves
}

func (p *testPuzzle) DoMove(s puzzle.State, m puzzle.Move) (puzzle.State, bool) {
	return testState(m.(testMove)), true
}

func (*testPuzzle) HashSize() uint64 { return 0 }

type testState string

func (s testState) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

func (s testState) Equal(other puzzle.State) bool {
	o, ok := other.(testState)
	return ok && s == o
}

type testMove string

func (m testMove) String() string { return string(m) }
