package lightsout

import (
	"fmt"

	"github.com/katalvlaran/retrosolve/puzzle"
)

const (
	DefaultRows = 3
	DefaultCols = 3

	// MaxCells is the largest grid this puzzle can represent in a
	// single uint64 state.
	MaxCells = 64
)

// State is an r*c-bit grid: bit (i*cols+j) is on iff light (i,j) is lit.
type State uint64

// Hash returns the grid verbatim.
func (s State) Hash() uint64 { return uint64(s) }

// Equal reports whether other is the same grid.
func (s State) Equal(other puzzle.State) bool {
	o, ok := other.(State)
	return ok && s == o
}

// Move toggles cell (I, J) and its orthogonal neighbors.
type Move struct {
	I, J uint64
}

// String renders the move as "(i, j)", matching the original
// LightsOutMove::toString.
func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.I, m.J)
}

// Puzzle is a Lights Out grid of fixed dimensions.
type Puzzle struct {
	rows, cols uint64
}

// New constructs a Lights Out puzzle for an r-by-c grid. A zero
// dimension, or a grid whose total cell count exceeds MaxCells, falls
// back to the 3x3 default rather than returning an error, matching the
// original LightsOut constructor.
func New(rows, cols uint64) *Puzzle {
	if rows == 0 || cols == 0 || rows > MaxCells || cols > MaxCells || rows*cols > MaxCells {
		rows, cols = DefaultRows, DefaultCols
	}
	return &Puzzle{rows: rows, cols: cols}
}

// InitialState returns the all-off grid.
func (*Puzzle) InitialState() puzzle.State { return State(0) }

// IsPrimitive reports whether every light is off.
func (*Puzzle) IsPrimitive(s puzzle.State) bool {
	return s.(State).Hash() == 0
}

// Moves returns one move per cell, in row-major order, independent of s.
func (p *Puzzle) Moves(puzzle.State) []puzzle.Move {
	moves := make([]puzzle.Move, 0, p.rows*p.cols)
	for i := uint64(0); i < p.rows; i++ {
		for j := uint64(0); j < p.cols; j++ {
			moves = append(moves, Move{I: i, J: j})
		}
	}
	return moves
}

// DoMove toggles the targeted cell and its orthogonal neighbors. It
// returns ok=false if the move's coordinates fall outside the grid.
func (p *Puzzle) DoMove(s puzzle.State, move puzzle.Move) (puzzle.State, bool) {
	m := move.(Move)
	if m.I >= p.rows || m.J >= p.cols {
		return nil, false
	}
	pos := uint64(s.(State))
	pos ^= 1 << (m.I*p.cols + m.J)
	if m.J > 0 {
		pos ^= 1 << (m.I*p.cols + m.J - 1)
	}
	if m.J < p.cols-1 {
		pos ^= 1 << (m.I*p.cols + m.J + 1)
	}
	if m.I > 0 {
		pos ^= 1 << ((m.I-1)*p.cols + m.J)
	}
	if m.I < p.rows-1 {
		pos ^= 1 << ((m.I+1)*p.cols + m.J)
	}
	return State(pos), true
}

// HashSize returns 2^(rows*cols), the total number of grid configurations.
// For a 64-cell grid that count does not fit in a uint64: the shift
// yields 0, which reports the state space as unbounded.
func (p *Puzzle) HashSize() uint64 {
	return 1 << (p.rows * p.cols)
}
