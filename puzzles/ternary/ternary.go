package ternary

import (
	"github.com/katalvlaran/retrosolve/puzzle"
)

// InitPos is both the puzzle's initial state and its only primitive —
// ternary.cpp's INIT_POS constant, 0b10010001100.
const InitPos uint64 = 0b10010001100

// State is a uint64-encoded Ternary position: three base-3 digits, each
// stored in a 2-bit field at nibble-aligned offsets 0, 4, 8.
type State uint64

// Hash returns the position verbatim — it is already a dense 64-bit
// fingerprint.
func (s State) Hash() uint64 { return uint64(s) }

// Equal reports whether other is the same Ternary position.
func (s State) Equal(other puzzle.State) bool {
	o, ok := other.(State)
	return ok && s == o
}

// Move is either ROTATE or SPIN; it carries no parameters.
type Move struct {
	rotate bool
}

// Rotate is the cyclic nibble-shift move.
var Rotate = Move{rotate: true}

// Spin is the increment-each-digit-mod-3 move.
var Spin = Move{rotate: false}

// String renders the move as "ROTATE" or "SPIN", matching the original
// TernaryMove::toString.
func (m Move) String() string {
	if m.rotate {
		return "ROTATE"
	}
	return "SPIN"
}

// Puzzle is the Ternary toy puzzle. The zero value is ready to use.
type Puzzle struct{}

// New constructs a Ternary puzzle instance.
func New() *Puzzle { return &Puzzle{} }

// InitialState returns InitPos.
func (Puzzle) InitialState() puzzle.State { return State(InitPos) }

// IsPrimitive reports whether s is InitPos — Ternary's only primitive.
func (Puzzle) IsPrimitive(s puzzle.State) bool {
	return s.(State).Hash() == InitPos
}

// Moves always returns {Rotate, Spin}, in that order, regardless of s.
func (Puzzle) Moves(puzzle.State) []puzzle.Move {
	return []puzzle.Move{Rotate, Spin}
}

// DoMove applies m at s and is always legal for the two Ternary moves.
func (Puzzle) DoMove(s puzzle.State, m puzzle.Move) (puzzle.State, bool) {
	val := uint64(s.(State))
	mv := m.(Move)
	if mv.rotate {
		val <<= 4
		val |= val >> 16
		val &^= 0b1111 << 16
	} else {
		for i := 0; i < 3; i++ {
			shift := uint(i << 2)
			num := (val & (0b11 << shift)) >> shift
			num = (num + 1) % 3
			val &^= 0b11 << shift
			val |= num << shift
		}
	}
	return State(val), true
}

// HashSize returns 0: Ternary's state space is tiny but not declared as
// a dense range, so the graph solver is used (matching the original's
// Puzzle::hashSize, which this puzzle does not override beyond the
// base class's implicit "unbounded").
func (Puzzle) HashSize() uint64 { return 0 }
