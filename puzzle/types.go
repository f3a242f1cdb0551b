package puzzle

// State is an opaque puzzle position. Implementations must be
// immutable after construction: once handed to a solver, a State's
// Hash and Equal results must never change.
type State interface {
	// Hash returns this state's 64-bit fingerprint. It must be a
	// perfect identifier within a single Puzzle instance — collisions
	// between non-Equal states are forbidden, not merely unlikely.
	Hash() uint64

	// Equal reports whether other represents the same logical state.
	Equal(other State) bool
}

// Move is an opaque, context-free puzzle transition descriptor. A Move
// is not bound to the State it was enumerated from; the same Move
// value may be legal at one state and illegal at another.
type Move interface {
	// String renders the move for shortest-path traces and debugging.
	String() string
}

// Puzzle is the capability contract a concrete puzzle implements to be
// solved by graphsolver or arraysolver. Implementations must treat a
// Puzzle value as read-only for the lifetime of any Solve call — both
// solvers may call its methods concurrently from multiple goroutines.
type Puzzle interface {
	// InitialState returns the puzzle's starting position.
	InitialState() State

	// IsPrimitive reports whether s is a terminal/goal state. Puzzles
	// whose primitives still have legal outgoing moves (Lights Out) are
	// fine — the solver tracks primitive-ness independently of Moves.
	IsPrimitive(s State) bool

	// Moves enumerates the legal moves at s, in a stable order: two
	// calls with an Equal state must yield the same order within one
	// run, since it determines the tie-break in path reconstruction.
	Moves(s State) []Move

	// DoMove applies m at s. ok is false only when m is illegal at s;
	// callers (the solvers) never construct a Move themselves, so this
	// can only happen when the caller passed a Move that did not come
	// from Moves(s) — treat that as a caller bug.
	DoMove(s State, m Move) (next State, ok bool)

	// HashSize returns 0 for an unbounded state space (forcing the
	// graph solver), or a strict upper bound H on Hash()+1 for every
	// reachable state (enabling the array solver's dense [0,H) array).
	HashSize() uint64
}
