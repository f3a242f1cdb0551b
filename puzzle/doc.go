// Package puzzle defines the capability contract every concrete puzzle
// must satisfy to be solved by retrosolve's solvers.
//
// What
//
//   - State: an opaque, immutable value with a stable 64-bit fingerprint
//     (Hash) and value equality (Equal). The fingerprint must be a perfect
//     identifier within a given puzzle instance — two non-equal states
//     must never collide, since it is used to index dense arrays and as
//     a map key.
//   - Move: an opaque, context-free value with a human-readable String.
//   - Puzzle: immutable configuration plus the five capabilities a
//     solver needs — InitialState, IsPrimitive, Moves, DoMove, HashSize.
//
// Why
//
//   - Both graphsolver and arraysolver are generic over this one flat
//     interface; there is no inheritance hierarchy to model, only a
//     fixed set of methods a concrete puzzle type implements directly.
//   - Keeping Puzzle, State, and Move as narrow interfaces lets a
//     concrete puzzle (Tower of Hanoi, Lights Out, Ternary, Mummy Maze)
//     pick its own internal representation — an integer, a bit-packed
//     uint64, whatever is cheapest to hash and compare — without the
//     solvers ever needing to know it.
//
// Contracts
//
//   - DoMove is deterministic and pure: calling it twice with equal
//     arguments yields equal results.
//   - Moves(s) only ever returns moves that are legal at s; DoMove need
//     only report an illegal move (ok == false) when handed a Move that
//     did not come from Moves(s).
//   - Hash and Equal are mutually consistent: a.Equal(b) implies
//     a.Hash() == b.Hash().
//   - HashSize returns 0 to mean "unbounded, use the graph solver" or a
//     strict upper bound H on Hash()+1 for every reachable state, in
//     which case Hash must be dense enough to index a [0,H) array
//     directly.
package puzzle
