// Package ternary implements a small fixed-state toy puzzle: three
// ternary digits packed two bits apiece into a uint64, with two moves —
// ROTATE (cyclic nibble shift) and SPIN (increment each digit mod 3).
// The initial state is itself the only primitive, so its remoteness is
// always 0 — a minimal end-to-end sanity check for graphsolver. Its
// HashSize is 0, so arraysolver does not accept it.
package ternary
