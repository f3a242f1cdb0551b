// Package lightsout implements the Lights Out toy puzzle: an r-by-c
// grid of binary lights packed into a uint64 (bit (i*c+j) is light
// (i,j)). A move toggles a cell and its orthogonal neighbors. The
// primitive is the all-off grid (hash 0).
//
// Because every move is its own inverse and the move set does not
// depend on the current state, the graph of reachable states is
// vertex-transitive: every state's distance to the all-off grid equals
// the all-off grid's distance to it. That makes depth-from-root (what
// arraysolver computes) the same quantity as remoteness here, so
// arraysolver is used instead of graphsolver.
package lightsout
