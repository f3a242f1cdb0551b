// Package hanoi implements the Tower of Hanoi reference puzzle: for M
// rods (1..10) and N disks (1..19), a position is a decimal integer
// whose i-th least-significant digit is the rod index holding disk i
// (0 = smallest disk); the destination rod is always 0. A move (disk,
// rod) is legal iff disk is the smallest on its current rod and rod
// holds no disk smaller than it. The primitive is the all-zero
// position — every disk on rod 0.
//
// Hanoi's state space has no useful dense hash bound (up to 10^19
// distinct decimal values for 19 disks), so it is solved with
// graphsolver, not arraysolver.
package hanoi
