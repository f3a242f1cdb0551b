// Package arraysolver computes depth-from-root over a puzzle's
// reachable-state graph via a single forward BFS into a dense,
// directly-indexed distance array — for puzzles that declare a bounded
// HashSize().
//
// What
//
//   - Allocate a []int32 of length HashSize(), sentinel -1 ("unseen").
//   - BFS from the initial state with strict level synchronisation
//     (level / remaining-in-level / count-next-level counters); on
//     dequeue, skip if already assigned, else assign the current level
//     and expand.
//   - Solve returns the maximum level assigned — the puzzle's depth —
//     not distance-to-primitive. This is the right notion for puzzles
//     like Lights Out whose primitive (the all-off grid) sits at the
//     root of a vertex-transitive state graph: every reachable state's
//     shortest solution length equals its depth from that root.
//
// Why int32 and not byte
//
//	A signed byte caps representable depth at 127. Lights Out grids
//	approaching 6x6 can exceed that; int32 removes the cap at the cost
//	of 4x the memory per slot.
//
// Observability
//
//	ArraySolver never logs. WithOnExpand registers a callback fired once
//	per state the forward BFS assigns a level to, with the hash and the
//	assigned depth. It is a no-op by default (DefaultOptions).
//
// Usage
//
//	s, err := arraysolver.New(myPuzzle, arraysolver.WithOnExpand(
//		func(hash uint64, depth int32) { log.Printf("depth(%d) = %d", hash, depth) },
//	)) // err if HashSize() == 0
//	depth := s.Solve()
//	var buf bytes.Buffer
//	s.ShortestPathFrom(myPuzzle.InitialState(), &buf)
//	s.SaveDistances("distances.bin")
package arraysolver
