// Package graphsolver computes remoteness — the minimum number of moves
// from a state to any primitive — over a puzzle's reachable-state graph,
// for puzzles whose state space is large or sparse in the 64-bit hash
// space (HashSize() == 0).
//
// What
//
//   - Phase A: forward BFS from the initial state, enumerating every
//     reachable state and building a reverse adjacency map (child hash
//     -> parent hashes) as a side effect of expansion.
//   - Phase B: one independent, level-synchronised backward BFS per
//     primitive state found in Phase A, run concurrently with
//     golang.org/x/sync/errgroup. Each relaxes rmt(s) = min(rmt(s), d)
//     under a shared mutex; because relaxation only ever decreases a
//     value, the result is independent of goroutine interleaving.
//   - ShortestPathFrom greedily descends rmt from a query state to a
//     primitive, picking the first enumerated move that decreases rmt
//     by exactly one.
//
// Why
//
//   - Many puzzles (Tower of Hanoi, Mummy Maze) have no useful dense
//     hash bound — states are sparse in a 64-bit space, or the upper
//     bound would be astronomically larger than the reachable set. A
//     map-keyed distance table plus one-BFS-per-primitive is the
//     correct trade for that shape, as opposed to arraysolver's dense
//     array.
//
// Determinism
//
//	Phase A's visit order is the puzzle's own Moves(s) order, so the
//	reverse graph and primitive list are reproducible across runs.
//	Phase B's per-primitive BFS order inside one worker is also
//	reproducible; final rmt values are order-independent across workers
//	by construction (monotone relaxation), so removing Phase B's
//	parallelism never changes the result.
//
// Observability
//
//	GraphSolver never logs. WithOnExpand and WithOnRelax register
//	callbacks a caller can wire to their own logger or metrics: the
//	former fires once per state Phase A discovers, the latter every
//	time Phase B improves a state's remoteness. Both are no-ops by
//	default (DefaultOptions).
//
// Usage
//
//	s, err := graphsolver.New(myPuzzle, graphsolver.WithOnRelax(
//		func(hash uint64, rmt int) { log.Printf("rmt(%d) = %d", hash, rmt) },
//	))
//	rmt := s.Solve()
//	var buf bytes.Buffer
//	s.ShortestPathFrom(myPuzzle.InitialState(), &buf)
package graphsolver
