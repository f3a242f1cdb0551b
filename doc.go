// Package retrosolve computes remoteness — the minimum number of
// moves from a state to a solved position — for single-agent,
// deterministic, finite-state puzzles, and reconstructs a shortest
// solving path once it has.
//
// A puzzle implements five methods (see package puzzle): give its
// initial state, enumerate the moves available from a state, apply
// one, say whether a state is primitive (already solved), and declare
// its hash bound (HashSize). Given that contract, retrosolve
// picks one of two solving strategies:
//
//	graphsolver — forward BFS discovers the reachable-state graph and
//	its reverse adjacency; one parallel backward BFS per primitive
//	state then relaxes every state's distance. Used for puzzles whose
//	reachable set has no useful dense hash bound, such as hanoi and
//	mummymaze.
//
//	arraysolver — a single forward BFS into a dense, directly-indexed
//	distance array. Used for puzzles that declare a bounded HashSize,
//	such as lightsout.
//
// Four reference puzzles live under puzzles/: hanoi (Tower of Hanoi),
// lightsout (Lights Out), ternary (a small fixed-state toy puzzle) and
// mummymaze (a maze with chasing NPCs). cmd/retrosolve is a batch
// runner that loads a config.Config, builds the configured puzzle,
// solves it, and prints its remoteness and one shortest path.
package retrosolve
