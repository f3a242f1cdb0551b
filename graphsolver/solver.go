package graphsolver

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/retrosolve/puzzle"
)

// Solve runs the two-phase algorithm if it has not already run, then
// returns the remoteness of the initial position. Solve is idempotent:
// calling it again after the first call returns the same value without
// recomputing anything.
func (s *GraphSolver) Solve() int {
	if !s.solved {
		s.findPrimitives()
		s.calcRemoteness()
		s.reverse = nil // Phase B is the reverse graph's only consumer; release it.
		s.solved = true
	}
	return s.initialRmt
}

// findPrimitives is Phase A: forward BFS from the initial state. It
// populates s.states (the canonical arena), s.rmt (every reachable
// state seeded at Unreachable), s.reverse (child -> parents), and
// s.primitives (the hashes found primitive along the way).
func (s *GraphSolver) findPrimitives() {
	initial := s.puzzle.InitialState()
	s.initial = initial

	type frontierItem struct {
		state puzzle.State
		hash  uint64
	}

	closed := make(map[uint64]bool)
	s.reverse = make(map[uint64][]uint64)

	// Pre-seed the root in the reverse graph so Phase B's backward BFS
	// finds it even if it has no predecessor.
	rootHash := initial.Hash()
	s.reverse[rootHash] = []uint64{}

	fringe := []frontierItem{{state: initial, hash: rootHash}}
	for len(fringe) > 0 {
		curr := fringe[0]
		fringe = fringe[1:]

		if closed[curr.hash] {
			continue
		}
		closed[curr.hash] = true
		s.states[curr.hash] = curr.state
		s.rmt[curr.hash] = Unreachable
		s.opts.OnExpand(curr.hash, curr.state)

		if s.puzzle.IsPrimitive(curr.state) {
			s.primitives = append(s.primitives, curr.hash)
		}

		for _, m := range s.puzzle.Moves(curr.state) {
			next, ok := s.puzzle.DoMove(curr.state, m)
			if !ok {
				continue
			}
			nextHash := next.Hash()
			s.reverse[nextHash] = append(s.reverse[nextHash], curr.hash)
			fringe = append(fringe, frontierItem{state: next, hash: nextHash})
		}
	}
}

// calcRemoteness is Phase B: one independent, level-synchronised
// backward BFS per primitive, run concurrently. Each worker relaxes
// s.rmt under s.mu; relaxation only ever decreases a value so the
// final result does not depend on goroutine interleaving.
func (s *GraphSolver) calcRemoteness() {
	var g errgroup.Group
	for _, p := range s.primitives {
		p := p
		g.Go(func() error {
			s.updateRemotenessFrom(p)
			return nil
		})
	}
	_ = g.Wait() // workers never return an error; Wait only joins them.

	s.initialRmt = s.rmt[s.initial.Hash()]
}

// updateRemotenessFrom runs one level-synchronised backward BFS over
// the reverse graph starting at primitive, relaxing every state it
// reaches with its distance from primitive.
func (s *GraphSolver) updateRemotenessFrom(primitive uint64) {
	closed := make(map[uint64]bool)
	fringe := []uint64{primitive}
	rmt := 0
	remaining := 1
	nextLevel := 0

	for len(fringe) > 0 {
		curr := fringe[0]
		fringe = fringe[1:]

		if !closed[curr] {
			closed[curr] = true
			s.relax(curr, rmt)
			for _, parent := range s.reverse[curr] {
				fringe = append(fringe, parent)
				nextLevel++
			}
		}

		remaining--
		if remaining == 0 {
			remaining = nextLevel
			nextLevel = 0
			rmt++
		}
	}
}

// relax sets s.rmt[hash] to the minimum of its current value and rmt,
// under the shared mutex that makes concurrent calls from Phase B safe.
// OnRelax runs with that lock held, so it must not call back into the
// solver and should stay cheap — it may fire concurrently from several
// workers, serialized by the same mutex.
func (s *GraphSolver) relax(hash uint64, rmt int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rmt < s.rmt[hash] {
		s.rmt[hash] = rmt
		s.opts.OnRelax(hash, rmt)
	}
}
