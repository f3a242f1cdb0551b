package arraysolver

import "github.com/katalvlaran/retrosolve/puzzle"

// Solve runs the forward BFS if it has not already run, then returns
// the maximum depth discovered — the puzzle's depth, per the package
// doc. Solve is idempotent: calling it again returns the cached depth
// without recomputing anything.
func (s *ArraySolver) Solve() int32 {
	if s.solved {
		return s.depth
	}

	initial := s.puzzle.InitialState()
	s.initial = initial

	type frontierItem struct {
		state puzzle.State
		hash  uint64
	}

	fringe := []frontierItem{{state: initial, hash: initial.Hash()}}
	level := int32(0)
	remaining := 1
	nextLevel := 0

	for len(fringe) > 0 {
		curr := fringe[0]
		fringe = fringe[1:]

		if s.data[curr.hash] == Unseen {
			s.data[curr.hash] = level
			if level > s.depth {
				s.depth = level
			}
			s.opts.OnExpand(curr.hash, level)
			for _, m := range s.puzzle.Moves(curr.state) {
				next, ok := s.puzzle.DoMove(curr.state, m)
				if !ok {
					continue
				}
				fringe = append(fringe, frontierItem{state: next, hash: next.Hash()})
				nextLevel++
			}
		}

		remaining--
		if remaining == 0 {
			remaining = nextLevel
			nextLevel = 0
			level++
		}
	}

	s.solved = true
	return s.depth
}
