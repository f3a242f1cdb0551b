package graphsolver

import (
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/retrosolve/puzzle"
)

// ShortestPathFrom writes a human-readable shortest-path trace from s to
// a primitive, running Solve first if necessary. The trace alternates
// "[rmt k: move]->" tokens and ends in "[END]"; a state from which no
// primitive is reachable produces "[NO SOLUTION]" instead.
//
// At each step the first move (in the puzzle's own Moves order) whose
// result has rmt exactly one less than the current state's is taken;
// this makes the trace deterministic given a stable Moves ordering.
func (s *GraphSolver) ShortestPathFrom(start puzzle.State, sink io.Writer) error {
	s.Solve()

	rmt, ok := s.rmt[start.Hash()]
	if !ok || rmt == Unreachable {
		_, err := fmt.Fprintln(sink, "[NO SOLUTION]")
		return wrapWriteErr(err)
	}

	curr := start
	for rmt > 0 {
		next, move, found := s.descend(curr, rmt)
		if !found {
			// Every reachable state with finite rmt > 0 must have a
			// descending move; reaching here means Moves/DoMove is
			// inconsistent with the computed remoteness.
			panic("graphsolver: no descending move found with rmt > 0")
		}
		if _, err := fmt.Fprintf(sink, "[rmt %d: %s]->", rmt, move.String()); err != nil {
			return wrapWriteErr(err)
		}
		curr = next
		rmt--
	}
	_, err := fmt.Fprintln(sink, "[END]")
	return wrapWriteErr(err)
}

// descend returns the first move at curr whose result has remoteness
// rmt-1, along with the resulting state.
func (s *GraphSolver) descend(curr puzzle.State, rmt int) (puzzle.State, puzzle.Move, bool) {
	for _, m := range s.puzzle.Moves(curr) {
		next, ok := s.puzzle.DoMove(curr, m)
		if !ok {
			continue
		}
		if nextRmt, known := s.rmt[next.Hash()]; known && nextRmt == rmt-1 {
			return next, m, true
		}
	}
	return nil, nil, false
}

// PrintInfo writes every (hash, rmt) pair known to the solver, sorted by
// hash for reproducible output. Solve runs first if necessary.
func (s *GraphSolver) PrintInfo(sink io.Writer) error {
	s.Solve()

	hashes := make([]uint64, 0, len(s.rmt))
	for h := range s.rmt {
		hashes = append(hashes, h)
	}
	sort.Slice(hashes, func(i, j int) bool { return hashes[i] < hashes[j] })

	for _, h := range hashes {
		if _, err := fmt.Fprintf(sink, "hash=%d rmt=%d\n", h, s.rmt[h]); err != nil {
			return wrapWriteErr(err)
		}
	}
	return nil
}

func wrapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrPathIOFailed, err)
}
