package arraysolver

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/retrosolve/puzzle"
)

// ShortestPathFrom writes a human-readable shortest-path trace from s to
// the initial state, running Solve first if necessary. The trace
// alternates "[rmt k: move]->" tokens and ends in "[END]"; a state with
// no recorded depth (never reached) produces "[NO SOLUTION]" instead.
//
// At each step the first move (in the puzzle's own Moves order) whose
// result has a strictly smaller depth is taken.
func (s *ArraySolver) ShortestPathFrom(start puzzle.State, sink io.Writer) error {
	s.Solve()

	rmt := s.data[start.Hash()]
	if rmt == Unseen {
		_, err := fmt.Fprintln(sink, "[NO SOLUTION]")
		return wrapWriteErr(err)
	}

	curr := start
	for rmt > 0 {
		next, move, found := s.descend(curr, rmt)
		if !found {
			panic("arraysolver: no descending move found with rmt > 0")
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

// descend returns the first move at curr whose result has a depth
// strictly smaller than rmt, along with the resulting state.
func (s *ArraySolver) descend(curr puzzle.State, rmt int32) (puzzle.State, puzzle.Move, bool) {
	for _, m := range s.puzzle.Moves(curr) {
		next, ok := s.puzzle.DoMove(curr, m)
		if !ok {
			continue
		}
		if s.data[next.Hash()] < rmt {
			return next, m, true
		}
	}
	return nil, nil, false
}

// PrintInfo writes every (hash, rmt) pair that was reached during Solve.
func (s *ArraySolver) PrintInfo(sink io.Writer) error {
	s.Solve()

	for hash, rmt := range s.data {
		if rmt == Unseen {
			continue
		}
		if _, err := fmt.Fprintf(sink, "hash=%d rmt=%d\n", hash, rmt); err != nil {
			return wrapWriteErr(err)
		}
	}
	return nil
}

// SaveDistances writes the raw distance array to path as a flat binary
// dump, one int32 per slot in native byte order — a minimal, directly
// ported analogue of the original's raw signed-char-array file write.
// No partial file is left behind on failure.
func (s *ArraySolver) SaveDistances(path string) error {
	s.Solve()

	buf := make([]byte, 4*len(s.data))
	for i, v := range s.data {
		u := uint32(v)
		buf[4*i] = byte(u)
		buf[4*i+1] = byte(u >> 8)
		buf[4*i+2] = byte(u >> 16)
		buf[4*i+3] = byte(u >> 24)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	return nil
}

func wrapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrPathIOFailed, err)
}
