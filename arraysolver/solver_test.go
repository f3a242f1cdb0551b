package arraysolver_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/retrosolve/arraysolver"
)

func TestNewRejectsNilPuzzle(t *testing.T) {
	if _, err := arraysolver.New(nil); !errors.Is(err, arraysolver.ErrNilPuzzle) {
		t.Errorf("New(nil) error = %v; want ErrNilPuzzle", err)
	}
}

func TestNewRejectsUnboundedHashSize(t *testing.T) {
	p := &densePuzzle{size: 0}
	if _, err := arraysolver.New(p); !errors.Is(err, arraysolver.ErrUnboundedHashSize) {
		t.Errorf("New() error = %v; want ErrUnboundedHashSize", err)
	}
}

// chainDense is a straight line 0 -> 1 -> 2 -> 3 with moves reversible
// in both directions (as every reference puzzle's moves are), so
// depth-from-root is exactly 3 and ShortestPathFrom can descend back
// toward the root via forward Moves.
func chainDense() *densePuzzle {
	return &densePuzzle{
		initial: 0,
		size:    4,
		edges: map[uint64][]uint64{
			0: {1},
			1: {0, 2},
			2: {1, 3},
			3: {2},
		},
	}
}

func TestSolveChainDepth(t *testing.T) {
	s, err := arraysolver.New(chainDense())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := s.Solve(); got != 3 {
		t.Errorf("Solve() = %d; want 3", got)
	}
}

func TestSolveIsIdempotent(t *testing.T) {
	s, err := arraysolver.New(chainDense())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	first := s.Solve()
	second := s.Solve()
	if first != second {
		t.Errorf("Solve() changed between calls: %d then %d", first, second)
	}
}

// branchingDense gives state 0 two neighbours (1, 2) at depth 1, and a
// single state 3 reachable from both at depth 2 — exercising the
// "already seen" skip in Solve's forward BFS.
func branchingDense() *densePuzzle {
	return &densePuzzle{
		initial: 0,
		size:    4,
		edges: map[uint64][]uint64{
			0: {1, 2},
			1: {3},
			2: {3},
		},
	}
}

func TestSolveBranchingMaxDepth(t *testing.T) {
	s, err := arraysolver.New(branchingDense())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := s.Solve(); got != 2 {
		t.Errorf("Solve() = %d; want 2", got)
	}
}

func TestWithOnExpandFiresWithAssignedDepth(t *testing.T) {
	depths := map[uint64]int32{}
	s, err := arraysolver.New(chainDense(), arraysolver.WithOnExpand(
		func(hash uint64, depth int32) { depths[hash] = depth },
	))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Solve()
	if len(depths) != 4 {
		t.Fatalf("WithOnExpand saw %d distinct states; want 4", len(depths))
	}
	if got := depths[denseState(0).Hash()]; got != 0 {
		t.Errorf("depth of root = %d; want 0", got)
	}
	if got := depths[denseState(3).Hash()]; got != 3 {
		t.Errorf("depth of state 3 = %d; want 3", got)
	}
}

func TestShortestPathFromChain(t *testing.T) {
	s, err := arraysolver.New(chainDense())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var buf bytes.Buffer
	if err := s.ShortestPathFrom(denseState(3), &buf); err != nil {
		t.Fatalf("ShortestPathFrom: %v", err)
	}
	want := "[rmt 3: to-2]->[rmt 2: to-1]->[rmt 1: to-0]->[END]\n"
	if got := buf.String(); got != want {
		t.Errorf("ShortestPathFrom output = %q; want %q", got, want)
	}
}

func TestShortestPathFromNoSolution(t *testing.T) {
	p := &densePuzzle{
		initial: 0,
		size:    3,
		edges:   map[uint64][]uint64{0: {1}},
	}
	s, err := arraysolver.New(p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var buf bytes.Buffer
	// state 2 is never reached by Solve's forward BFS from 0.
	if err := s.ShortestPathFrom(denseState(2), &buf); err != nil {
		t.Fatalf("ShortestPathFrom: %v", err)
	}
	if want := "[NO SOLUTION]\n"; buf.String() != want {
		t.Errorf("ShortestPathFrom output = %q; want %q", buf.String(), want)
	}
}

func TestPrintInfoSkipsUnseenSlots(t *testing.T) {
	p := &densePuzzle{
		initial: 0,
		size:    5,
		edges:   map[uint64][]uint64{0: {1}},
	}
	s, err := arraysolver.New(p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var buf bytes.Buffer
	if err := s.PrintInfo(&buf); err != nil {
		t.Fatalf("PrintInfo: %v", err)
	}
	// only hash 0 and 1 are reached out of 5 slots.
	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	if lines != 2 {
		t.Errorf("PrintInfo printed %d lines; want 2", lines)
	}
}

func TestSaveDistancesWritesOneInt32PerSlot(t *testing.T) {
	s, err := arraysolver.New(chainDense())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	path := filepath.Join(t.TempDir(), "distances.bin")
	if err := s.SaveDistances(path); err != nil {
		t.Fatalf("SaveDistances: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if want := 4 * 4; len(data) != want {
		t.Errorf("saved file has %d bytes; want %d", len(data), want)
	}
	// slot 0 is the root, depth 0.
	if data[0] != 0 || data[1] != 0 || data[2] != 0 || data[3] != 0 {
		t.Errorf("slot 0 bytes = %v; want all zero", data[0:4])
	}
}
