package arraysolver

import "errors"

// Sentinel errors for arraysolver. Callers should branch with errors.Is,
// never by comparing error strings.
var (
	// ErrNilPuzzle is returned by New when puzzle is nil.
	ErrNilPuzzle = errors.New("arraysolver: puzzle is nil")

	// ErrUnboundedHashSize is returned by New when the puzzle declares
	// HashSize() == 0 — such puzzles must use graphsolver instead.
	ErrUnboundedHashSize = errors.New("arraysolver: puzzle has unbounded hash size, use graphsolver")

	// ErrPathIOFailed wraps an io.Writer failure from ShortestPathFrom
	// or PrintInfo.
	ErrPathIOFailed = errors.New("arraysolver: write to sink failed")

	// ErrSaveFailed wraps an I/O failure from SaveDistances.
	ErrSaveFailed = errors.New("arraysolver: failed to save distances")
)
