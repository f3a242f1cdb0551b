package graphsolver

import "errors"

// Sentinel errors for graphsolver. Callers should branch with errors.Is,
// never by comparing error strings.
var (
	// ErrNilPuzzle is returned by New when puzzle is nil.
	ErrNilPuzzle = errors.New("graphsolver: puzzle is nil")

	// ErrPathIOFailed wraps an io.Writer failure from ShortestPathFrom
	// or PrintInfo.
	ErrPathIOFailed = errors.New("graphsolver: write to sink failed")
)
