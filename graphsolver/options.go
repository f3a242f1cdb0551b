package graphsolver

import "github.com/katalvlaran/retrosolve/puzzle"

// Option configures GraphSolver behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks a caller can wire to their own logger or
// metrics. GraphSolver itself never logs; this is the only
// observability surface it exposes.
type Options struct {
	// OnExpand is called once per state Phase A's forward BFS discovers,
	// after the state is recorded in the canonical arena.
	OnExpand func(hash uint64, state puzzle.State)

	// OnRelax is called every time Phase B's backward BFS improves a
	// state's remoteness.
	OnRelax func(hash uint64, rmt int)
}

// DefaultOptions returns an Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnExpand: func(uint64, puzzle.State) {},
		OnRelax:  func(uint64, int) {},
	}
}

// WithOnExpand registers a callback invoked for every state Phase A's
// forward BFS discovers.
func WithOnExpand(fn func(hash uint64, state puzzle.State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnRelax registers a callback invoked every time Phase B relaxes a
// state's remoteness to a smaller value.
func WithOnRelax(fn func(hash uint64, rmt int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}
