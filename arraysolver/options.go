package arraysolver

// Option configures ArraySolver behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks a caller can wire to their own logger or
// metrics. ArraySolver itself never logs; this is the only
// observability surface it exposes.
type Options struct {
	// OnExpand is called once per state Solve's forward BFS discovers,
	// with the depth it was assigned.
	OnExpand func(hash uint64, depth int32)
}

// DefaultOptions returns an Options with a no-op hook.
func DefaultOptions() Options {
	return Options{
		OnExpand: func(uint64, int32) {},
	}
}

// WithOnExpand registers a callback invoked for every state Solve's
// forward BFS discovers.
func WithOnExpand(fn func(hash uint64, depth int32)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
