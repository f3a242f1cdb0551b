package config

// Config describes one solver run: which puzzle to build, how to size
// it, which strategy to use, and where to log.
type Config struct {
	Puzzle PuzzleConfig `koanf:"puzzle"`
	Solver SolverConfig `koanf:"solver"`
	Log    LogConfig    `koanf:"log"`
}

// PuzzleConfig selects and sizes the puzzle to solve.
type PuzzleConfig struct {
	// Name is one of "hanoi", "lightsout", "ternary", "mummymaze".
	Name string `koanf:"name"`

	// Disks and Rods size a hanoi puzzle.
	Disks uint64 `koanf:"disks"`
	Rods  uint64 `koanf:"rods"`

	// Rows and Cols size a lightsout grid. A mummymaze board takes its
	// dimensions from its map file (MapPath), not from these fields.
	Rows uint64 `koanf:"rows"`
	Cols uint64 `koanf:"cols"`

	// MapPath is the mummymaze board file, required when Name is
	// "mummymaze".
	MapPath string `koanf:"map_path"`
}

// SolverConfig selects a solving strategy. Strategy is one of "graph"
// (sparse/unbounded state spaces) or "array" (dense, HashSize()-bounded
// spaces); "auto" picks array when the puzzle declares a nonzero
// HashSize and graph otherwise.
type SolverConfig struct {
	Strategy string `koanf:"strategy"`

	// SavePath, if set, writes the array solver's distance table to
	// this file after solving. Ignored by the graph solver.
	SavePath string `koanf:"save_path"`
}

// LogConfig configures cmd/retrosolve's logger.
type LogConfig struct {
	Level      string `koanf:"level"`
	FilePath   string `koanf:"file_path"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
}

// Validate reports whether cfg describes a runnable configuration.
func (cfg *Config) Validate() error {
	switch cfg.Puzzle.Name {
	case "hanoi", "lightsout", "ternary":
	case "mummymaze":
		if cfg.Puzzle.MapPath == "" {
			return ErrMissingMapPath
		}
	default:
		return ErrUnknownPuzzle
	}

	switch cfg.Solver.Strategy {
	case "auto", "graph", "array":
	default:
		return ErrUnknownStrategy
	}

	return nil
}
