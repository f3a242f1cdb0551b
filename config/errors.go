package config

import "errors"

var (
	ErrUnknownPuzzle   = errors.New("config: puzzle.name must be one of hanoi, lightsout, ternary, mummymaze")
	ErrMissingMapPath  = errors.New("config: puzzle.map_path is required when puzzle.name is mummymaze")
	ErrUnknownStrategy = errors.New("config: solver.strategy must be one of auto, graph, array")
)
