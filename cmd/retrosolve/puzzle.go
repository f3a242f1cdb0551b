package main

import (
	"fmt"

	"github.com/katalvlaran/retrosolve/config"
	"github.com/katalvlaran/retrosolve/puzzle"
	"github.com/katalvlaran/retrosolve/puzzles/hanoi"
	"github.com/katalvlaran/retrosolve/puzzles/lightsout"
	"github.com/katalvlaran/retrosolve/puzzles/mummymaze"
	"github.com/katalvlaran/retrosolve/puzzles/ternary"
)

// buildPuzzle constructs the puzzle named in cfg.
func buildPuzzle(cfg config.PuzzleConfig) (puzzle.Puzzle, error) {
	switch cfg.Name {
	case "hanoi":
		return hanoi.New(cfg.Disks, cfg.Rods), nil
	case "lightsout":
		return lightsout.New(cfg.Rows, cfg.Cols), nil
	case "ternary":
		return ternary.New(), nil
	case "mummymaze":
		return mummymaze.New(cfg.MapPath)
	default:
		return nil, fmt.Errorf("cmd/retrosolve: unknown puzzle %q", cfg.Name)
	}
}
