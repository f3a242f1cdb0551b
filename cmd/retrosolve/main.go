// Command retrosolve solves one configured puzzle instance and prints
// its remoteness and a shortest solving path. It is a batch runner,
// not an interactive play loop: see config.Config for how to select
// and size a puzzle.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/retrosolve/arraysolver"
	"github.com/katalvlaran/retrosolve/config"
	"github.com/katalvlaran/retrosolve/graphsolver"
	"github.com/katalvlaran/retrosolve/puzzle"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "retrosolve:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := newLogger(cfg.Log)
	log.Info("config loaded", "puzzle", cfg.Puzzle.Name, "strategy", cfg.Solver.Strategy)

	p, err := buildPuzzle(cfg.Puzzle)
	if err != nil {
		return err
	}

	strategy := resolveStrategy(cfg.Solver.Strategy, p)
	log.Info("strategy resolved", "strategy", strategy)

	start := time.Now()
	switch strategy {
	case "array":
		return runArray(p, cfg.Solver, log, start)
	default:
		return runGraph(p, log, start)
	}
}

// resolveStrategy turns "auto" into a concrete strategy based on
// whether the puzzle declares a usable dense hash bound.
func resolveStrategy(configured string, p puzzle.Puzzle) string {
	if configured != "auto" {
		return configured
	}
	if p.HashSize() > 0 {
		return "array"
	}
	return "graph"
}

func runGraph(p puzzle.Puzzle, log *slog.Logger, start time.Time) error {
	s, err := graphsolver.New(p)
	if err != nil {
		return err
	}
	rmt := s.Solve()
	log.Info("solved", "remoteness", rmt, "elapsed", time.Since(start).String())

	fmt.Println("remoteness:", rmt)
	if err := s.ShortestPathFrom(p.InitialState(), os.Stdout); err != nil {
		return err
	}
	return nil
}

func runArray(p puzzle.Puzzle, solverCfg config.SolverConfig, log *slog.Logger, start time.Time) error {
	s, err := arraysolver.New(p)
	if err != nil {
		return err
	}
	depth := s.Solve()
	log.Info("solved", "depth", depth, "elapsed", time.Since(start).String())

	fmt.Println("depth:", depth)
	if err := s.ShortestPathFrom(p.InitialState(), os.Stdout); err != nil {
		return err
	}
	if solverCfg.SavePath != "" {
		if err := s.SaveDistances(solverCfg.SavePath); err != nil {
			return err
		}
		log.Info("distances saved", "path", solverCfg.SavePath)
	}
	return nil
}
