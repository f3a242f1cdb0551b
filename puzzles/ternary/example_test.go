package ternary_test

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/retrosolve/graphsolver"
	"github.com/katalvlaran/retrosolve/puzzles/ternary"
)

func Example() {
	p := ternary.New()
	s, err := graphsolver.New(p)
	if err != nil {
		panic(err)
	}

	fmt.Println("rmt:", s.Solve())

	var buf bytes.Buffer
	if err := s.ShortestPathFrom(p.InitialState(), &buf); err != nil {
		panic(err)
	}
	fmt.Print(buf.String())

	// Output:
	// rmt: 0
	// [END]
}
