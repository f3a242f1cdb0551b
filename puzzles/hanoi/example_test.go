package hanoi_test

import (
	"fmt"

	"github.com/katalvlaran/retrosolve/graphsolver"
	"github.com/katalvlaran/retrosolve/puzzles/hanoi"
)

func Example() {
	p := hanoi.New(3, 3)
	s, err := graphsolver.New(p)
	if err != nil {
		panic(err)
	}

	fmt.Println("rmt:", s.Solve())

	// Output:
	// rmt: 7
}
