package gf2_test

import (
	"fmt"

	"github.com/katalvlaran/minpress/gf2"
	"github.com/katalvlaran/minpress/machine"
)

// ExampleSolve finds the cheapest set of buttons turning on exactly the
// middle two of four lights.
func ExampleSolve() {
	m, err := machine.New(
		[]int{0, 1, 1, 0},
		[][]int{{3}, {1, 3}, {2}, {2, 3}, {0, 2}, {0, 1}},
	)
	if err != nil {
		fmt.Println("machine:", err)
		return
	}
	res, err := gf2.Solve(m)
	if err != nil {
		fmt.Println("solve:", err)
		return
	}
	fmt.Println("minimum presses:", res.Weight)
	// Output:
	// minimum presses: 2
}
