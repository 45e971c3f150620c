package batch

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/minpress/gf2"
	"github.com/katalvlaran/minpress/intlin"
	"github.com/katalvlaran/minpress/machine"
)

// Total is the aggregated outcome of one puzzle instance in one mode.
type Total struct {
	// Presses is the sum of minimum weights over all solved machines.
	Presses int64
	// Solved counts machines contributing to Presses.
	Solved int
	// Unsolved counts machines excluded as unsolvable (domain result or
	// exceeded search budget).
	Unsolved int
}

// SumToggle solves every machine in toggle mode and sums the minimum
// weights. Unsolvable machines (gf2.ErrUnsolvable, gf2.ErrFreeVarLimit)
// are excluded and counted; any other solver error aborts with the
// machine's 0-based position wrapped in.
func SumToggle(machines []*machine.Machine, opts ...gf2.Option) (Total, error) {
	var t Total
	for i, m := range machines {
		res, err := gf2.Solve(m, opts...)
		if err != nil {
			if errors.Is(err, gf2.ErrUnsolvable) || errors.Is(err, gf2.ErrFreeVarLimit) {
				t.Unsolved++
				continue
			}
			return Total{}, fmt.Errorf("batch: machine %d: %w", i, err)
		}
		t.Presses += int64(res.Weight)
		t.Solved++
	}
	return t, nil
}

// SumCounter solves every machine in counter mode and sums the minimum
// weights. Unsolvable machines (intlin.ErrUnsolvable, intlin.ErrSearchSpace,
// intlin.ErrTimeLimit) are excluded and counted; any other solver error
// aborts with the machine's 0-based position wrapped in.
func SumCounter(machines []*machine.Machine, opts ...intlin.Option) (Total, error) {
	var t Total
	for i, m := range machines {
		res, err := intlin.Solve(m, opts...)
		if err != nil {
			if unsolvableCounter(err) {
				t.Unsolved++
				continue
			}
			return Total{}, fmt.Errorf("batch: machine %d: %w", i, err)
		}
		t.Presses += res.Weight
		t.Solved++
	}
	return t, nil
}

// unsolvableCounter reports whether err is a counter-mode domain outcome
// rather than a structural failure.
func unsolvableCounter(err error) bool {
	return errors.Is(err, intlin.ErrUnsolvable) ||
		errors.Is(err, intlin.ErrSearchSpace) ||
		errors.Is(err, intlin.ErrTimeLimit)
}
