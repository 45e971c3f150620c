// SPDX-License-Identifier: MIT
// Package gf2: minimum-weight solver over the reduced system.

package gf2

import (
	"math/bits"

	"github.com/katalvlaran/minpress/machine"
)

// pivotRow is the per-rank precompute consumed by the enumeration loop:
// everything a pivot's back-substitution needs, compressed to one word.
type pivotRow struct {
	col      int    // pivot column (button index)
	freeCoef uint64 // bit k set iff the row carries free column free[k]
	aug      uint64 // augmented target bit of the row
}

// Solve returns the minimum-weight press vector reproducing the target
// light pattern of m, or an error:
//
//   - ErrNilMachine / ErrNonBinaryTarget — structural failures;
//   - ErrUnsolvable — the reduced system contains 0 = 1;
//   - ErrFreeVarLimit — more free variables than Options.MaxFreeVars.
//
// An all-zero target short-circuits to weight 0 regardless of buttons.
// With f free variables the solver walks all 2^f assignments in ascending
// bitmask order; full reduction lets each pivot value be recovered as
// augmented-bit XOR a masked parity, so every candidate costs O(rank).
// Ties keep the first (lowest-mask) minimum.
func Solve(m *machine.Machine, opts ...Option) (Result, error) {
	if m == nil {
		return Result{}, ErrNilMachine
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	nbtn := m.ButtonCount()
	if m.ZeroTarget() {
		return Result{Presses: make([]int, nbtn), Weight: 0}, nil
	}

	a, err := NewAugmented(m)
	if err != nil {
		return Result{}, err
	}
	pivots := a.Reduce()

	// Inconsistency: a row with zero coefficients demanding target 1.
	var r int
	for r = 0; r < a.Rows(); r++ {
		if a.augBit(r) == 1 && a.coeffZero(r) {
			return Result{}, ErrUnsolvable
		}
	}

	// Classify free columns (those never chosen as pivots).
	var (
		isPivot = make([]bool, nbtn)
		free    = make([]int, 0, nbtn-len(pivots))
		c       int
	)
	for _, c = range pivots {
		isPivot[c] = true
	}
	for c = 0; c < nbtn; c++ {
		if !isPivot[c] {
			free = append(free, c)
		}
	}
	f := len(free)
	if f > o.MaxFreeVars {
		return Result{}, ErrFreeVarLimit
	}

	// Compress each pivot row: its free-column coefficients as an f-bit
	// word aligned with the assignment mask, plus its augmented bit.
	prows := make([]pivotRow, len(pivots))
	var k int
	for r, c = range pivots {
		pr := pivotRow{col: c, aug: uint64(a.augBit(r))}
		for k = 0; k < f; k++ {
			if a.Bit(r, free[k]) == 1 {
				pr.freeCoef |= 1 << uint(k)
			}
		}
		prows[r] = pr
	}

	// Enumerate assignments; weight(mask) = popcount(mask) + Σ pivot bits.
	var (
		best     = -1
		bestMask uint64
		mask     uint64
		w        int
		i        int
	)
	for mask = 0; mask < 1<<uint(f); mask++ {
		w = bits.OnesCount64(mask)
		for i = range prows {
			w += int(prows[i].aug) ^ parity(prows[i].freeCoef&mask)
		}
		if best < 0 || w < best {
			best = w
			bestMask = mask
		}
	}

	// Materialize the winning press vector.
	presses := make([]int, nbtn)
	for k, c = range free {
		presses[c] = int(bestMask >> uint(k) & 1)
	}
	for i = range prows {
		presses[prows[i].col] = int(prows[i].aug) ^ parity(prows[i].freeCoef&bestMask)
	}
	return Result{Presses: presses, Weight: best}, nil
}
