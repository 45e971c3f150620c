// SPDX-License-Identifier: MIT
// Package intlin: integer augmented matrix and fraction-free elimination.
// Entries are *big.Int because the scaling row operation multiplies
// magnitudes at every step; the matrix is built, reduced and discarded
// within one solve call.

package intlin

import (
	"math/big"

	"github.com/katalvlaran/minpress/machine"
)

// Matrix is the augmented counter-mode system [A | b]. Column
// j < Buttons() is the coefficient of button j (1 when the button
// increments the counter, 0 otherwise, before reduction); column
// Buttons() is the augmented target value.
type Matrix struct {
	nbuttons int
	rows     [][]*big.Int // each row has nbuttons+1 entries
}

// NewAugmented builds the augmented matrix of m. Returns ErrNilMachine
// on nil input. Complexity: O(rows × cols) allocations.
func NewAugmented(m *machine.Machine) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMachine
	}
	var (
		nrows = m.TargetLen()
		ncols = m.ButtonCount()
		i, j  int
	)
	a := &Matrix{
		nbuttons: ncols,
		rows:     make([][]*big.Int, nrows),
	}
	for i = 0; i < nrows; i++ {
		a.rows[i] = make([]*big.Int, ncols+1)
		for j = 0; j <= ncols; j++ {
			a.rows[i][j] = new(big.Int)
		}
		a.rows[i][ncols].SetInt64(int64(m.Target(i)))
	}
	for j = 0; j < ncols; j++ {
		for _, idx := range m.Button(j) {
			a.rows[idx][j].SetInt64(1)
		}
	}
	return a, nil
}

// Rows reports the number of equations (counters).
func (a *Matrix) Rows() int { return len(a.rows) }

// Buttons reports the number of coefficient columns.
func (a *Matrix) Buttons() int { return a.nbuttons }

// Entry returns a copy of entry (r, c); c may address the augmented column.
func (a *Matrix) Entry(r, c int) *big.Int {
	return new(big.Int).Set(a.rows[r][c])
}

// Reduce eliminates in place to row-echelon form and returns the pivot
// columns in increasing row order. Elimination is fraction-free and
// partial (below the pivot only): for each row r under the pivot row with
// a nonzero entry in the pivot column,
//
//	row_r ← row_r · pivot − pivotRow · factor
//
// where factor is row_r's entry in the pivot column. No division occurs,
// so all intermediate values stay integral at the cost of magnitude
// growth — absorbed by *big.Int entries.
// Complexity: O(rows² × cols) big-integer operations.
func (a *Matrix) Reduce() []int {
	var (
		nrows  = len(a.rows)
		pivots = make([]int, 0, min(nrows, a.nbuttons))
		pr     int // next pivot row
		sel    int
		c, cc  int
		r      int
		factor = new(big.Int)
		scaled = new(big.Int)
	)
	for c = 0; c < a.nbuttons && pr < nrows; c++ {
		sel = -1
		for r = pr; r < nrows; r++ {
			if a.rows[r][c].Sign() != 0 {
				sel = r
				break
			}
		}
		if sel < 0 {
			continue // free column
		}
		a.rows[pr], a.rows[sel] = a.rows[sel], a.rows[pr]
		pivots = append(pivots, c)
		pivot := a.rows[pr][c]
		for r = pr + 1; r < nrows; r++ {
			if a.rows[r][c].Sign() == 0 {
				continue
			}
			// factor must be snapshotted: the cc == c step zeroes it.
			factor.Set(a.rows[r][c])
			for cc = 0; cc <= a.nbuttons; cc++ {
				scaled.Mul(a.rows[pr][cc], factor)
				a.rows[r][cc].Mul(a.rows[r][cc], pivot)
				a.rows[r][cc].Sub(a.rows[r][cc], scaled)
			}
		}
		pr++
	}
	return pivots
}

// coeffZero reports whether row r has no nonzero coefficient entry.
func (a *Matrix) coeffZero(r int) bool {
	for c := 0; c < a.nbuttons; c++ {
		if a.rows[r][c].Sign() != 0 {
			return false
		}
	}
	return true
}
