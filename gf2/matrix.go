// SPDX-License-Identifier: MIT
// Package gf2: word-packed augmented bit matrix and Gauss–Jordan reduction.
// The matrix is built per machine, reduced in place, and discarded with
// the solve call — no state survives across machines.

package gf2

import (
	"math/bits"

	"github.com/katalvlaran/minpress/machine"
)

// wordBits is the bit width of one packed row word.
const wordBits = 64

// Matrix is the augmented toggle-mode system [A | b] with bit entries
// packed into uint64 words. Column j < Buttons() is the coefficient of
// button j; column Buttons() is the augmented target bit.
type Matrix struct {
	nbuttons int        // coefficient columns
	words    int        // words per row: ⌈(nbuttons+1)/64⌉
	rows     [][]uint64 // one packed row per light
}

// NewAugmented builds the augmented matrix of m: entry (i, j) is 1 iff
// button j toggles light i, and the augmented column holds target[i].
// Returns ErrNilMachine or ErrNonBinaryTarget on invalid input.
// Complexity: O(rows × words + Σ button sizes).
func NewAugmented(m *machine.Machine) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMachine
	}
	var (
		nrows = m.TargetLen()
		ncols = m.ButtonCount()
	)
	a := &Matrix{
		nbuttons: ncols,
		words:    (ncols+1+wordBits-1) / wordBits,
		rows:     make([][]uint64, nrows),
	}
	for i := 0; i < nrows; i++ {
		a.rows[i] = make([]uint64, a.words)
		switch m.Target(i) {
		case 0:
			// leave the augmented bit clear
		case 1:
			setBit(a.rows[i], ncols)
		default:
			return nil, ErrNonBinaryTarget
		}
	}
	for j := 0; j < ncols; j++ {
		for _, idx := range m.Button(j) {
			setBit(a.rows[idx], j)
		}
	}
	return a, nil
}

// Rows reports the number of equations (lights).
func (a *Matrix) Rows() int { return len(a.rows) }

// Buttons reports the number of coefficient columns.
func (a *Matrix) Buttons() int { return a.nbuttons }

// Bit returns entry (r, c) as 0 or 1; c may address the augmented column.
func (a *Matrix) Bit(r, c int) int {
	return int(a.rows[r][c/wordBits] >> (uint(c) % wordBits) & 1)
}

// Clone returns a deep copy, useful for comparing pre/post reduction.
func (a *Matrix) Clone() *Matrix {
	b := &Matrix{
		nbuttons: a.nbuttons,
		words:    a.words,
		rows:     make([][]uint64, len(a.rows)),
	}
	for i, row := range a.rows {
		b.rows[i] = make([]uint64, len(row))
		copy(b.rows[i], row)
	}
	return b
}

// Equal reports whether two matrices have identical shape and entries.
func (a *Matrix) Equal(b *Matrix) bool {
	if b == nil || a.nbuttons != b.nbuttons || len(a.rows) != len(b.rows) {
		return false
	}
	for i, row := range a.rows {
		for w, v := range row {
			if v != b.rows[i][w] {
				return false
			}
		}
	}
	return true
}

// Reduce eliminates in place to reduced row-echelon form and returns the
// pivot columns in increasing row order. For each coefficient column, the
// first row at or below the current pivot row carrying a 1 is swapped up
// and XORed into every other row with a 1 in that column — above and
// below, so each pivot column ends with exactly one 1. Columns that never
// produce a pivot are the system's free variables.
//
// Reduce is idempotent: on an already-reduced matrix it performs no row
// operations and returns the identical pivot list.
// Complexity: O(rows × cols × words).
func (a *Matrix) Reduce() []int {
	var (
		nrows  = len(a.rows)
		pivots = make([]int, 0, min(nrows, a.nbuttons))
		pr     int // next pivot row
		sel    int // row selected for the current column
		c      int
		r      int
	)
	for c = 0; c < a.nbuttons && pr < nrows; c++ {
		sel = -1
		for r = pr; r < nrows; r++ {
			if a.Bit(r, c) == 1 {
				sel = r
				break
			}
		}
		if sel < 0 {
			continue // free column
		}
		a.rows[pr], a.rows[sel] = a.rows[sel], a.rows[pr]
		pivots = append(pivots, c)
		for r = 0; r < nrows; r++ {
			if r != pr && a.Bit(r, c) == 1 {
				xorRow(a.rows[r], a.rows[pr])
			}
		}
		pr++
	}
	return pivots
}

// coeffZero reports whether row r has no 1 in any coefficient column.
func (a *Matrix) coeffZero(r int) bool {
	var (
		row  = a.rows[r]
		last = a.nbuttons / wordBits // word holding the augmented bit
		w    int
	)
	for w = 0; w < last; w++ {
		if row[w] != 0 {
			return false
		}
	}
	// Mask off the augmented bit (and padding) in the final word.
	mask := uint64(1)<<(uint(a.nbuttons)%wordBits) - 1
	return row[last]&mask == 0
}

// augBit returns the augmented (target) bit of row r.
func (a *Matrix) augBit(r int) int { return a.Bit(r, a.nbuttons) }

// setBit sets bit c of the packed row.
func setBit(row []uint64, c int) {
	row[c/wordBits] |= 1 << (uint(c) % wordBits)
}

// xorRow folds src into dst word-wise (dst ^= src).
func xorRow(dst, src []uint64) {
	for w := range dst {
		dst[w] ^= src[w]
	}
}

// parity returns the XOR-fold (popcount mod 2) of x.
func parity(x uint64) int { return bits.OnesCount64(x) & 1 }
