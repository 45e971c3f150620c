// Package gf2 solves toggle-mode machines: find the minimum number of
// pressed buttons whose combined toggles reproduce the target light
// pattern exactly. All arithmetic happens over GF(2), the two-element
// field where addition and subtraction are both XOR.
//
// Pipeline:
//  1. NewAugmented builds the augmented bit matrix [A | b]: one row per
//     light, one column per button (bit set when the button toggles the
//     light), plus the augmented column holding the target bit. Rows are
//     word-packed ([]uint64), so a row XOR touches ⌈(n+1)/64⌉ words.
//  2. (*Matrix).Reduce performs Gauss–Jordan elimination to reduced
//     row-echelon form: for each column in order, pick the first usable
//     pivot row, then XOR the pivot row into every other row holding a 1
//     in that column. Columns that never yield a pivot are free variables.
//     Reduce is idempotent: reducing an already-reduced matrix changes
//     nothing and reports the same pivot list.
//  3. Solve classifies free variables, enumerates all 2^f assignments of
//     the f free columns as an ascending bitmask, back-substitutes each
//     pivot value as a single masked-parity word operation, and keeps the
//     first assignment reaching the minimum weight (popcount of the full
//     press vector).
//
// Outcomes are explicit: a Result with the press vector and its weight,
// or ErrUnsolvable when some row demands 0 = 1. The enumeration is
// exponential in f and guarded by Options.MaxFreeVars (ErrFreeVarLimit
// beyond it); puzzle inputs keep f small.
//
// Complexity:
//
//	Reduce: O(rows × cols × ⌈cols/64⌉) word operations.
//	Solve:  O(2^f × rank) after O(rank × f) precomputation.
package gf2
