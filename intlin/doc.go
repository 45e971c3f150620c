// Package intlin solves counter-mode machines: find the minimum total
// number of button presses whose +1 increments reproduce the target
// counter vector exactly, with every press count a non-negative integer.
//
// Pipeline:
//  1. NewAugmented builds the integer augmented matrix [A | b]: one row
//     per counter, one column per button, entries in math/big integers.
//  2. (*Matrix).Reduce performs fraction-free forward elimination to
//     row-echelon form: below each pivot, row_r ← row_r·pivot − pivotRow·factor.
//     The scaling keeps everything integral but grows magnitudes with each
//     elimination step, which is exactly why entries are *big.Int — the
//     growth is unbounded in the row count and silently wrapping would be
//     a correctness bug, not a performance one.
//  3. Solve back-substitutes pivot values bottom-up with exact-division
//     and non-negativity checks. With free variables it searches the
//     Cartesian product of assignments in [0, bound]^f, where bound
//     shrinks heuristically with f (see searchBound); every surviving
//     candidate is re-verified against the original targets before it may
//     become the incumbent, and candidates whose free-value sum already
//     reaches the incumbent weight are pruned outright.
//
// The bounded search is exact for f ≤ 1 and deliberately approximate
// beyond f ≈ 3: the shrinking bound may miss the optimum on adversarial
// instances. That trade is explicit in the API — the candidate ceiling
// (Options.MaxCandidates) and the soft time budget (Options.TimeLimit)
// both resolve to sentinel errors the aggregation layer treats as
// unsolvable, never to a silently wrong number.
//
// Complexity:
//
//	Reduce: O(rows² × cols) big-integer multiplications.
//	Solve:  O((bound+1)^f × rank × cols) in the worst admitted case.
package intlin
