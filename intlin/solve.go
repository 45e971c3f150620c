// SPDX-License-Identifier: MIT
// Package intlin: bounded minimum-weight search over the reduced system.

package intlin

import (
	"math"
	"math/big"
	"time"

	"github.com/katalvlaran/minpress/machine"
)

// deadlineEvery controls how sparsely the soft time budget is checked:
// once per this many candidates, keeping budget overhead negligible.
const deadlineEvery = 4096

// searchEngine holds the reduced system plus all search state and scratch
// buffers for one solve call. A dedicated struct (instead of closures)
// keeps dependencies explicit and hot-path allocations at zero.
type searchEngine struct {
	m      *machine.Machine
	a      *Matrix
	pivots []int
	free   []int
	nbtn   int

	// Soft time budget
	useDeadline bool
	deadline    time.Time
	steps       int

	// Incumbent
	best        int64 // -1 while no solution found
	bestPresses []int64

	// Scratch (reused across candidates)
	sol      []*big.Int // per-button value of the current candidate
	freeVals []int64    // current free-variable assignment
	val      *big.Int
	tmp      *big.Int
	rem      *big.Int
	acc      *big.Int
}

// Solve returns the minimum-weight press vector reproducing the target
// counters of m, or an error:
//
//   - ErrNilMachine — structural failure;
//   - ErrUnsolvable — no non-negative integer solution exists (or none
//     within the heuristic search bound);
//   - ErrSearchSpace — the candidate count exceeds Options.MaxCandidates;
//   - ErrTimeLimit — a positive Options.TimeLimit expired mid-search;
//   - ErrWeightOverflow — a solution exists but exceeds int64.
//
// An all-zero target short-circuits to weight 0. With no free variables
// the unique rational solution is accepted only if every pivot value is
// a non-negative integer and replaying it reproduces the targets exactly.
// With f free variables, assignments in [0, bound]^f are enumerated
// lazily (odometer order, first variable fastest); see searchBound for
// the shrinking bound. First minimum wins on ties.
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
		return Result{Presses: make([]int64, nbtn), Weight: 0}, nil
	}

	a, err := NewAugmented(m)
	if err != nil {
		return Result{}, err
	}
	pivots := a.Reduce()

	// Inconsistency: a zero-coefficient row below the last pivot with a
	// nonzero augmented value demands 0 = k.
	var r int
	for r = len(pivots); r < a.Rows(); r++ {
		if a.rows[r][nbtn].Sign() != 0 && a.coeffZero(r) {
			return Result{}, ErrUnsolvable
		}
	}

	e := newSearchEngine(m, a, pivots)
	if o.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(o.TimeLimit)
	}

	if len(e.free) == 0 {
		return e.solveUnique()
	}
	return e.search(o.MaxCandidates)
}

// newSearchEngine classifies free columns and preallocates all scratch.
func newSearchEngine(m *machine.Machine, a *Matrix, pivots []int) *searchEngine {
	var (
		nbtn    = a.Buttons()
		isPivot = make([]bool, nbtn)
		c       int
	)
	for _, c = range pivots {
		isPivot[c] = true
	}
	e := &searchEngine{
		m:      m,
		a:      a,
		pivots: pivots,
		nbtn:   nbtn,
		best:   -1,
		sol:    make([]*big.Int, nbtn),
		val:    new(big.Int),
		tmp:    new(big.Int),
		rem:    new(big.Int),
		acc:    new(big.Int),
	}
	for c = 0; c < nbtn; c++ {
		e.sol[c] = new(big.Int)
		if !isPivot[c] {
			e.free = append(e.free, c)
		}
	}
	e.freeVals = make([]int64, len(e.free))
	return e
}

// solveUnique handles the fully determined case: back-substitute once,
// verify, and convert. Any failed check is ErrUnsolvable.
func (e *searchEngine) solveUnique() (Result, error) {
	if !e.backSubstitute() || !e.verify() {
		return Result{}, ErrUnsolvable
	}
	return e.result()
}

// search enumerates free-variable assignments in [0, bound]^f with the
// odometer pattern, pruning candidates whose free-value sum already
// reaches the incumbent weight (pivot contributions are non-negative, so
// they can only add). The candidate count is pre-checked against the
// ceiling; the soft deadline is polled once per deadlineEvery candidates.
func (e *searchEngine) search(maxCandidates int64) (Result, error) {
	var (
		f     = len(e.free)
		bound = searchBound(e.targetSum(), f)
	)
	if !withinCeiling(bound, f, maxCandidates) {
		return Result{}, ErrSearchSpace
	}

	for {
		e.steps++
		if e.useDeadline && e.steps%deadlineEvery == 0 && time.Now().After(e.deadline) {
			return Result{}, ErrTimeLimit
		}

		if e.best < 0 || e.freeSum() < e.best {
			e.tryCandidate()
		}

		// Odometer increment, first variable fastest.
		k := 0
		for k < f {
			e.freeVals[k]++
			if e.freeVals[k] <= bound {
				break
			}
			e.freeVals[k] = 0
			k++
		}
		if k == f {
			break // wrapped past the last digit: enumeration complete
		}
	}

	if e.best < 0 {
		return Result{}, ErrUnsolvable
	}
	return Result{Presses: e.bestPresses, Weight: e.best}, nil
}

// tryCandidate evaluates the current free-variable assignment: exact
// back-substitution, full replay verification, incumbent update.
func (e *searchEngine) tryCandidate() {
	if !e.backSubstitute() || !e.verify() {
		return
	}
	var (
		weight int64
		v      int64
		j      int
	)
	for j = 0; j < e.nbtn; j++ {
		if !e.sol[j].IsInt64() {
			return // beyond int64: cannot beat any representable incumbent
		}
		v = e.sol[j].Int64()
		weight += v
		if weight < 0 {
			return // int64 wrap: cannot beat any representable incumbent
		}
	}
	if e.best >= 0 && weight >= e.best {
		return
	}
	e.best = weight
	if e.bestPresses == nil {
		e.bestPresses = make([]int64, e.nbtn)
	}
	for j = 0; j < e.nbtn; j++ {
		e.bestPresses[j] = e.sol[j].Int64()
	}
}

// backSubstitute computes pivot values bottom-up for the current free
// assignment, requiring exact division by the pivot coefficient and a
// non-negative quotient at every step. Reports whether the candidate
// survives. Row-echelon form guarantees row ri has zero entries left of
// its pivot, so only columns right of the pivot contribute.
func (e *searchEngine) backSubstitute() bool {
	var (
		nbtn = e.nbtn
		k, c int
		ri   int
		p    int
	)
	for k, c = range e.free {
		e.sol[c].SetInt64(e.freeVals[k])
	}
	for ri = len(e.pivots) - 1; ri >= 0; ri-- {
		p = e.pivots[ri]
		e.val.Set(e.a.rows[ri][nbtn])
		for c = p + 1; c < nbtn; c++ {
			if e.a.rows[ri][c].Sign() == 0 || e.sol[c].Sign() == 0 {
				continue
			}
			e.tmp.Mul(e.a.rows[ri][c], e.sol[c])
			e.val.Sub(e.val, e.tmp)
		}
		e.tmp.QuoRem(e.val, e.a.rows[ri][p], e.rem)
		if e.rem.Sign() != 0 || e.tmp.Sign() < 0 {
			return false
		}
		e.sol[p].Set(e.tmp)
	}
	return true
}

// verify replays the complete candidate against the original targets —
// the defensive check against elimination scaling artifacts.
func (e *searchEngine) verify() bool {
	var (
		i, j int
	)
	for i = 0; i < e.m.TargetLen(); i++ {
		e.acc.SetInt64(0)
		for j = 0; j < e.nbtn; j++ {
			if e.m.Affects(j, i) {
				e.acc.Add(e.acc, e.sol[j])
			}
		}
		if !e.acc.IsInt64() || e.acc.Int64() != int64(e.m.Target(i)) {
			return false
		}
	}
	return true
}

// result converts the current solution vector (unique-solution path).
func (e *searchEngine) result() (Result, error) {
	var (
		presses = make([]int64, e.nbtn)
		weight  int64
		j       int
	)
	for j = 0; j < e.nbtn; j++ {
		if !e.sol[j].IsInt64() {
			return Result{}, ErrWeightOverflow
		}
		presses[j] = e.sol[j].Int64()
		if weight > weight+presses[j] {
			return Result{}, ErrWeightOverflow
		}
		weight += presses[j]
	}
	return Result{Presses: presses, Weight: weight}, nil
}

// targetSum returns the sum of all target values, saturating at
// MaxInt64. A saturated sum only feeds searchBound, where any bound
// this large fails the candidate ceiling anyway.
func (e *searchEngine) targetSum() int64 {
	var (
		s int64
		v int64
	)
	for i := 0; i < e.m.TargetLen(); i++ {
		v = int64(e.m.Target(i))
		if s > math.MaxInt64-v {
			return math.MaxInt64
		}
		s += v
	}
	return s
}

// freeSum returns the press weight already committed by the current
// free-variable assignment.
func (e *searchEngine) freeSum() int64 {
	var s int64
	for _, v := range e.freeVals {
		s += v
	}
	return s
}

// searchBound is the heuristic upper bound for each free variable given
// the target sum and the free-variable count f. Exact for f == 1 (no
// single press count can exceed the target sum); deliberately shrinking
// for larger f to keep (bound+1)^f tractable, trading completeness for
// bounded work.
func searchBound(sumTargets int64, f int) int64 {
	switch f {
	case 1:
		return sumTargets
	case 2:
		return min(sumTargets, sumTargets/2+50)
	case 3:
		return min(sumTargets, max(100, sumTargets/3))
	default:
		return min(sumTargets, max(50, sumTargets/int64(f)))
	}
}

// withinCeiling reports whether (bound+1)^f stays at or below limit,
// multiplying incrementally to avoid overflow. A bound at MaxInt64
// (saturated target sum) would wrap bound+1, so it is refused outright:
// f is at least 1 here and bound+1 alone already exceeds any limit.
func withinCeiling(bound int64, f int, limit int64) bool {
	if bound == math.MaxInt64 {
		return false
	}
	var (
		size = int64(1)
		i    int
	)
	for i = 0; i < f; i++ {
		if size > limit/(bound+1) {
			return false
		}
		size *= bound + 1
	}
	return size <= limit
}
