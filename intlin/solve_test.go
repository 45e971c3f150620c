package intlin_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minpress/intlin"
	"github.com/katalvlaran/minpress/machine"
)

// bruteMinCounter exhaustively enumerates press vectors with every count
// in [0, limit] and returns the minimum weight reproducing target, or -1.
// Exact for instances whose true optimum stays within limit per button.
func bruteMinCounter(t *testing.T, m *machine.Machine, target []int, limit int64) int64 {
	t.Helper()
	var (
		n       = m.ButtonCount()
		presses = make([]int64, n)
		best    = int64(-1)
	)
	for {
		counters, err := m.ReplayAdd(presses)
		require.NoError(t, err)
		ok := true
		for i, v := range counters {
			if v != int64(target[i]) {
				ok = false
				break
			}
		}
		if ok {
			var w int64
			for _, p := range presses {
				w += p
			}
			if best < 0 || w < best {
				best = w
			}
		}
		k := 0
		for k < n {
			presses[k]++
			if presses[k] <= limit {
				break
			}
			presses[k] = 0
			k++
		}
		if k == n {
			return best
		}
	}
}

func TestSolve_ScenarioB(t *testing.T) {
	// Counter targets {3,5,4,7} with the six reference buttons: 10 presses.
	m := mustMachine(t, []int{3, 5, 4, 7}, [][]int{{3}, {1, 3}, {2}, {2, 3}, {0, 2}, {0, 1}})
	res, err := intlin.Solve(m)
	require.NoError(t, err)
	require.EqualValues(t, 10, res.Weight)

	// Round-trip: replaying the returned presses reproduces the targets.
	counters, err := m.ReplayAdd(res.Presses)
	require.NoError(t, err)
	want := make([]int64, m.TargetLen())
	for i, v := range m.Targets() {
		want[i] = int64(v)
	}
	require.Equal(t, want, counters)
}

func TestSolve_UniqueSolution(t *testing.T) {
	m := mustMachine(t, []int{2, 3}, [][]int{{0}, {1}})
	res, err := intlin.Solve(m)
	require.NoError(t, err)
	require.EqualValues(t, 5, res.Weight)
	require.Equal(t, []int64{2, 3}, res.Presses)
}

func TestSolve_Unsolvable(t *testing.T) {
	// The only button never touches counter 0, yet counter 0 must reach 1.
	m := mustMachine(t, []int{1, 0}, [][]int{{1}})
	_, err := intlin.Solve(m)
	require.ErrorIs(t, err, intlin.ErrUnsolvable)
}

func TestSolve_UnsolvableNegative(t *testing.T) {
	// Unique rational solution forces x0 = -1: no non-negative answer.
	m := mustMachine(t, []int{0, 1}, [][]int{{0}, {0, 1}})
	_, err := intlin.Solve(m)
	require.ErrorIs(t, err, intlin.ErrUnsolvable)
}

func TestSolve_DivisibilityGate(t *testing.T) {
	// Pairwise-overlapping buttons: x0+x1 = t0, x0+x2 = t1, x1+x2 = t2,
	// so x0 = (t0+t1-t2)/2 — solvable only when the parity works out.
	buttons := [][]int{{0, 1}, {0, 2}, {1, 2}}

	odd := mustMachine(t, []int{1, 1, 1}, buttons)
	_, err := intlin.Solve(odd)
	require.ErrorIs(t, err, intlin.ErrUnsolvable)

	even := mustMachine(t, []int{2, 2, 2}, buttons)
	res, err := intlin.Solve(even)
	require.NoError(t, err)
	require.EqualValues(t, 3, res.Weight)
	require.Equal(t, []int64{1, 1, 1}, res.Presses)
}

func TestSolve_ZeroTarget(t *testing.T) {
	m := mustMachine(t, []int{0, 0}, [][]int{{0}, {0, 1}})
	res, err := intlin.Solve(m)
	require.NoError(t, err)
	require.EqualValues(t, 0, res.Weight)
	require.Equal(t, []int64{0, 0}, res.Presses)
}

func TestSolve_FreeVariablePath(t *testing.T) {
	// Two interchangeable buttons on one counter: rank 1, one free
	// variable, minimum weight equals the target itself.
	m := mustMachine(t, []int{3}, [][]int{{0}, {0}})
	res, err := intlin.Solve(m)
	require.NoError(t, err)
	require.EqualValues(t, 3, res.Weight)

	counters, err := m.ReplayAdd(res.Presses)
	require.NoError(t, err)
	require.Equal(t, []int64{3}, counters)
}

func TestSolve_DuplicateButtonIndices(t *testing.T) {
	// One button listing the same counter twice acts on it once per
	// press, so reaching 2 takes 2 presses and the replay agrees.
	m := mustMachine(t, []int{2}, [][]int{{0, 0}})
	res, err := intlin.Solve(m)
	require.NoError(t, err)
	require.EqualValues(t, 2, res.Weight)

	counters, err := m.ReplayAdd(res.Presses)
	require.NoError(t, err)
	require.Equal(t, []int64{2}, counters)
}

func TestSolve_HugeTargets(t *testing.T) {
	// Targets near the int64 ceiling: the free-variable bound saturates
	// instead of wrapping, and the search is refused, not corrupted.
	huge := math.MaxInt64 - 1
	m := mustMachine(t, []int{huge, huge}, [][]int{{0}, {0}, {1}})
	_, err := intlin.Solve(m)
	require.ErrorIs(t, err, intlin.ErrSearchSpace)
}

func TestSolve_SearchSpaceCeiling(t *testing.T) {
	// Three buttons, one counter: two free variables with bound 100 —
	// 101² candidates, above a ceiling of 10000.
	m := mustMachine(t, []int{100}, [][]int{{0}, {0}, {0}})
	_, err := intlin.Solve(m, intlin.WithMaxCandidates(10_000))
	require.ErrorIs(t, err, intlin.ErrSearchSpace)

	// The default ceiling admits the same search.
	res, err := intlin.Solve(m)
	require.NoError(t, err)
	require.EqualValues(t, 100, res.Weight)
}

func TestSolve_TimeLimit(t *testing.T) {
	// Large enough search (126² candidates) that the sparse deadline
	// check fires; a nanosecond budget has always expired by then.
	m := mustMachine(t, []int{150}, [][]int{{0}, {0}, {0}})
	_, err := intlin.Solve(m, intlin.WithTimeLimit(time.Nanosecond))
	require.ErrorIs(t, err, intlin.ErrTimeLimit)
}

func TestSolve_NilMachine(t *testing.T) {
	_, err := intlin.Solve(nil)
	require.ErrorIs(t, err, intlin.ErrNilMachine)
}

func TestSolve_MatchesBruteForce(t *testing.T) {
	// Randomized small instances: with target sums below 50 the heuristic
	// search bound degenerates to the full range, so the solver must be
	// exact and agree with exhaustive enumeration.
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 100; trial++ {
		var (
			ncounters = 1 + rng.Intn(3)
			nbuttons  = 1 + rng.Intn(4)
			target    = make([]int, ncounters)
			buttons   = make([][]int, nbuttons)
		)
		for i := range target {
			target[i] = rng.Intn(5)
		}
		for j := range buttons {
			for i := 0; i < ncounters; i++ {
				if rng.Intn(2) == 1 {
					buttons[j] = append(buttons[j], i)
				}
			}
		}
		m := mustMachine(t, target, buttons)
		want := bruteMinCounter(t, m, target, 4)

		res, err := intlin.Solve(m)
		if want < 0 {
			require.ErrorIs(t, err, intlin.ErrUnsolvable, "trial %d", trial)
			continue
		}
		require.NoError(t, err, "trial %d", trial)
		require.Equal(t, want, res.Weight, "trial %d", trial)

		counters, err := m.ReplayAdd(res.Presses)
		require.NoError(t, err)
		for i, v := range target {
			require.EqualValues(t, v, counters[i], "trial %d counter %d", trial, i)
		}
	}
}
