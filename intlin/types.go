// SPDX-License-Identifier: MIT
// Package intlin: sentinel errors, solver options and the result type.
// Solver entry points return ONLY these sentinels on failure; tests match
// them via errors.Is.

package intlin

import (
	"errors"
	"time"
)

var (
	// ErrNilMachine indicates a nil *machine.Machine was passed in.
	ErrNilMachine = errors.New("intlin: machine is nil")

	// ErrUnsolvable indicates no non-negative integer press vector can
	// reproduce the targets. A domain result, not a defect.
	ErrUnsolvable = errors.New("intlin: system has no non-negative integer solution")

	// ErrSearchSpace indicates the free-variable search space exceeds
	// Options.MaxCandidates. The documented approximation limit: callers
	// treat it as unsolvable rather than waiting forever.
	ErrSearchSpace = errors.New("intlin: free-variable search space exceeds candidate ceiling")

	// ErrTimeLimit indicates a positive Options.TimeLimit expired before
	// the search finished.
	ErrTimeLimit = errors.New("intlin: time budget exceeded")

	// ErrWeightOverflow indicates a solution whose press counts or total
	// weight do not fit in int64. Surfaced explicitly instead of wrapping.
	ErrWeightOverflow = errors.New("intlin: solution does not fit in int64")
)

// DefaultMaxCandidates is the default hard ceiling on the number of
// free-variable assignments the solver will enumerate.
const DefaultMaxCandidates = int64(1_000_000_000)

// Result is a solved counter-mode machine.
type Result struct {
	// Presses holds the non-negative press count per button.
	Presses []int64

	// Weight is the total press count (sum of Presses) — the quantity
	// being minimized.
	Weight int64
}

// Options configures the counter-mode solver.
type Options struct {
	// MaxCandidates caps the candidate count (bound+1)^f of the
	// free-variable search; beyond it Solve fails fast with
	// ErrSearchSpace. Must be ≥ 1. Default: DefaultMaxCandidates.
	MaxCandidates int64

	// TimeLimit is a soft wall-clock budget for one solve call, checked
	// sparsely during the search. Zero disables the budget.
	TimeLimit time.Duration
}

// Option mutates Options; pass to Solve.
type Option func(*Options)

// DefaultOptions returns the documented solver defaults.
func DefaultOptions() Options {
	return Options{MaxCandidates: DefaultMaxCandidates}
}

// WithMaxCandidates overrides the candidate ceiling.
// Panics on n < 1: a non-positive ceiling is a programmer error.
func WithMaxCandidates(n int64) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrSearchSpace.Error())
		}
		o.MaxCandidates = n
	}
}

// WithTimeLimit sets the soft wall-clock budget. Panics on negative d;
// zero keeps the budget disabled.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			panic(ErrTimeLimit.Error())
		}
		o.TimeLimit = d
	}
}
