// SPDX-License-Identifier: MIT
// Package gf2: sentinel errors, solver options and the result type.
// All solver entry points return ONLY these sentinels on failure and
// tests match them via errors.Is.

package gf2

import "errors"

var (
	// ErrNilMachine indicates a nil *machine.Machine was passed in.
	ErrNilMachine = errors.New("gf2: machine is nil")

	// ErrNonBinaryTarget indicates a target value outside {0,1}; toggle
	// mode is defined over GF(2) only.
	ErrNonBinaryTarget = errors.New("gf2: target values must be 0 or 1")

	// ErrUnsolvable indicates a consistent-looking machine whose reduced
	// system contains the contradiction 0 = 1. This is a domain result,
	// not a defect: callers aggregate around it.
	ErrUnsolvable = errors.New("gf2: system has no solution")

	// ErrFreeVarLimit indicates more free variables than Options.MaxFreeVars;
	// enumerating 2^f assignments past the limit is refused up front.
	ErrFreeVarLimit = errors.New("gf2: free variable count exceeds enumeration limit")
)

// DefaultMaxFreeVars bounds the free-variable enumeration (2^f assignments).
// Puzzle instances stay well below this; the hard cap of 62 keeps the
// assignment bitmask inside a single uint64.
const DefaultMaxFreeVars = 20

// maxFreeVarsCap is the largest admissible MaxFreeVars (single-word mask).
const maxFreeVarsCap = 62

// Result is a solved toggle-mode machine.
type Result struct {
	// Presses holds one value in {0,1} per button: 1 means pressed.
	Presses []int

	// Weight is the number of pressed buttons (popcount of Presses) —
	// the quantity being minimized.
	Weight int
}

// Options configures the toggle-mode solver.
type Options struct {
	// MaxFreeVars caps the number of free variables the solver will
	// enumerate. Must lie in [1, 62]. Default: DefaultMaxFreeVars.
	MaxFreeVars int
}

// Option mutates Options; pass to Solve.
type Option func(*Options)

// DefaultOptions returns the documented solver defaults.
func DefaultOptions() Options {
	return Options{MaxFreeVars: DefaultMaxFreeVars}
}

// WithMaxFreeVars overrides the free-variable enumeration cap.
// Panics on n < 1 or n > 62: an impossible cap is a programmer error,
// not a runtime condition.
func WithMaxFreeVars(n int) Option {
	return func(o *Options) {
		if n < 1 || n > maxFreeVarsCap {
			panic(ErrFreeVarLimit.Error())
		}
		o.MaxFreeVars = n
	}
}
