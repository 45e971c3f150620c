// Package minpress solves button-press minimization puzzles: given a bank
// of buttons wired to lights or counters, find the cheapest sequence of
// presses that reaches an exact target configuration.
//
// 🚀 What is minpress?
//
//	Each input line describes one independent "machine": a target state
//	plus a set of buttons, where every button touches a fixed subset of
//	positions. minpress answers two flavours of the same question:
//	  • Toggle mode — lights flip on each press (arithmetic over GF(2));
//	    minimize the number of pressed buttons.
//	  • Counter mode — counters gain +1 per press (non-negative integer
//	    arithmetic); minimize the total number of presses.
//
// ✨ Key features:
//   - exact GF(2) solver: word-packed Gauss–Jordan elimination plus
//     free-variable bitmask enumeration
//   - integer solver: fraction-free elimination over math/big with a
//     bounded, pruned search across free variables
//   - explicit Solved/Unsolvable outcomes — no infinity sentinels
//   - deterministic, allocation-conscious, log-free library packages
//
// Under the hood, everything is organized into four subpackages:
//
//	machine/ — immutable machine model + input-line parser
//	gf2/     — toggle-mode elimination & minimum-weight solver
//	intlin/  — counter-mode elimination & bounded minimum-weight solver
//	batch/   — per-puzzle aggregation of machine outcomes
//
// Quick example line:
//
//	[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
//
// which minpress solves to 2 presses in toggle mode and 10 in counter mode.
//
// The cmd/minpress CLI wires the pieces together: parse a puzzle file,
// solve every machine in both modes, and print the two totals.
//
//	go get github.com/katalvlaran/minpress
package minpress
