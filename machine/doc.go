// Package machine defines the immutable model of one button-press puzzle
// machine and the parser for its single-line text form.
//
// A Machine couples a target vector (one value per light or counter) with
// an ordered bank of buttons, where each button lists the target indices
// it touches. The same button bank serves both solving modes:
//
//   - Toggle mode: targets are bits; a press flips every touched light.
//   - Counter mode: targets are non-negative integers; a press adds 1 to
//     every touched counter.
//
// Machines are validated on construction (index range, non-negative
// targets) and never mutated afterwards, so one Machine value may be
// shared freely between solvers.
//
// The input grammar, one machine per line:
//
//	[<diagram>] (<idx,idx,...>)+ {<value,value,...>}
//
// where <diagram> is a string of '#' (on) and '.' (off) giving the toggle
// target, each parenthesized group is one button, and the braced list is
// the counter target, parallel in length to the diagram. ParseLine yields
// a Pair holding one Machine per mode over the shared button bank.
package machine
