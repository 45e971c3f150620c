// Package batch aggregates per-machine solver outcomes into the single
// scalar a puzzle instance asks for: the sum of minimum press weights
// across all machines, per mode.
//
// Machines are solved independently and sequentially; a machine the
// solver reports unsolvable (including budget-exceeded refusals) is
// excluded from the sum and counted in Total.Unsolved rather than
// failing the batch. Structural errors — a malformed machine — abort
// immediately with the machine's position attached.
package batch
