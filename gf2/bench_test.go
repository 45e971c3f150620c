package gf2_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/minpress/gf2"
	"github.com/katalvlaran/minpress/machine"
)

// benchMachine builds a deterministic pseudo-random machine with the
// given shape; seed fixed so every run benchmarks identical work.
func benchMachine(b *testing.B, nlights, nbuttons int) *machine.Machine {
	b.Helper()
	rng := rand.New(rand.NewSource(7))
	var (
		target  = make([]int, nlights)
		buttons = make([][]int, nbuttons)
	)
	for i := range target {
		target[i] = rng.Intn(2)
	}
	for j := range buttons {
		for i := 0; i < nlights; i++ {
			if rng.Intn(2) == 1 {
				buttons[j] = append(buttons[j], i)
			}
		}
	}
	m, err := machine.New(target, buttons)
	if err != nil {
		b.Fatal(err)
	}
	return m
}

func BenchmarkReduce_32x32(b *testing.B) {
	m := benchMachine(b, 32, 32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a, err := gf2.NewAugmented(m)
		if err != nil {
			b.Fatal(err)
		}
		_ = a.Reduce()
	}
}

func BenchmarkSolve_24Buttons(b *testing.B) {
	m := benchMachine(b, 20, 24)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gf2.Solve(m); err != nil && err != gf2.ErrUnsolvable {
			b.Fatal(err)
		}
	}
}
