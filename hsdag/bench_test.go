package hsdag_test

import (
	"testing"

	"github.com/mhsdiag/minihit/hsdag"
)

// linearChain builds the linear(n, step) conflict-list family used to stress
// node reuse and pruning: n overlapping windows of size step over a shared
// numbering, e.g. linear(4,3) = [{1,2,3},{3,4,5},{5,6,7},{7,8,9}].
func linearChain(n, step int) [][]int {
	conflicts := make([][]int, n)
	for i := 0; i < n; i++ {
		start := i*(step-1) + 1
		c := make([]int, step)
		for j := 0; j < step; j++ {
			c[j] = start + j
		}
		conflicts[i] = c
	}
	return conflicts
}

func BenchmarkEngine_Solve_Linear4_3(b *testing.B) {
	conflicts := linearChain(4, 3)
	for i := 0; i < b.N; i++ {
		e := hsdag.New(conflicts)
		if _, err := e.Solve(true, false); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEngine_Solve_Linear20_3_NoPrune(b *testing.B) {
	conflicts := linearChain(20, 3)
	for i := 0; i < b.N; i++ {
		e := hsdag.New(conflicts)
		if _, err := e.Solve(false, false); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEngine_Solve_Linear20_3_Pruned(b *testing.B) {
	conflicts := linearChain(20, 3)
	for i := 0; i < b.N; i++ {
		e := hsdag.New(conflicts)
		if _, err := e.Solve(true, false); err != nil {
			b.Fatal(err)
		}
	}
}
