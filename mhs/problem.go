// File: problem.go
// Role: the solver contract (Problem[E]) and the bookkeeping every solver
// shares (ProblemBase[E]) before it ever touches a graph: the immutable
// input conflict list and a per-solve working copy, optionally sorted by
// cardinality.
package mhs

import (
	"cmp"
	"iter"
	"sort"
)

// Problem is the contract a minimal-hitting-set solver must satisfy.
// hsdag.Engine and rctree.Engine both implement it.
type Problem[E cmp.Ordered] interface {
	// Solve runs the algorithm that finds the minimal hitting sets for the
	// conflict list, populating the internal graph, and returns the
	// elapsed wall-clock duration. prune ∧ sort forces prune off
	// internally.
	Solve(prune, sort bool) (float64, error)

	// Reset discards the graph and zeroes the constructed-node counter.
	Reset()

	// EnumerateSolutions lazily yields the minimal hitting sets found by
	// the last Solve call, in breadth-first order.
	EnumerateSolutions() iter.Seq[SolutionSet[E]]

	// Verify re-derives each enumerated solution and checks it against the
	// original (never the working) conflict list with IsMinimalHitting.
	Verify() bool

	// NodesConstructed counts every node ever allocated, including ones
	// later trimmed out of the graph.
	NodesConstructed() int

	// NodesInGraph counts nodes reachable from the root right now.
	NodesInGraph() int
}

// ProblemBase holds the input conflict list and, during a Solve call, the
// working copy the algorithm actually scans. It is meant to be embedded
// by concrete engines (hsdag.Engine, rctree.Engine), not used standalone.
type ProblemBase[E cmp.Ordered] struct {
	conflicts [][]E // immutable input; never mutated in place
	working   [][]E // per-solve copy, optionally sorted by cardinality
}

// NewProblemBase constructs a ProblemBase over conflicts. The slice (and
// its inner slices) is defensively copied so the solver never mutates the
// caller's data.
func NewProblemBase[E cmp.Ordered](conflicts [][]E) ProblemBase[E] {
	cloned := make([][]E, len(conflicts))
	for i, c := range conflicts {
		cc := make([]E, len(c))
		copy(cc, c)
		cloned[i] = cc
	}
	return ProblemBase[E]{conflicts: cloned}
}

// Conflicts returns the original conflict list, defensively copied.
func (p *ProblemBase[E]) Conflicts() [][]E {
	out := make([][]E, len(p.conflicts))
	for i, c := range p.conflicts {
		cc := make([]E, len(c))
		copy(cc, c)
		out[i] = cc
	}
	return out
}

// PrepareWorking clones the conflict list into the working copy that a
// solve pass scans, sorting it by non-decreasing cardinality (stable) if
// sort is true, or leaving input order intact otherwise. It returns the
// prepared working list for the caller's convenience.
func (p *ProblemBase[E]) PrepareWorking(sortByCardinality bool) [][]E {
	working := make([][]E, len(p.conflicts))
	for i, c := range p.conflicts {
		cc := make([]E, len(c))
		copy(cc, c)
		working[i] = cc
	}
	if sortByCardinality {
		sort.SliceStable(working, func(i, j int) bool {
			return len(working[i]) < len(working[j])
		})
	}
	p.working = working
	return p.working
}

// Working returns the current working conflict list (nil outside a solve
// pass, or after ResetWorking has reclaimed it).
func (p *ProblemBase[E]) Working() [][]E {
	return p.working
}

// ResetWorking discards the working conflict list: it is released as soon
// as solve completes, since enumeration only needs the constructed graph,
// not the conflicts that built it.
func (p *ProblemBase[E]) ResetWorking() {
	p.working = nil
}

// RemoveWorkingLabel deletes the first conflict in the working list whose
// elements match label exactly, as sets (order-independent). A no-op if no
// such conflict is present. Used when a shorter label found later in the
// construction retroactively replaces a longer one: the longer conflict
// has nothing left to teach the remaining build.
func (p *ProblemBase[E]) RemoveWorkingLabel(label []E) {
	target := make(map[E]struct{}, len(label))
	for _, e := range label {
		target[e] = struct{}{}
	}

	idx := -1
search:
	for i, c := range p.working {
		if len(c) != len(label) {
			continue
		}
		for _, e := range c {
			if _, ok := target[e]; !ok {
				continue search
			}
		}
		idx = i
		break
	}
	if idx >= 0 {
		p.working = append(p.working[:idx], p.working[idx+1:]...)
	}
}

// VerifyAll re-checks every solution yielded by solutions against
// conflicts using IsMinimalHitting, short-circuiting on the first
// mismatch. Shared by hsdag.Engine.Verify and rctree.Engine.Verify so
// both solvers verify identically against the *original* conflict list.
func VerifyAll[E cmp.Ordered](conflicts [][]E, solutions iter.Seq[SolutionSet[E]]) bool {
	for candidate := range solutions {
		if !candidate.IsMinimalHitting(conflicts) {
			return false
		}
	}
	return true
}
