// File: engine.go
// Role: Engine[E] — the mhs.Problem[E] implementation: the main FIFO
// construction loop (Solve), solution enumeration, and verification.
// Node-level mechanics (closing, labeling, pruning, child generation) live
// in prune.go.
package hsdag

import (
	"cmp"
	"iter"
	"time"

	"github.com/mhsdiag/minihit/graphstore"
	"github.com/mhsdiag/minihit/mhs"
)

var _ mhs.Problem[int] = (*Engine[int])(nil)

// Engine builds the HS-DAG for a fixed conflict list and answers queries
// against the resulting graph. The zero value is not usable; construct one
// with New.
type Engine[E cmp.Ordered] struct {
	mhs.ProblemBase[E]

	store   *graphstore.Store[E, struct{}]
	pending []graphstore.NodeID
	root    graphstore.NodeID
	hasRoot bool
}

// New builds an Engine over conflicts. The conflict list is copied; later
// mutating the caller's slices has no effect on the engine.
func New[E cmp.Ordered](conflicts [][]E) *Engine[E] {
	return &Engine[E]{
		ProblemBase: mhs.NewProblemBase(conflicts),
		store:       graphstore.NewStore[E, struct{}](),
	}
}

// Reset discards the construction graph and the constructed-node counter,
// returning the Engine to its pre-Solve state.
func (e *Engine[E]) Reset() {
	e.store.Reset()
	e.ResetWorking()
	e.pending = nil
	e.root = 0
	e.hasRoot = false
}

// Solve builds the HS-DAG for the engine's conflict list and returns the
// elapsed wall-clock time. sort forces prune off (a sorted working list
// already minimizes branching, and the two strategies are not meant to be
// combined). An empty conflict list yields no solutions at all: there is
// nothing to hit, so even the empty set has nothing to witness. A
// conflict that is itself the empty set can never be hit (the empty set is
// disjoint from every set, including itself), so any branch reaching it
// labels with ∅, grows no children, and never ticks.
func (e *Engine[E]) Solve(prune, sortByCardinality bool) (float64, error) {
	start := time.Now()
	e.Reset()

	if len(e.Conflicts()) == 0 {
		return time.Since(start).Seconds(), nil
	}

	if sortByCardinality {
		prune = false
	}

	e.PrepareWorking(sortByCardinality)
	e.build(prune)
	e.ResetWorking()

	return time.Since(start).Seconds(), nil
}

// build runs the breadth-first construction loop: pop a pending node,
// attempt to close it against an already-ticked ancestor path, label it
// against the working conflict list (or tick it if every conflict is hit),
// optionally prune the longer labels of already-processed nodes, then grow
// its children.
func (e *Engine[E]) build(prune bool) {
	root := e.store.Alloc(struct{}{})
	e.root = root.ID()
	e.hasRoot = true
	e.pending = append(e.pending, root.ID())

	for len(e.pending) > 0 {
		id := e.pending[0]
		e.pending = e.pending[1:]

		n := e.store.Get(id)
		if n == nil {
			// Trimmed out of the arena while still queued: dead weight,
			// nothing left to process.
			continue
		}

		e.attemptClose(n)
		if n.IsClosed() {
			e.removeClosedNode(n)
			continue
		}

		e.labelNode(n)

		if prune && len(e.store.Live()) != 0 {
			e.prune(n)
			if n.IsNotInGraph() {
				// n was itself collateral damage of trimming a shared
				// ancestor's sub-DAG during this very pass.
				continue
			}
		}

		if n.Label() != nil {
			e.createChildren(n)
		}
		e.store.Commit(n.ID())
	}
}

// EnumerateSolutions yields the path-from-root of every ticked node
// reachable from the root, breadth-first. Nodes orphaned by trimming are
// unreachable and so are never yielded, even if they were briefly ticked
// before being cut loose.
func (e *Engine[E]) EnumerateSolutions() iter.Seq[mhs.SolutionSet[E]] {
	return func(yield func(mhs.SolutionSet[E]) bool) {
		if !e.hasRoot {
			return
		}
		for n := range e.store.BFSFrom(e.root) {
			if !n.IsTicked() {
				continue
			}
			if !yield(n.ToSolutionSet()) {
				return
			}
		}
	}
}

// Verify re-derives each enumerated solution and checks it against the
// original conflict list with IsMinimalHitting.
func (e *Engine[E]) Verify() bool {
	return mhs.VerifyAll[E](e.Conflicts(), e.EnumerateSolutions())
}

// NodesConstructed counts every node ever allocated during the last Solve,
// including ones later trimmed out of the graph.
func (e *Engine[E]) NodesConstructed() int {
	return e.store.Constructed()
}

// NodesInGraph counts nodes reachable from the root right now.
func (e *Engine[E]) NodesInGraph() int {
	if !e.hasRoot {
		return 0
	}
	return e.store.CountReachable(e.root)
}
