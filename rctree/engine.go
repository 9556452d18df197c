// File: engine.go
// Role: Engine[E] — the mhs.Problem[E] implementation for RC-Tree. Shares
// hsdag's overall FIFO construction loop (closing, labeling, pruning are
// unchanged in spirit) but builds a tree instead of a DAG, substituting
// θ/θ_c-based redundancy suppression for node reuse. Node-level mechanics
// live in prune.go.
package rctree

import (
	"cmp"
	"iter"
	"time"

	"github.com/mhsdiag/minihit/graphstore"
	"github.com/mhsdiag/minihit/mhs"
)

var _ mhs.Problem[int] = (*Engine[int])(nil)

// thetaData is the per-node extension payload RC-Tree attaches to every
// graphstore.Node: θ_c, the edge labels this node's older siblings already
// occupied at spawn time, and θ = θ_c ∪ parent.θ, the cumulative
// prohibition inherited down the tree.
type thetaData[E cmp.Ordered] struct {
	theta  map[E]struct{}
	thetaC map[E]struct{}
}

func newThetaData[E cmp.Ordered]() thetaData[E] {
	return thetaData[E]{theta: make(map[E]struct{}), thetaC: make(map[E]struct{})}
}

// Engine builds the RC-Tree for a fixed conflict list. The zero value is
// not usable; construct one with New.
type Engine[E cmp.Ordered] struct {
	mhs.ProblemBase[E]

	store   *graphstore.Store[E, thetaData[E]]
	pending []graphstore.NodeID
	root    graphstore.NodeID
	hasRoot bool
}

// New builds an Engine over conflicts. The conflict list is copied.
func New[E cmp.Ordered](conflicts [][]E) *Engine[E] {
	return &Engine[E]{
		ProblemBase: mhs.NewProblemBase(conflicts),
		store:       graphstore.NewStore[E, thetaData[E]](),
	}
}

// Reset discards the construction tree and the constructed-node counter.
func (e *Engine[E]) Reset() {
	e.store.Reset()
	e.ResetWorking()
	e.pending = nil
	e.root = 0
	e.hasRoot = false
}

// Solve builds the RC-Tree for the engine's conflict list and returns the
// elapsed wall-clock time. sort forces prune off, same as hsdag. An empty
// conflict list yields no solutions at all, and a conflict that is itself
// the empty set can never be hit, so any branch reaching it labels with ∅,
// grows no children, and never ticks.
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

func (e *Engine[E]) build(prune bool) {
	root := e.store.Alloc(newThetaData[E]())
	e.root = root.ID()
	e.hasRoot = true
	e.pending = append(e.pending, root.ID())

	for len(e.pending) > 0 {
		id := e.pending[0]
		e.pending = e.pending[1:]

		n := e.store.Get(id)
		if n == nil {
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
// reachable from the root, breadth-first.
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

// NodesConstructed counts every node ever allocated during the last Solve.
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
