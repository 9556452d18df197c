// File: prune.go
// Role: the node-level mechanics of one construction pass: closing against
// a ticked ancestor, labeling against the working conflict list, pruning
// already-processed nodes' longer labels in favor of a newly found shorter
// one, and
// generating children from a label.
package hsdag

import (
	"github.com/mhsdiag/minihit/graphstore"
)

// attemptClose closes n if some already-built, ticked node's path-from-root
// is a strict subset of n's: n's path is then guaranteed to already be a
// superset of a known minimal hitting set, so expanding it further could
// only produce redundant, non-minimal supersets.
func (e *Engine[E]) attemptClose(n *graphstore.Node[E, struct{}]) {
	path := n.PathFromRoot()
	for _, m := range e.store.LiveNodes() {
		if !m.IsTicked() {
			continue
		}
		if strictSubset(m.PathFromRoot(), path) {
			n.Close()
			return
		}
	}
}

// removeClosedNode detaches n from every parent and frees it: a closed
// node contributes nothing further and, per invariant, was closed before
// it ever grew any children of its own.
func (e *Engine[E]) removeClosedNode(n *graphstore.Node[E, struct{}]) {
	parents := n.Parents()
	edges := make([]E, 0, len(parents))
	ids := make([]graphstore.NodeID, 0, len(parents))
	for edge, parentID := range parents {
		edges = append(edges, edge)
		ids = append(ids, parentID)
	}
	for i, edge := range edges {
		if parent := e.store.Get(ids[i]); parent != nil {
			e.store.DisconnectEdge(parent, edge)
		}
	}
	e.store.Delete(n.ID())
}

// labelNode assigns n the first working conflict its path-from-root does
// not already hit, or ticks n if every conflict is already hit.
func (e *Engine[E]) labelNode(n *graphstore.Node[E, struct{}]) {
	for _, conflict := range e.Working() {
		hit := false
		for _, elem := range conflict {
			if n.PathContains(elem) {
				hit = true
				break
			}
		}
		if !hit {
			_ = n.SetLabel(sortedLabel(conflict))
			return
		}
	}
	n.Tick()
}

// isLabelPreviouslyUsed reports whether pruning against n's label would be
// pointless: a ticked node has no label to compare, and an exact label
// match elsewhere means no *strict* subset relation (pruning's trigger)
// can hold.
func (e *Engine[E]) isLabelPreviouslyUsed(n *graphstore.Node[E, struct{}]) bool {
	if n.IsTicked() {
		return true
	}
	for _, m := range e.store.LiveNodes() {
		if m.Label() != nil && setEqual(n.Label(), m.Label()) {
			return true
		}
	}
	return false
}

// prune scans every already-built, non-ticked node for one whose label n's
// (shorter) label is a strict subset of, and relabels-and-trims it.
func (e *Engine[E]) prune(n *graphstore.Node[E, struct{}]) {
	if e.isLabelPreviouslyUsed(n) {
		return
	}
	for _, m := range e.store.LiveNodes() {
		if m.IsTicked() {
			continue
		}
		if strictSubset(n.Label(), m.Label()) {
			e.relabelAndTrim(n, m)
		}
	}
}

// relabelAndTrim replaces m's label with n's shorter one, trims the
// sub-DAG beneath every edge m had for a conflict element no longer in the
// new label, and retires the old, now-redundant conflict from the working
// list.
func (e *Engine[E]) relabelAndTrim(n, m *graphstore.Node[E, struct{}]) {
	oldLabel := m.Label()
	dropped := difference(oldLabel, n.Label())

	_ = m.SetLabel(append([]E(nil), n.Label()...))

	for _, elem := range dropped {
		childID, ok := e.store.DisconnectEdge(m, elem)
		if !ok {
			continue
		}
		e.trimSubdag(childID)
	}

	e.RemoveWorkingLabel(oldLabel)
}

// trimSubdag walks every node reachable from root (root itself included,
// already detached from its one dropped parent edge by the caller) and
// frees each node that has no parents left, severing its own children
// first. A node that still has another parent outside the trimmed region
// survives, together with its children.
func (e *Engine[E]) trimSubdag(root graphstore.NodeID) {
	for n := range e.store.BFSFrom(root) {
		if n.IsOrphan() {
			e.store.UnlinkChildren(n)
			e.store.Delete(n.ID())
		}
	}
}

// createChildren grows one child per element of n's label, in ascending
// order. A child whose resulting path-from-root matches an already-built
// or still-pending node is reused instead of duplicated, and is not
// re-queued for processing — only fresh nodes enter the pending queue.
func (e *Engine[E]) createChildren(n *graphstore.Node[E, struct{}]) {
	path := n.PathFromRoot()
	for _, elem := range n.Label() {
		pathSet := make(map[E]struct{}, len(path)+1)
		for _, p := range path {
			pathSet[p] = struct{}{}
		}
		pathSet[elem] = struct{}{}

		existing, ok := e.store.FindByPath(pathSet)
		for i := 0; !ok && i < len(e.pending); i++ {
			if p := e.store.Get(e.pending[i]); p != nil && p.PathEqual(pathSet) {
				existing, ok = p, true
			}
		}
		if ok {
			e.store.Connect(n, existing, elem)
			continue
		}

		child := e.store.Alloc(struct{}{})
		e.store.Connect(n, child, elem)
		e.pending = append(e.pending, child.ID())
	}
}
