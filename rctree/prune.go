// File: prune.go
// Role: node-level mechanics of one construction pass. Closing, labeling,
// and the prune guard/scan mirror hsdag's; relabelAndTrim and
// createChildren are RC-Tree-specific, propagating θ/θ_c instead of
// reusing nodes.
package rctree

import (
	"github.com/mhsdiag/minihit/graphstore"
)

// attemptClose closes n if some already-built, ticked node's path-from-root
// is a strict subset of n's.
func (e *Engine[E]) attemptClose(n *graphstore.Node[E, thetaData[E]]) {
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

// removeClosedNode detaches n from its (single, tree-structured) parent and
// frees it.
func (e *Engine[E]) removeClosedNode(n *graphstore.Node[E, thetaData[E]]) {
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
func (e *Engine[E]) labelNode(n *graphstore.Node[E, thetaData[E]]) {
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

func (e *Engine[E]) isLabelPreviouslyUsed(n *graphstore.Node[E, thetaData[E]]) bool {
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

func (e *Engine[E]) prune(n *graphstore.Node[E, thetaData[E]]) {
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

// relabelAndTrim replaces m's label with n's shorter one. For each conflict
// element dropped from m's label, the edge is trimmed out of m, and every
// node still reachable under m has that element struck from its θ_c and θ
// recomputed, which can newly allow children that were previously
// suppressed.
func (e *Engine[E]) relabelAndTrim(n, m *graphstore.Node[E, thetaData[E]]) {
	oldLabel := m.Label()
	dropped := difference(oldLabel, n.Label())

	_ = m.SetLabel(append([]E(nil), n.Label()...))

	for _, elem := range dropped {
		if childID, ok := e.store.DisconnectEdge(m, elem); ok {
			e.trimSubdag(childID)
		}
		e.updateThetaAndRegrow(m, elem)
	}

	e.RemoveWorkingLabel(oldLabel)
}

// trimSubdag severs every node's children under root and frees whichever
// ones end up orphaned; RC-Tree nodes have a single parent, so every node
// in the subtree becomes an orphan and is freed.
func (e *Engine[E]) trimSubdag(root graphstore.NodeID) {
	for n := range e.store.BFSFrom(root) {
		e.store.UnlinkChildren(n)
		if n.IsOrphan() {
			e.store.Delete(n.ID())
		}
	}
}

// updateThetaAndRegrow walks every node still reachable from root
// (root itself, whose θ_c may have included the trimmed element, included),
// strikes removed from θ_c, recomputes θ = θ_c ∪ parent.θ, and re-derives
// children: since θ only ever shrinks here, label\θ only ever grows, so
// this can spawn newly-allowed children but never needs to remove one.
func (e *Engine[E]) updateThetaAndRegrow(root *graphstore.Node[E, thetaData[E]], removed E) {
	for d := range e.store.BFSFrom(root.ID()) {
		delete(d.Ext.thetaC, removed)

		theta := make(map[E]struct{}, len(d.Ext.thetaC))
		for k := range d.Ext.thetaC {
			theta[k] = struct{}{}
		}
		for _, parentID := range d.Parents() {
			if parent := e.store.Get(parentID); parent != nil {
				for k := range parent.Ext.theta {
					theta[k] = struct{}{}
				}
			}
		}
		d.Ext.theta = theta

		if d.Label() != nil {
			e.createChildren(d)
		}
	}
}

// createChildren grows a child for every label element not already
// prohibited by θ(n), in ascending order. Each new child's θ_c is the
// elements of n's label its older siblings (those already given an edge,
// including itself at the moment of its own creation) occupy; its θ is
// θ_c unioned with n's own θ.
func (e *Engine[E]) createChildren(n *graphstore.Node[E, thetaData[E]]) {
	generating := difference(n.Label(), sortedSetKeys(n.Ext.theta))
	if len(generating) == 0 {
		return
	}

	labelSet := toSet(n.Label())
	occupied := make(map[E]struct{}, len(n.Children())+len(generating))
	for edge := range n.Children() {
		occupied[edge] = struct{}{}
	}

	for _, elem := range generating {
		if _, already := n.Children()[elem]; already {
			continue
		}
		occupied[elem] = struct{}{}

		thetaC := make(map[E]struct{})
		for k := range labelSet {
			if _, ok := occupied[k]; ok {
				thetaC[k] = struct{}{}
			}
		}
		theta := make(map[E]struct{}, len(thetaC)+len(n.Ext.theta))
		for k := range thetaC {
			theta[k] = struct{}{}
		}
		for k := range n.Ext.theta {
			theta[k] = struct{}{}
		}

		child := e.store.Alloc(thetaData[E]{theta: theta, thetaC: thetaC})
		e.store.Connect(n, child, elem)
		e.pending = append(e.pending, child.ID())
	}
}
