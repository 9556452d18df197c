// File: node.go
// Role: Node[E,X] — a single vertex of the HS-DAG/RC-Tree construction
// graph: path-from-root, label (or ticked/closed state), and the edges
// to its parents and children.
//
// Invariants:
//  1. ticked => label == nil and no outgoing children are ever added.
//  2. closed => some ticked ancestor-or-prefix path is a strict subset of
//     path-from-root (enforced by the engine, not by Node itself).
//  3. A non-ticked, non-closed node with some unhit conflict carries that
//     conflict as its label.
package graphstore

import (
	"cmp"
	"fmt"
	"sort"
	"strings"

	"github.com/mhsdiag/minihit/mhs"
)

// NodeID is a stable handle into a Store's arena. The zero value never
// denotes a valid node; Store.Alloc always returns a positive ID.
type NodeID int

// Node is one vertex of the construction graph. X carries engine-specific
// extension data: struct{} for HS-DAG, or RC-Tree's θ/θ_c sets.
type Node[E cmp.Ordered, X any] struct {
	id       NodeID
	path     map[E]struct{}
	label    []E
	closed   bool
	ticked   bool
	parents  map[E]NodeID
	children map[E]NodeID

	// Ext holds the engine-specific payload attached to this node.
	Ext X
}

func newNode[E cmp.Ordered, X any](id NodeID, ext X) *Node[E, X] {
	return &Node[E, X]{
		id:       id,
		path:     make(map[E]struct{}),
		parents:  make(map[E]NodeID),
		children: make(map[E]NodeID),
		Ext:      ext,
	}
}

// ID returns the node's stable arena index.
func (n *Node[E, X]) ID() NodeID { return n.id }

// PathFromRoot returns the union of edge labels on a root-to-n path,
// sorted ascending. In a correctly built DAG every root-to-n path yields
// the same set.
func (n *Node[E, X]) PathFromRoot() []E {
	out := make([]E, 0, len(n.path))
	for e := range n.path {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// PathContains reports whether e is part of this node's path-from-root.
func (n *Node[E, X]) PathContains(e E) bool {
	_, ok := n.path[e]
	return ok
}

// PathLen reports the cardinality of the path-from-root set.
func (n *Node[E, X]) PathLen() int { return len(n.path) }

// PathEqual reports whether n's path-from-root equals the given set,
// exactly.
func (n *Node[E, X]) PathEqual(path map[E]struct{}) bool {
	if len(n.path) != len(path) {
		return false
	}
	for e := range path {
		if _, ok := n.path[e]; !ok {
			return false
		}
	}
	return true
}

// ToSolutionSet converts the path-from-root into an mhs.SolutionSet.
func (n *Node[E, X]) ToSolutionSet() mhs.SolutionSet[E] {
	s := mhs.NewSolutionSet[E]()
	for e := range n.path {
		s.Add(e)
	}
	return s
}

func (n *Node[E, X]) addToPath(e E) { n.path[e] = struct{}{} }

func (n *Node[E, X]) unionPath(path map[E]struct{}) {
	for e := range path {
		n.path[e] = struct{}{}
	}
}

// IsClosed reports whether n has been closed: some ticked path strictly
// dominates it.
func (n *Node[E, X]) IsClosed() bool { return n.closed }

// Close marks n as closed.
func (n *Node[E, X]) Close() { n.closed = true }

// IsTicked reports whether n's path-from-root is a hitting set.
func (n *Node[E, X]) IsTicked() bool { return n.ticked }

// Tick marks n as ticked: its path-from-root is a solution. Ticking
// clears the label (invariant 1: ticked => label == nil).
func (n *Node[E, X]) Tick() {
	n.label = nil
	n.ticked = true
}

// Label returns the conflict witnessing that n's path-from-root is not
// yet hitting, or nil if n is ticked (or not yet labeled).
func (n *Node[E, X]) Label() []E { return n.label }

// SetLabel assigns label to n. It fails with mhs.ErrInvalidState if n is
// already ticked; the algorithm itself
// never triggers this, since it only ticks in the no-label branch.
func (n *Node[E, X]) SetLabel(label []E) error {
	if n.ticked {
		return mhs.ErrInvalidState
	}
	n.label = label
	return nil
}

// IsOrphan reports whether n has no parents.
func (n *Node[E, X]) IsOrphan() bool { return len(n.parents) == 0 }

// IsChildless reports whether n has no children.
func (n *Node[E, X]) IsChildless() bool { return len(n.children) == 0 }

// IsNotInGraph reports whether n is both orphaned and childless: dead
// weight safe to drop from the arena's live list.
func (n *Node[E, X]) IsNotInGraph() bool { return n.IsOrphan() && n.IsChildless() }

// Parents returns the edge-label -> parent-NodeID map. Callers must treat
// it as read-only; mutate via the Store helpers instead.
func (n *Node[E, X]) Parents() map[E]NodeID { return n.parents }

// Children returns the edge-label -> child-NodeID map. Same read-only
// contract as Parents.
func (n *Node[E, X]) Children() map[E]NodeID { return n.children }

func (n *Node[E, X]) addParent(edge E, parent NodeID)  { n.parents[edge] = parent }
func (n *Node[E, X]) addChild(edge E, child NodeID)    { n.children[edge] = child }
func (n *Node[E, X]) removeParent(edge E)              { delete(n.parents, edge) }
func (n *Node[E, X]) removeChild(edge E)               { delete(n.children, edge) }
func (n *Node[E, X]) clearChildren()                   { n.children = make(map[E]NodeID) }

// String renders n as "(Label: ..., Path: ...)", with "✓" standing in for
// a ticked label and a ", closed" suffix when applicable.
func (n *Node[E, X]) String() string {
	var label string
	if n.ticked {
		label = "✓"
	} else if n.label == nil {
		label = "<nil>"
	} else {
		sorted := make([]E, len(n.label))
		copy(sorted, n.label)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		strs := make([]string, len(sorted))
		for i, e := range sorted {
			strs[i] = fmt.Sprint(e)
		}
		label = "{" + strings.Join(strs, ", ") + "}"
	}

	pathStrs := make([]string, 0, len(n.path))
	for _, e := range n.PathFromRoot() {
		pathStrs = append(pathStrs, fmt.Sprint(e))
	}
	path := "{" + strings.Join(pathStrs, ", ") + "}"

	suffix := ""
	if n.closed {
		suffix = ", closed"
	}
	return fmt.Sprintf("(Label: %s, Path: %s%s)", label, path, suffix)
}
