// File: store.go
// Role: Store[E,X] — the arena owning every node's lifetime, plus the
// traversal and edge-mutation primitives both hsdag.Engine and
// rctree.Engine are built on.
//
// "Live" vs. arena membership: Store keeps two views of its nodes.
//   - byID holds every node ever allocated, addressable by NodeID, so
//     in-flight (pending, not-yet-finalized) nodes can still be linked
//     as parents/children while they are being processed.
//   - live is the ordered list of nodes that have finished one pass of
//     closing/labeling/pruning. Closing and pruning scans iterate Live()
//     in that order; HS-DAG node reuse checks Live() (via FindByPath) and
//     then its own pending queue.
package graphstore

import (
	"cmp"
	"iter"
)

// Store is the per-engine arena of Node[E,X] values.
type Store[E cmp.Ordered, X any] struct {
	byID   map[NodeID]*Node[E, X]
	live   []NodeID
	nextID NodeID

	// constructed counts every allocation ever made, including nodes
	// later trimmed out of the graph.
	constructed int
}

// NewStore returns an empty Store.
func NewStore[E cmp.Ordered, X any]() *Store[E, X] {
	return &Store[E, X]{byID: make(map[NodeID]*Node[E, X])}
}

// Alloc allocates a fresh node with the given extension payload, assigns
// it a new stable NodeID, and counts it toward Constructed. The node is
// not yet part of the "live" list; call Commit once it finishes its first
// closing/labeling/pruning pass.
func (s *Store[E, X]) Alloc(ext X) *Node[E, X] {
	s.nextID++
	n := newNode[E, X](s.nextID, ext)
	s.byID[n.id] = n
	s.constructed++
	return n
}

// Get retrieves a node by ID. It returns nil if the node was deleted.
func (s *Store[E, X]) Get(id NodeID) *Node[E, X] {
	return s.byID[id]
}

// Commit appends id to the live list at the end of a processing pass.
func (s *Store[E, X]) Commit(id NodeID) {
	s.live = append(s.live, id)
}

// Live returns the live node IDs in commit (processing) order.
func (s *Store[E, X]) Live() []NodeID {
	return s.live
}

// LiveNodes returns the live node objects in commit order.
func (s *Store[E, X]) LiveNodes() []*Node[E, X] {
	out := make([]*Node[E, X], 0, len(s.live))
	for _, id := range s.live {
		if n := s.byID[id]; n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Detach removes id from the live list (but not from the arena); used
// when a node is closed and thus excluded from future closing/pruning
// scans while it may still be visited via BFS from its remaining parents.
func (s *Store[E, X]) Detach(id NodeID) {
	for i, v := range s.live {
		if v == id {
			s.live = append(s.live[:i], s.live[i+1:]...)
			return
		}
	}
}

// Delete frees id from the arena entirely. Call only once a node has
// become an orphan (no parents) — it is no longer reachable from root.
func (s *Store[E, X]) Delete(id NodeID) {
	delete(s.byID, id)
	s.Detach(id)
}

// FindByPath scans the live list for a node whose path-from-root equals
// path exactly, supporting HS-DAG node reuse: collapsing
// two would-be-duplicate children into one shared node is what makes the
// construction a DAG rather than a tree.
func (s *Store[E, X]) FindByPath(path map[E]struct{}) (*Node[E, X], bool) {
	for _, id := range s.live {
		if n := s.byID[id]; n != nil && n.PathEqual(path) {
			return n, true
		}
	}
	return nil, false
}

// Constructed returns the count of every node ever allocated.
func (s *Store[E, X]) Constructed() int {
	return s.constructed
}

// Reset discards every node and zeroes the constructed counter
//.
func (s *Store[E, X]) Reset() {
	s.byID = make(map[NodeID]*Node[E, X])
	s.live = nil
	s.nextID = 0
	s.constructed = 0
}

// Connect links parent --edge--> child: registers the edge on both sides
// and extends child's path-from-root with parent's path plus edge.
func (s *Store[E, X]) Connect(parent, child *Node[E, X], edge E) {
	parent.addChild(edge, child.id)
	child.addParent(edge, parent.id)
	child.unionPath(parent.path)
	child.addToPath(edge)
}

// DisconnectEdge removes the outgoing edge labeled e from parent, and the
// matching incoming edge from whichever child it pointed to (if still
// present in the arena). It reports the former child's ID.
func (s *Store[E, X]) DisconnectEdge(parent *Node[E, X], edge E) (NodeID, bool) {
	childID, ok := parent.children[edge]
	if !ok {
		return 0, false
	}
	delete(parent.children, edge)
	if child := s.byID[childID]; child != nil {
		child.removeParent(edge)
	}
	return childID, true
}

// UnlinkChildren severs every outgoing edge of n, removing n as a parent
// from each former child, and clears n's children map.
func (s *Store[E, X]) UnlinkChildren(n *Node[E, X]) {
	for edge, childID := range n.children {
		if child := s.byID[childID]; child != nil {
			child.removeParent(edge)
		}
	}
	n.clearChildren()
}

// BFSFrom lazily walks the sub-graph reachable from root by following
// children edges, breadth-first, guarding against revisits by NodeID
// identity rather than structural path equality.
//
// Children are snapshotted into the pending queue before the node is
// yielded, not after. This lets a caller mutate (e.g. trim) a node's
// children from inside the loop body without starving the walk of
// children already captured.
func (s *Store[E, X]) BFSFrom(root NodeID) iter.Seq[*Node[E, X]] {
	return func(yield func(*Node[E, X]) bool) {
		if _, ok := s.byID[root]; !ok {
			return
		}
		queue := []NodeID{root}
		visited := map[NodeID]struct{}{root: {}}
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			n := s.byID[id]
			if n == nil {
				continue
			}
			for _, childID := range n.children {
				if _, seen := visited[childID]; !seen {
					visited[childID] = struct{}{}
					queue = append(queue, childID)
				}
			}
			if !yield(n) {
				return
			}
		}
	}
}

// CountReachable reports how many nodes BFSFrom(root) reaches — the
// "nodes_in_graph" metric, which is a live BFS count rather
// than len(byID), since a node with no remaining parents is logically
// dead even before Delete sweeps it.
func (s *Store[E, X]) CountReachable(root NodeID) int {
	count := 0
	for range s.BFSFrom(root) {
		count++
	}
	return count
}
