// Package graphstore provides the arena that HS-DAG and RC-Tree build
// their construction graphs in: nodes referenced by stable integer
// indices, a breadth-first traversal over a live arena, and the
// path-from-root bookkeeping shared by both algorithms.
//
// What:
//
//   - NodeID: a stable, small-integer handle into the arena.
//   - Node[E,X]: label, closed/ticked flags, parent/child edge maps, and
//     an engine-specific extension payload X (struct{} for HS-DAG,
//     θ/θ_c bookkeeping for RC-Tree) so both engines share one node and
//     arena implementation without Go inheritance.
//   - Store[E,X]: owns node lifetime, exposes Alloc/Get/Detach, the ordered
//     "live" list of processed nodes that closing and pruning scans
//     iterate, and a lazy breadth-first traversal over a node's children
//     (used for enumeration, node counting and sub-graph trimming).
//
// Why:
//
//   - A language-neutral arena + stable indices sidesteps reference-cycle
//     and ownership concerns that a pointer-cyclic DAG would otherwise
//     raise.
//   - Sharing one Store implementation between hsdag and rctree lets both
//     engines reuse the same construction-graph mechanics without either
//     depending on the other.
package graphstore
