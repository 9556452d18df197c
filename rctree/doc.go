// Package rctree implements Wotawa's Reiter-Cached tree (RC-Tree): the same
// conflict-directed construction as hsdag, but trading node reuse for a
// tree with per-node θ/θ_c bookkeeping that suppresses generating a child
// the construction already knows would be redundant.
//
// Where hsdag collapses two nodes with equal path-from-root into one (node
// reuse, turning the construction into a DAG), rctree never merges nodes.
// Instead each node tracks θ(node): the set of conflict elements that a
// sibling edge at some ancestor already covers, so no child need be grown
// for them here. θ_c(node) is the slice of θ contributed by the node's own
// immediate parent — the two are threaded separately because a retroactive
// relabel-and-trim only ever narrows θ for the affected sub-tree, and
// θ_c is what that widening is computed from.
//
// What:
//
//   - Engine[E]: the mhs.Problem[E] implementation, structurally identical
//     to hsdag.Engine but built on graphstore.Store[E, thetaData[E]].
//
// Why:
//
//   - On conflict lists with heavy structural overlap, avoiding node reuse
//     (which requires an O(live-node-count) scan per child) in favor of
//     θ-propagation (an O(path-length) set check) can be cheaper; the two
//     engines exist side by side so a caller can pick whichever fits their
//     conflict list's shape, and so their outputs can be cross-checked.
package rctree
