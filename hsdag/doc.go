// Package hsdag implements the Hitting Set Dagger: Reiter's construction
// graph algorithm for enumerating minimal hitting sets, corrected by
// Greiner, Smith, and Wilkerson's node-reuse, closing, and pruning rules.
//
// The construction starts from a root node with the empty path-from-root
// and grows breadth-first: each node is labeled with a conflict its path
// does not yet hit, then gains one child per element of that label. A
// child whose path equals an already-built node's is reused rather than
// duplicated, turning the tree into a DAG. A node whose path already
// strictly contains some other ticked node's path is closed rather than
// expanded, and a freshly found shorter label can retroactively prune an
// already-built node's longer label, trimming the now-redundant sub-DAG
// beneath it.
//
// What:
//
//   - Engine[E]: the mhs.Problem[E] implementation. Embeds
//     mhs.ProblemBase[E] for the conflict bookkeeping and a
//     graphstore.Store[E, struct{}] for the construction graph itself —
//     HS-DAG attaches no extension data to a node, unlike RC-Tree's θ/θ_c.
//
// Why:
//
//   - Node reuse and pruning are what keep the construction graph's size
//     sub-exponential in practice; a naive tree of all label combinations
//     blows up far faster.
package hsdag
