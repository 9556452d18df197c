// Package mhs defines the ground vocabulary of minimal hitting set (MHS)
// problems: the SolutionSet, the Problem contract solvers implement, and
// the shared bookkeeping (the original conflict list vs. a per-solve
// working copy) every solver needs before it ever touches a graph.
//
// What:
//
//   - SolutionSet[E]: a set of elements with is_hitting / is_minimal_hitting
//     verifiers against a collection of conflicts.
//   - Problem[E]: the contract a solver (hsdag.Engine, rctree.Engine)
//     must satisfy: Solve, Reset, EnumerateSolutions, Verify.
//   - ProblemBase[E]: embeddable bookkeeping for the input conflict list
//     and the per-solve working copy (optionally sorted by cardinality).
//
// Why:
//
//   - Conflict sets identify component disagreements (Reiter 1987); their
//     minimal hitting sets are the minimum-cardinality diagnoses.
//   - Separating SolutionSet/ProblemBase from the graph-construction
//     algorithms keeps hsdag and rctree free to share one arena
//     implementation (graphstore) while differing only in how they grow it.
//
// Errors:
//
//	ErrInvalidState - a contract violation: relabeling an already-ticked node.
package mhs
