// Package minihit is your toolkit for computing minimal hitting sets over
// a conflict list.
//
// Given a list of sets Λ = {λ1, λ2, ...} (conflicts), a hitting set H is
// any set that intersects every λ in Λ; minihit builds the minimal ones —
// the hitting sets no proper subset of which is itself a hitting set.
//
// Two independent construction strategies live side by side:
//
//	hsdag/   — Reiter's HS-DAG, corrected per Greiner/Smith/Wilkerson:
//	           a DAG of candidate partial hitting sets, merging nodes that
//	           reach the same path and pruning subsumed labels as they're
//	           discovered.
//	rctree/  — Wotawa's RC-Tree: the same conflict-directed construction
//	           built as a tree instead, suppressing redundant children via
//	           per-node θ/θ_c bookkeeping rather than node reuse.
//
// Supporting packages:
//
//	mhs/        — the solver contract (Problem[E]) and SolutionSet, shared
//	              by both engines.
//	graphstore/ — the arena both engines build their construction graph on.
//	mhsio/      — conflict-list text parsing and synthetic generators.
//	mhsrender/  — DOT (Graphviz) rendering of a construction graph.
//	mhsbench/   — side-by-side comparison of both engines over one input.
//	cmd/minihit — a CLI wiring all of the above together.
//
// Quick example:
//
//	e := hsdag.New([][]int{{1, 3}, {1, 4}})
//	if _, err := e.Solve(true, false); err != nil {
//	    log.Fatal(err)
//	}
//	for s := range e.EnumerateSolutions() {
//	    fmt.Println(s) // {1} and {3, 4}
//	}
package minihit
