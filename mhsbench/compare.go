package mhsbench

import (
	"cmp"
	"iter"
	"sort"

	"github.com/mhsdiag/minihit/hsdag"
	"github.com/mhsdiag/minihit/mhs"
	"github.com/mhsdiag/minihit/rctree"
)

// Report summarizes one side-by-side run of both engines over the same
// conflict list.
type Report struct {
	ConflictCount int

	ElapsedHSDAG  float64
	ElapsedRCTree float64

	NodesConstructedHSDAG  int
	NodesConstructedRCTree int
	NodesInGraphHSDAG      int
	NodesInGraphRCTree     int

	SolutionsHSDAG  []string
	SolutionsRCTree []string
	Agree           bool
}

// RuntimeRatioPercent reports RC-Tree's elapsed time as a percentage of
// HS-DAG's. Returns 0 if HS-DAG's elapsed time is 0 (too fast to measure).
func (r Report) RuntimeRatioPercent() float64 {
	if r.ElapsedHSDAG == 0 {
		return 0
	}
	return r.ElapsedRCTree / r.ElapsedHSDAG * 100
}

// NodesConstructedRatioPercent reports RC-Tree's constructed-node count as
// a percentage of HS-DAG's.
func (r Report) NodesConstructedRatioPercent() float64 {
	if r.NodesConstructedHSDAG == 0 {
		return 0
	}
	return float64(r.NodesConstructedRCTree) / float64(r.NodesConstructedHSDAG) * 100
}

// NodesInGraphRatioPercent reports RC-Tree's final live-node count as a
// percentage of HS-DAG's.
func (r Report) NodesInGraphRatioPercent() float64 {
	if r.NodesInGraphHSDAG == 0 {
		return 0
	}
	return float64(r.NodesInGraphRCTree) / float64(r.NodesInGraphHSDAG) * 100
}

// Compare builds and solves both an hsdag.Engine and an rctree.Engine over
// conflicts with identical flags, and returns a Report comparing them. A
// non-nil error is whichever engine's Solve failed first (hsdag is tried
// first).
func Compare[E cmp.Ordered](conflicts [][]E, prune, sortByCardinality bool) (Report, error) {
	dag := hsdag.New(conflicts)
	elapsedHSDAG, err := dag.Solve(prune, sortByCardinality)
	if err != nil {
		return Report{}, err
	}

	tree := rctree.New(conflicts)
	elapsedRCTree, err := tree.Solve(prune, sortByCardinality)
	if err != nil {
		return Report{}, err
	}

	dagSolutions := solutionStrings[E](dag.EnumerateSolutions())
	treeSolutions := solutionStrings[E](tree.EnumerateSolutions())

	return Report{
		ConflictCount:          len(conflicts),
		ElapsedHSDAG:           elapsedHSDAG,
		ElapsedRCTree:          elapsedRCTree,
		NodesConstructedHSDAG:  dag.NodesConstructed(),
		NodesConstructedRCTree: tree.NodesConstructed(),
		NodesInGraphHSDAG:      dag.NodesInGraph(),
		NodesInGraphRCTree:     tree.NodesInGraph(),
		SolutionsHSDAG:         dagSolutions,
		SolutionsRCTree:        treeSolutions,
		Agree:                  equalStringSets(dagSolutions, treeSolutions),
	}, nil
}

func solutionStrings[E cmp.Ordered](seq iter.Seq[mhs.SolutionSet[E]]) []string {
	var out []string
	for s := range seq {
		out = append(out, s.String())
	}
	return out
}

func equalStringSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
