package rctree_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhsdiag/minihit/hsdag"
	"github.com/mhsdiag/minihit/mhs"
	"github.com/mhsdiag/minihit/rctree"
)

func solutionStrings(e *rctree.Engine[int]) []string {
	var out []string
	for s := range e.EnumerateSolutions() {
		out = append(out, s.String())
	}
	sort.Strings(out)
	return out
}

func expectedStrings(sets ...mhs.SolutionSet[int]) []string {
	out := make([]string, len(sets))
	for i, s := range sets {
		out[i] = s.String()
	}
	sort.Strings(out)
	return out
}

func TestEngine_Solve_SmallFixtures(t *testing.T) {
	cases := []struct {
		name      string
		conflicts [][]int
		expected  []mhs.SolutionSet[int]
	}{
		{
			name:      "two overlapping pairs",
			conflicts: [][]int{{1, 3}, {1, 4}},
			expected:  []mhs.SolutionSet[int]{mhs.SolutionSetOf(1), mhs.SolutionSetOf(3, 4)},
		},
		{
			name:      "singleton forces an element",
			conflicts: [][]int{{3, 4, 5}, {1}},
			expected: []mhs.SolutionSet[int]{
				mhs.SolutionSetOf(1, 3), mhs.SolutionSetOf(1, 4), mhs.SolutionSetOf(1, 5),
			},
		},
		{
			name:      "redundant superset conflict",
			conflicts: [][]int{{1, 2}, {3, 4}, {1, 2, 5}},
			expected: []mhs.SolutionSet[int]{
				mhs.SolutionSetOf(1, 3), mhs.SolutionSetOf(1, 4),
				mhs.SolutionSetOf(2, 3), mhs.SolutionSetOf(2, 4),
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, prune := range []bool{false, true} {
				e := rctree.New(tc.conflicts)
				_, err := e.Solve(prune, false)
				require.NoError(t, err)

				assert.Equal(t, expectedStrings(tc.expected...), solutionStrings(e), "prune=%v", prune)
				assert.True(t, e.Verify(), "prune=%v", prune)
				assert.LessOrEqual(t, e.NodesInGraph(), e.NodesConstructed())
			}
		})
	}
}

func TestEngine_Solve_EightConflictFixture(t *testing.T) {
	conflicts := [][]int{
		{1, 2, 3, 4}, {3}, {2, 4}, {15}, {9, 2, 15}, {9, 3}, {8, 7}, {8, 9, 1, 7},
	}
	expected := []mhs.SolutionSet[int]{
		mhs.SolutionSetOf(8, 2, 3, 15),
		mhs.SolutionSetOf(2, 3, 7, 15),
		mhs.SolutionSetOf(8, 3, 4, 15),
		mhs.SolutionSetOf(3, 4, 7, 15),
	}

	e := rctree.New(conflicts)
	_, err := e.Solve(true, false)
	require.NoError(t, err)

	assert.Equal(t, expectedStrings(expected...), solutionStrings(e))
	assert.True(t, e.Verify())
}

func TestEngine_Solve_Linear4_3HasSeventeenSolutions(t *testing.T) {
	conflicts := [][]int{{1, 2, 3}, {3, 4, 5}, {5, 6, 7}, {7, 8, 9}}
	mustInclude := []mhs.SolutionSet[int]{
		mhs.SolutionSetOf(3, 7),
		mhs.SolutionSetOf(1, 4, 7),
		mhs.SolutionSetOf(1, 5, 8),
		mhs.SolutionSetOf(2, 4, 6, 8),
		mhs.SolutionSetOf(2, 4, 6, 9),
	}

	for _, prune := range []bool{false, true} {
		e := rctree.New(conflicts)
		_, err := e.Solve(prune, false)
		require.NoError(t, err)

		got := solutionStrings(e)
		assert.Len(t, got, 17, "prune=%v", prune)
		assert.True(t, e.Verify(), "prune=%v", prune)

		gotSet := make(map[string]struct{}, len(got))
		for _, s := range got {
			gotSet[s] = struct{}{}
		}
		for _, want := range mustInclude {
			_, ok := gotSet[want.String()]
			assert.True(t, ok, "prune=%v missing expected solution %s", prune, want)
		}
	}
}

func TestEngine_Solve_EmptyConflictListYieldsNoSolutions(t *testing.T) {
	e := rctree.New[int](nil)
	_, err := e.Solve(false, false)
	require.NoError(t, err)

	assert.Empty(t, solutionStrings(e))
	assert.True(t, e.Verify())
}

func TestEngine_Solve_ConflictSetContainingEmptySetYieldsNoSolutionsAlongThatBranch(t *testing.T) {
	e := rctree.New([][]int{{1, 2}, {}})
	_, err := e.Solve(false, false)
	require.NoError(t, err)

	assert.Empty(t, solutionStrings(e))
	assert.True(t, e.Verify())
}

func TestEngine_Reset_ClearsGraphAndCounters(t *testing.T) {
	e := rctree.New([][]int{{1, 3}, {1, 4}})
	_, err := e.Solve(true, false)
	require.NoError(t, err)
	require.NotZero(t, e.NodesConstructed())

	e.Reset()
	assert.Zero(t, e.NodesConstructed())
	assert.Zero(t, e.NodesInGraph())
	assert.Empty(t, solutionStrings(e))
}

func TestEngine_Solve_SortForcesOffPruneWithoutError(t *testing.T) {
	e := rctree.New([][]int{{1, 3}, {1, 4}})
	_, err := e.Solve(true, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"{1}", "{3, 4}"}, solutionStrings(e))
}

// TestAgreement_HsDagAndRcTreeProduceTheSameSolutionSet checks the
// cross-engine property both construction strategies must share: over the
// same conflict list, they enumerate exactly the same set of minimal
// hitting sets, regardless of how they get there internally.
func TestAgreement_HsDagAndRcTreeProduceTheSameSolutionSet(t *testing.T) {
	fixtures := [][][]int{
		{{1, 3}, {1, 4}},
		{{3, 4, 5}, {1}},
		{{1, 2}, {3, 4}, {1, 2, 5}},
		{{1, 2, 3, 4}, {3}, {2, 4}, {15}, {9, 2, 15}, {9, 3}, {8, 7}, {8, 9, 1, 7}},
		{{1, 2, 3}, {3, 4, 5}, {5, 6, 7}, {7, 8, 9}},
	}

	for i, conflicts := range fixtures {
		for _, prune := range []bool{false, true} {
			dag := hsdag.New(conflicts)
			_, err := dag.Solve(prune, false)
			require.NoError(t, err)

			tree := rctree.New(conflicts)
			_, err = tree.Solve(prune, false)
			require.NoError(t, err)

			var dagStrings []string
			for s := range dag.EnumerateSolutions() {
				dagStrings = append(dagStrings, s.String())
			}
			sort.Strings(dagStrings)

			assert.Equal(t, dagStrings, solutionStrings(tree), "fixture %d, prune=%v", i, prune)
		}
	}
}
