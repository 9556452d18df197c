package mhsbench_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhsdiag/minihit/mhsbench"
)

func TestCompare_AgreesAcrossFixtures(t *testing.T) {
	fixtures := [][][]int{
		{{1, 3}, {1, 4}},
		{{3, 4, 5}, {1}},
		{{1, 2}, {3, 4}, {1, 2, 5}},
		{{1, 2, 3, 4}, {3}, {2, 4}, {15}, {9, 2, 15}, {9, 3}, {8, 7}, {8, 9, 1, 7}},
	}

	for _, conflicts := range fixtures {
		for _, prune := range []bool{false, true} {
			report, err := mhsbench.Compare(conflicts, prune, false)
			require.NoError(t, err)
			assert.True(t, report.Agree, "conflicts=%v prune=%v", conflicts, prune)
			assert.Equal(t, len(conflicts), report.ConflictCount)
			assert.LessOrEqual(t, report.NodesInGraphHSDAG, report.NodesConstructedHSDAG)
			assert.LessOrEqual(t, report.NodesInGraphRCTree, report.NodesConstructedRCTree)
		}
	}
}

func TestCompare_AgreesWhenAConflictIsTheEmptySet(t *testing.T) {
	report, err := mhsbench.Compare([][]int{{1, 2}, {}}, false, false)
	require.NoError(t, err)
	assert.True(t, report.Agree)
	assert.Empty(t, report.SolutionsHSDAG)
	assert.Empty(t, report.SolutionsRCTree)
}

func TestReport_Log_EmitsStructuredJSON(t *testing.T) {
	report, err := mhsbench.Compare([][]int{{1, 3}, {1, 4}}, true, false)
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	report.Log(logger)

	out := buf.String()
	assert.Contains(t, out, `"agree":true`)
	assert.Contains(t, out, `"algorithm comparison"`)
}
