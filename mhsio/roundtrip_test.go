package mhsio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhsdiag/minihit/mhsio"
)

// TestRoundTrip_WriteThenParseRecoversConflictList exercises the "parsing
// recovers the exact conflict list" property: writing a conflict list out
// and parsing it back must yield the same sets, in the same order.
func TestRoundTrip_WriteThenParseRecoversConflictList(t *testing.T) {
	original := [][]int{
		{1, 2, 3, 4}, {3}, {2, 4}, {15}, {2, 9, 15}, {3, 9}, {7, 8}, {1, 7, 8, 9},
	}

	var buf bytes.Buffer
	require.NoError(t, mhsio.WriteConflicts(&buf, original))

	p := mhsio.NewIntParser()
	got, err := p.Parse(strings.NewReader(buf.String()))
	require.NoError(t, err)

	assert.Equal(t, original, got)
}
