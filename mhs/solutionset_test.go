package mhs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mhsdiag/minihit/mhs"
)

func TestSolutionSet_IsHitting_EmptySetNeverHits(t *testing.T) {
	empty := mhs.NewSolutionSet[int]()
	assert.False(t, empty.IsHitting([][]int{{1, 2}}))
	assert.False(t, empty.IsHitting(nil))
}

func TestSolutionSet_IsHitting(t *testing.T) {
	conflicts := [][]int{{1, 3}, {1, 4}}

	hitting := mhs.SolutionSetOf(1)
	assert.True(t, hitting.IsHitting(conflicts))

	notHitting := mhs.SolutionSetOf(3)
	assert.False(t, notHitting.IsHitting(conflicts))

	hittingBoth := mhs.SolutionSetOf(3, 4)
	assert.True(t, hittingBoth.IsHitting(conflicts))
}

func TestSolutionSet_IsMinimalHitting(t *testing.T) {
	conflicts := [][]int{{1, 3}, {1, 4}}

	minimal := mhs.SolutionSetOf(1)
	assert.True(t, minimal.IsMinimalHitting(conflicts))

	notMinimal := mhs.SolutionSetOf(1, 3)
	assert.False(t, notMinimal.IsMinimalHitting(conflicts),
		"3 is not needed: removing it still hits every conflict")

	minimalPair := mhs.SolutionSetOf(3, 4)
	assert.True(t, minimalPair.IsMinimalHitting(conflicts))

	assert.False(t, mhs.NewSolutionSet[int]().IsMinimalHitting(conflicts))
}

func TestSolutionSet_IsMinimalHitting_EveryElementNeeded(t *testing.T) {
	// H.is_minimal_hitting(Λ) ⇒ H.is_hitting(Λ) ∧ ∀e∈H. (H\{e}).is_hitting(Λ) = false.
	conflicts := [][]int{{1, 2}, {3, 4}, {1, 2, 5}}
	h := mhs.SolutionSetOf(1, 3)
	assert.True(t, h.IsMinimalHitting(conflicts))
	assert.True(t, h.IsHitting(conflicts))
	for _, e := range h.Elements() {
		remainder := h.Clone()
		remainder.Remove(e)
		assert.False(t, remainder.IsHitting(conflicts),
			"removing needed element %v must break hitting-ness", e)
	}
}

func TestSolutionSet_Equal(t *testing.T) {
	a := mhs.SolutionSetOf(1, 2, 3)
	b := mhs.SolutionSetOf(3, 2, 1)
	c := mhs.SolutionSetOf(1, 2)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestSolutionSet_StrictSubset(t *testing.T) {
	small := mhs.SolutionSetOf(1)
	big := mhs.SolutionSetOf(1, 2)
	equal := mhs.SolutionSetOf(1)
	assert.True(t, small.IsStrictSubsetOf(big))
	assert.False(t, big.IsStrictSubsetOf(small))
	assert.False(t, small.IsStrictSubsetOf(equal))
}

func TestSolutionSet_String(t *testing.T) {
	s := mhs.SolutionSetOf(3, 1, 2)
	assert.Equal(t, "{1, 2, 3}", s.String())
	assert.Equal(t, "{}", mhs.NewSolutionSet[int]().String())
}

func TestSolutionSet_ZeroValueAddLazilyAllocates(t *testing.T) {
	var s mhs.SolutionSet[int]
	s.Add(42)
	assert.True(t, s.Contains(42))
	assert.Equal(t, 1, s.Len())
}
