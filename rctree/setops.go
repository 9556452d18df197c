// File: setops.go
// Role: set-semantics helpers over conflict/label slices and θ sets, mirroring
// hsdag's — duplicated rather than imported, since the two engines build on
// distinct graphstore.Store instantiations (struct{} vs thetaData[E]) and
// share no exported surface to hang common helpers off of.
package rctree

import (
	"cmp"
	"sort"
)

func toSet[E cmp.Ordered](elems []E) map[E]struct{} {
	set := make(map[E]struct{}, len(elems))
	for _, e := range elems {
		set[e] = struct{}{}
	}
	return set
}

func setEqual[E cmp.Ordered](a, b []E) bool {
	if len(a) != len(b) {
		return false
	}
	bSet := toSet(b)
	for _, e := range a {
		if _, ok := bSet[e]; !ok {
			return false
		}
	}
	return true
}

func strictSubset[E cmp.Ordered](a, b []E) bool {
	if len(a) >= len(b) {
		return false
	}
	bSet := toSet(b)
	for _, e := range a {
		if _, ok := bSet[e]; !ok {
			return false
		}
	}
	return true
}

func difference[E cmp.Ordered](a, b []E) []E {
	bSet := toSet(b)
	out := make([]E, 0, len(a))
	for _, e := range a {
		if _, ok := bSet[e]; !ok {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedLabel[E cmp.Ordered](label []E) []E {
	out := make([]E, len(label))
	copy(out, label)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// sortedSetKeys returns the keys of a set map sorted ascending, for
// deterministic iteration over θ during child generation.
func sortedSetKeys[E cmp.Ordered](set map[E]struct{}) []E {
	out := make([]E, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
