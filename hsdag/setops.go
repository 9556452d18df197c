// File: setops.go
// Role: set-semantics helpers over conflict/label slices. A conflict (and
// a node's label) is a set of elements even though it is represented as a
// plain []E — these helpers keep that distinction explicit rather than
// accidentally depending on slice order.
package hsdag

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

// setEqual reports whether a and b contain the same elements, ignoring order.
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

// strictSubset reports whether a is a strict subset of b, as sets.
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

// difference returns the elements of a that are not present in b, sorted
// ascending for deterministic trim order.
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

// sortedLabel returns a sorted copy of label, so that child generation
// visits a node's outgoing edges in a deterministic order.
func sortedLabel[E cmp.Ordered](label []E) []E {
	out := make([]E, len(label))
	copy(out, label)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
