package rctree

import (
	"cmp"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mhsdiag/minihit/graphstore"
	"github.com/mhsdiag/minihit/mhsrender"
)

// Render walks the current construction tree and writes it to w as a DOT
// digraph, with each node's caption additionally carrying θ and θ_c.
func (e *Engine[E]) Render(w io.Writer) error {
	var nodes []mhsrender.NodeView
	var edges []mhsrender.EdgeView

	if e.hasRoot {
		for n := range e.store.BFSFrom(e.root) {
			nodes = append(nodes, mhsrender.NodeView{ID: int(n.ID()), Caption: caption(n)})

			children := n.Children()
			edgeLabels := make([]E, 0, len(children))
			for edge := range children {
				edgeLabels = append(edgeLabels, edge)
			}
			sort.Slice(edgeLabels, func(i, j int) bool { return edgeLabels[i] < edgeLabels[j] })
			for _, edge := range edgeLabels {
				edges = append(edges, mhsrender.EdgeView{
					FromID: int(n.ID()),
					ToID:   int(children[edge]),
					Label:  fmt.Sprint(edge),
				})
			}
		}
	}

	return mhsrender.Render(w, nodes, edges)
}

func caption[E cmp.Ordered](n *graphstore.Node[E, thetaData[E]]) string {
	var label string
	switch {
	case n.IsTicked():
		label = "✓"
	case n.Label() == nil:
		label = "<nil>"
	default:
		sorted := sortedLabel(n.Label())
		strs := make([]string, len(sorted))
		for i, e := range sorted {
			strs[i] = fmt.Sprint(e)
		}
		label = "{" + strings.Join(strs, ", ") + "}"
	}

	path := n.PathFromRoot()
	pathStrs := make([]string, len(path))
	for i, e := range path {
		pathStrs[i] = fmt.Sprint(e)
	}

	return fmt.Sprintf("L: %s\nP: {%s}\nθ: %s\nθc: %s",
		label, strings.Join(pathStrs, ", "), setString(n.Ext.theta), setString(n.Ext.thetaC))
}

func setString[E comparable](set map[E]struct{}) string {
	strs := make([]string, 0, len(set))
	for e := range set {
		strs = append(strs, fmt.Sprint(e))
	}
	sort.Strings(strs)
	return "{" + strings.Join(strs, ", ") + "}"
}
