// Package mhsrender renders a constructed graph (HS-DAG or RC-Tree) as
// Graphviz DOT text: one node per vertex reachable from the root, captioned with its
// label (or ✓ once ticked) and path-from-root, and one edge per surviving
// parent-child link, captioned with the conflict element it was grown for.
//
// Node and edge data are collected by the caller (hsdag.Engine.Render,
// rctree.Engine.Render) into NodeView/EdgeView — engine-agnostic value
// types — since the two engines' Store instantiations differ and neither
// exposes its internals to a third package. mhsrender only ever templates
// text; it never walks a graph itself.
package mhsrender
