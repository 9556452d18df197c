package mhsrender

import (
	"fmt"
	"io"
	"strconv"
	"text/template"
)

// NodeView is one DOT node: a stable integer ID and a pre-formatted
// caption (label/✓, path, and for RC-Tree θ/θ_c — formatting is the
// engine's job, not this package's).
type NodeView struct {
	ID      int
	Caption string
}

// EdgeView is one DOT edge: the conflict element it was grown for, shown
// as the edge label.
type EdgeView struct {
	FromID int
	ToID   int
	Label  string
}

var dotTemplate = template.Must(template.New("dot").Funcs(template.FuncMap{
	"quote": strconv.Quote,
}).Parse(`digraph {
{{- range .Nodes}}
  {{.ID}} [label={{quote .Caption}}, shape=box];
{{- end}}
{{- range .Edges}}
  {{.FromID}} -> {{.ToID}} [label={{quote .Label}}];
{{- end}}
}
`))

type dotData struct {
	Nodes []NodeView
	Edges []EdgeView
}

// Render writes nodes and edges to w as a single DOT digraph.
func Render(w io.Writer, nodes []NodeView, edges []EdgeView) error {
	if err := dotTemplate.Execute(w, dotData{Nodes: nodes, Edges: edges}); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}
