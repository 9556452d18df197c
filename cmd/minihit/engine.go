package main

import (
	"fmt"
	"io"

	"github.com/mhsdiag/minihit/hsdag"
	"github.com/mhsdiag/minihit/mhs"
	"github.com/mhsdiag/minihit/rctree"
)

// renderable is the subset of mhs.Problem[int] plus DOT rendering both
// hsdag.Engine[int] and rctree.Engine[int] satisfy; neither exposes Render
// through mhs.Problem, since DOT output is a collaborator concern, not an
// algorithmic one.
type renderable interface {
	mhs.Problem[int]
	Render(w io.Writer) error
}

func buildEngine(name string, conflicts [][]int) (renderable, error) {
	switch name {
	case "hsdag":
		return hsdag.New(conflicts), nil
	case "rctree":
		return rctree.New(conflicts), nil
	default:
		return nil, fmt.Errorf("minihit: unknown engine %q (want hsdag or rctree)", name)
	}
}
