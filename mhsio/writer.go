package mhsio

import (
	"fmt"
	"io"
	"strings"
)

// WriteConflicts renders conflicts as the text format Parse reads back: one
// set per line, elements comma-separated, sets on the same call grouped one
// per line (never pipe-joined onto a shared line), matching how a
// hand-maintained fixture file is typically laid out.
func WriteConflicts[E any](w io.Writer, conflicts [][]E) error {
	for _, set := range conflicts {
		strs := make([]string, len(set))
		for i, e := range set {
			strs[i] = fmt.Sprint(e)
		}
		if _, err := fmt.Fprintln(w, strings.Join(strs, ",")); err != nil {
			return fmt.Errorf("mhsio: writing conflict line: %w", err)
		}
	}
	return nil
}
