package main

import (
	"fmt"
	"os"

	"github.com/mhsdiag/minihit/mhsio"
)

// readConflicts parses path as a conflict-list file, or stdin if path is
// "" or "-".
func readConflicts(path string) ([][]int, error) {
	var r *os.File
	if path == "" || path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("minihit: opening %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	conflicts, err := mhsio.NewIntParser().Parse(r)
	if err != nil {
		return nil, err
	}
	return conflicts, nil
}
