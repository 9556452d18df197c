package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	renderInputPath  string
	renderOutputPath string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Solve a conflict list and emit its construction graph as DOT",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderInputPath, "input", "i", "-", "conflict-list file (default: stdin)")
	renderCmd.Flags().StringVarP(&renderOutputPath, "output", "o", "-", "DOT output file (default: stdout)")
}

func runRender(cmd *cobra.Command, args []string) error {
	rf := resolveFlags(cmd)

	conflicts, err := readConflicts(renderInputPath)
	if err != nil {
		return err
	}

	engine, err := buildEngine(rf.engine, conflicts)
	if err != nil {
		return err
	}
	if _, err := engine.Solve(rf.prune, rf.sort); err != nil {
		return err
	}

	var w *os.File
	if renderOutputPath == "" || renderOutputPath == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(renderOutputPath)
		if err != nil {
			return fmt.Errorf("minihit: creating %s: %w", renderOutputPath, err)
		}
		defer f.Close()
		w = f
	}

	return engine.Render(w)
}
