package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var solveInputPath string

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Parse a conflict list and print its minimal hitting sets",
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&solveInputPath, "input", "i", "-", "conflict-list file (default: stdin)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	rf := resolveFlags(cmd)

	conflicts, err := readConflicts(solveInputPath)
	if err != nil {
		return err
	}

	engine, err := buildEngine(rf.engine, conflicts)
	if err != nil {
		return err
	}

	elapsed, err := engine.Solve(rf.prune, rf.sort)
	if err != nil {
		return err
	}

	for s := range engine.EnumerateSolutions() {
		fmt.Println(s.String())
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "nodes constructed: %d, nodes in graph: %d, elapsed: %.6fs, verified: %v\n",
		engine.NodesConstructed(), engine.NodesInGraph(), elapsed, engine.Verify())
	return nil
}
