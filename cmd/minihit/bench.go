package main

import (
	"github.com/spf13/cobra"

	"github.com/mhsdiag/minihit/mhsbench"
)

var benchInputPath string

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run both engines over a conflict list and compare them",
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().StringVarP(&benchInputPath, "input", "i", "-", "conflict-list file (default: stdin)")
}

func runBench(cmd *cobra.Command, args []string) error {
	rf := resolveFlags(cmd)

	conflicts, err := readConflicts(benchInputPath)
	if err != nil {
		return err
	}

	report, err := mhsbench.Compare(conflicts, rf.prune, rf.sort)
	if err != nil {
		return err
	}

	report.Log(logger)
	return nil
}
