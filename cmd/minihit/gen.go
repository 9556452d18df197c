package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhsdiag/minihit/mhsio"
)

var (
	genKind           string
	genOutputPath     string
	genAmount         int
	genMaxCardinality int
	genStep           int
	genSeed           int64
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: `Generate a synthetic conflict list ("random" or "linear")`,
	RunE:  runGen,
}

func init() {
	genCmd.Flags().StringVarP(&genKind, "kind", "k", "linear", `generator: "random" or "linear"`)
	genCmd.Flags().StringVarP(&genOutputPath, "output", "o", "-", "output file (default: stdout)")
	genCmd.Flags().IntVarP(&genAmount, "amount", "n", 4, "number of conflicts (both kinds)")
	genCmd.Flags().IntVar(&genMaxCardinality, "max-cardinality", 8, `max element value and draw count ("random" only)`)
	genCmd.Flags().IntVar(&genStep, "step", 3, `window size ("linear" only)`)
	genCmd.Flags().Int64Var(&genSeed, "seed", 1, `RNG seed ("random" only)`)
}

func runGen(cmd *cobra.Command, args []string) error {
	var conflicts [][]int
	switch genKind {
	case "random":
		conflicts = mhsio.GenerateRandom(genAmount, genMaxCardinality, mhsio.WithSeed(genSeed))
	case "linear":
		conflicts = mhsio.GenerateLinear(genAmount, genStep)
	default:
		return fmt.Errorf("minihit: unknown generator kind %q (want random or linear)", genKind)
	}

	var w *os.File
	if genOutputPath == "" || genOutputPath == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(genOutputPath)
		if err != nil {
			return fmt.Errorf("minihit: creating %s: %w", genOutputPath, err)
		}
		defer f.Close()
		w = f
	}

	return mhsio.WriteConflicts(w, conflicts)
}
