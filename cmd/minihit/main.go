// Command minihit builds and inspects minimal hitting sets over a conflict
// list: solve, compare both construction engines, generate synthetic
// conflict lists, or render a construction graph as DOT.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
