package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	logger  = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	rootCmd = &cobra.Command{
		Use:   "minihit",
		Short: "Minimal hitting set construction over a conflict list",
		Long: `minihit builds minimal hitting sets from a conflict list using either
the HS-DAG or RC-Tree construction strategy, and can compare the two,
generate synthetic conflict lists, or render a construction graph as DOT.`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML); flags always override it")
	rootCmd.PersistentFlags().Bool("prune", true, "apply label pruning during construction (closing always applies)")
	rootCmd.PersistentFlags().Bool("sort", false, "process conflicts sorted by ascending cardinality (forces prune off)")
	rootCmd.PersistentFlags().String("engine", "hsdag", `construction engine: "hsdag" or "rctree"`)

	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(renderCmd)
}

// initConfig loads the optional YAML config file into viper. Its values
// only supply defaults: resolveFlags, run per command, lets any flag the
// user set explicitly take precedence over them.
func initConfig() {
	if cfgFile == "" {
		return
	}
	viper.SetConfigFile(cfgFile)
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "minihit: reading config %s: %v\n", cfgFile, err)
		os.Exit(1)
	}
}

// resolvedFlags merges persistent flags over viper-loaded config over
// built-in defaults: flags > --config YAML > defaults.
type resolvedFlags struct {
	prune  bool
	sort   bool
	engine string
}

func resolveFlags(cmd *cobra.Command) resolvedFlags {
	rf := resolvedFlags{prune: true, sort: false, engine: "hsdag"}

	if viper.IsSet("prune") {
		rf.prune = viper.GetBool("prune")
	}
	if viper.IsSet("sort") {
		rf.sort = viper.GetBool("sort")
	}
	if viper.IsSet("engine") {
		rf.engine = viper.GetString("engine")
	}

	if cmd.Flags().Changed("prune") {
		rf.prune, _ = cmd.Flags().GetBool("prune")
	}
	if cmd.Flags().Changed("sort") {
		rf.sort, _ = cmd.Flags().GetBool("sort")
	}
	if cmd.Flags().Changed("engine") {
		rf.engine, _ = cmd.Flags().GetString("engine")
	}

	return rf
}
