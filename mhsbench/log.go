package mhsbench

import "github.com/rs/zerolog"

// Log writes r to logger as one structured comparison event.
func (r Report) Log(logger zerolog.Logger) {
	logger.Info().
		Int("conflicts", r.ConflictCount).
		Bool("agree", r.Agree).
		Float64("hsdag_elapsed_s", r.ElapsedHSDAG).
		Float64("rctree_elapsed_s", r.ElapsedRCTree).
		Float64("rctree_hsdag_runtime_pct", r.RuntimeRatioPercent()).
		Int("hsdag_nodes_constructed", r.NodesConstructedHSDAG).
		Int("rctree_nodes_constructed", r.NodesConstructedRCTree).
		Float64("rctree_hsdag_constructed_pct", r.NodesConstructedRatioPercent()).
		Int("hsdag_nodes_in_graph", r.NodesInGraphHSDAG).
		Int("rctree_nodes_in_graph", r.NodesInGraphRCTree).
		Float64("rctree_hsdag_nodes_pct", r.NodesInGraphRatioPercent()).
		Strs("hsdag_solutions", r.SolutionsHSDAG).
		Strs("rctree_solutions", r.SolutionsRCTree).
		Msg("algorithm comparison")
}
