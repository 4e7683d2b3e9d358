package experiments

import (
	"multiagent/experiments/metrics"
	"multiagent/searcher"
)

// RunDepthExperiment measures how search depth changes alpha-beta's play and
// node counts.
func RunDepthExperiment(opts Options) ([]metrics.Summary, error) {
	configs := []metrics.AgentConfig{
		{ID: 1, Searcher: searcher.AlphaBetaName, Depth: 1, Evaluation: "better"},
		{ID: 2, Searcher: searcher.AlphaBetaName, Depth: 2, Evaluation: "better"},
		{ID: 3, Searcher: searcher.AlphaBetaName, Depth: 3, Evaluation: "better"},
	}
	return runExperiment("depth", opts, configs)
}
