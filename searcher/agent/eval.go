package agent

import (
	"fmt"

	"multiagent/experiments/metrics"
	"multiagent/game"
	"multiagent/searcher"
)

type searchAgent struct {
	searcher searcher.Searcher
}

// NewSearchAgent returns an agent that plays the controlled agent with s.
func NewSearchAgent(s searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindMove(state game.State, index int) (game.Action, metrics.SearchMetric) {
	if index != searcher.Controlled {
		panic(fmt.Sprintf("search agent can only play agent %d, got %d", searcher.Controlled, index))
	}
	action := a.searcher.FindNextMove(state)
	return action, a.searcher.Metrics()
}
