package searcher

import (
	"multiagent/game"
	"multiagent/utils"
)

// Greedy ranks the controlled agent's immediate successors by the evaluation
// function and picks uniformly at random among the best. It ignores depth.
type Greedy struct {
	config
}

func NewGreedy(options ...Option) *Greedy {
	return &Greedy{config: newConfig(options)}
}

func (g *Greedy) FindNextMove(state game.State) game.Action {
	return g.run(GreedyName, state, func() result {
		actions := state.LegalActions(Controlled)
		if len(actions) == 0 {
			return g.leaf(state)
		}
		g.metrics.AddNode()

		scores := make([]float64, len(actions))
		for i, action := range actions {
			scores[i] = g.leaf(state.Successor(Controlled, action)).value
		}
		best := utils.MaxIndices(scores)
		chosen := best[g.rand.Intn(len(best))]
		return result{value: scores[chosen], action: actions[chosen]}
	})
}
