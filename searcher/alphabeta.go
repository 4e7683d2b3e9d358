package searcher

import (
	"math"

	"multiagent/game"
)

// AlphaBeta returns the same action as Minimax while skipping subtrees that
// cannot change it.
type AlphaBeta struct {
	config
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{config: newConfig(options)}
}

func (a *AlphaBeta) FindNextMove(state game.State) game.Action {
	return a.findNextMove(state, math.Inf(-1), math.Inf(1))
}

func (a *AlphaBeta) findNextMove(state game.State, alpha, beta float64) game.Action {
	return a.run(AlphaBetaName, state, func() result {
		return a.value(state, Controlled, 0, alpha, beta)
	})
}

// value threads alpha, the best value the controlled agent can guarantee on
// the current path, and beta, the best the other agents can guarantee.
func (a *AlphaBeta) value(state game.State, agent, depth int, alpha, beta float64) result {
	actions := state.LegalActions(agent)
	if len(actions) == 0 || depth >= a.depth {
		return a.leaf(state)
	}
	a.metrics.AddNode()

	nextAgent, nextDepth := advance(agent, depth, state.NumAgents())
	var best result
	for i, action := range actions {
		if i > 0 {
			if agent == Controlled {
				if best.value > beta {
					a.metrics.AddPrune()
					return best
				}
				alpha = math.Max(alpha, best.value)
			} else {
				if best.value < alpha {
					a.metrics.AddPrune()
					return best
				}
				beta = math.Min(beta, best.value)
			}
		}

		child := a.value(state.Successor(agent, action), nextAgent, nextDepth, alpha, beta)
		if i == 0 || improves(agent, child.value, best.value) {
			best = result{value: child.value, action: action}
		}
	}
	return best
}
