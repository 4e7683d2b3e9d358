package searcher

import "multiagent/game"

// Expectimax models every other agent as choosing uniformly at random among
// its legal actions.
type Expectimax struct {
	config
}

func NewExpectimax(options ...Option) *Expectimax {
	return &Expectimax{config: newConfig(options)}
}

func (e *Expectimax) FindNextMove(state game.State) game.Action {
	return e.run(ExpectimaxName, state, func() result {
		return e.value(state, Controlled, 0)
	})
}

func (e *Expectimax) value(state game.State, agent, depth int) result {
	actions := state.LegalActions(agent)
	if len(actions) == 0 || depth >= e.depth {
		return e.leaf(state)
	}
	e.metrics.AddNode()

	nextAgent, nextDepth := advance(agent, depth, state.NumAgents())
	if agent != Controlled {
		return e.expectation(state, agent, actions, nextAgent, nextDepth)
	}

	var best result
	for i, action := range actions {
		child := e.value(state.Successor(agent, action), nextAgent, nextDepth)
		if i == 0 || improves(agent, child.value, best.value) {
			best = result{value: child.value, action: action}
		}
	}
	return best
}

// expectation averages the children of a chance node. The action is the
// last one enumerated and is never read by callers.
func (e *Expectimax) expectation(state game.State, agent int, actions []game.Action, nextAgent, nextDepth int) result {
	p := 1.0 / float64(len(actions))
	var expected result
	for _, action := range actions {
		child := e.value(state.Successor(agent, action), nextAgent, nextDepth)
		expected.value += p * child.value
		expected.action = action
	}
	return expected
}
