package searcher

import "multiagent/game"

// Minimax maximizes for the controlled agent and minimizes for every other
// agent.
type Minimax struct {
	config
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{config: newConfig(options)}
}

func (m *Minimax) FindNextMove(state game.State) game.Action {
	return m.run(MinimaxName, state, func() result {
		return m.value(state, Controlled, 0)
	})
}

func (m *Minimax) value(state game.State, agent, depth int) result {
	actions := state.LegalActions(agent)
	if len(actions) == 0 || depth >= m.depth {
		return m.leaf(state)
	}
	m.metrics.AddNode()

	nextAgent, nextDepth := advance(agent, depth, state.NumAgents())
	var best result
	for i, action := range actions {
		child := m.value(state.Successor(agent, action), nextAgent, nextDepth)
		if i == 0 || improves(agent, child.value, best.value) {
			best = result{value: child.value, action: action}
		}
	}
	return best
}
