package agent

import (
	"multiagent/experiments/metrics"
	"multiagent/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rand *rand.Rand
}

// NewRandomAgent returns an agent choosing uniformly among its legal actions,
// the behavior Expectimax assumes of the other agents.
func NewRandomAgent(r *rand.Rand) Agent {
	return randomAgent{rand: r}
}

func (a randomAgent) FindMove(state game.State, index int) (game.Action, metrics.SearchMetric) {
	actions := state.LegalActions(index)
	if len(actions) == 0 {
		return nil, metrics.SearchMetric{}
	}
	return actions[a.rand.Intn(len(actions))], metrics.SearchMetric{}
}
