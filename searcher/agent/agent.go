package agent

import (
	"multiagent/experiments/metrics"
	"multiagent/game"
)

type Agent interface {
	// FindMove returns the action for agent index in state and performance
	// metrics (if collected) from the decision process
	FindMove(state game.State, index int) (game.Action, metrics.SearchMetric)
}
