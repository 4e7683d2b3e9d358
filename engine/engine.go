package engine

import "multiagent/experiments/metrics"

type Outcome string

const (
	Win       Outcome = "win"
	Lose      Outcome = "lose"
	Stalemate Outcome = "stalemate" // The agent to move had no legal action
	Timeout   Outcome = "timeout"   // The move cap was reached
)

type Runner interface {
	// Run plays a game till it is won, lost, stuck or a max number of moves is reached
	Run() (outcome Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
