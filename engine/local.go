package engine

import (
	"fmt"
	"time"

	"multiagent/experiments/metrics"
	"multiagent/game"
	"multiagent/meta"
	"multiagent/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	Layout   string
	State    game.State
	Agents   []agent.Agent // Indexed by agent
	MaxMoves int
}

func LocalEngine(layout string, state game.State, agents []agent.Agent) *Engine {
	if len(agents) < 1 {
		panic("need at least one agent")
	}
	if len(agents) != state.NumAgents() {
		panic(fmt.Sprintf("number of agents %d does not match the state's %d", len(agents), state.NumAgents()))
	}

	return &Engine{
		Layout:   layout,
		State:    state,
		Agents:   agents,
		MaxMoves: meta.MAX_MOVES,
	}
}

// Run executes the game loop, each agent moving in index order.
func (e *Engine) Run() (Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		Layout:    e.Layout,
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Str("layout", e.Layout).Int("agents", len(e.Agents)).Msg("game started")

	outcome := Timeout
	turn := 0
	for step := 1; step <= e.MaxMoves; step++ {
		if e.State.IsWin() {
			outcome = Win
			break
		}
		if e.State.IsLose() {
			outcome = Lose
			break
		}

		action, searchMetric := e.Agents[turn].FindMove(e.State, turn)
		if action == nil {
			log.Debug().Int("agent", turn).Int("step", step).Msg("agent has no legal action")
			outcome = Stalemate
			break
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Agent:        turn,
			Action:       fmt.Sprint(action),
			SearchMetric: searchMetric,
		})

		e.State = e.State.Successor(turn, action)
		turn = (turn + 1) % len(e.Agents)
	}
	if outcome == Timeout {
		// The final move may have ended the game
		if e.State.IsWin() {
			outcome = Win
		} else if e.State.IsLose() {
			outcome = Lose
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Outcome = string(outcome)
	gameMetric.Score = e.State.Score()
	gameMetric.TotalMoves = len(moveMetrics)

	log.Debug().Str("outcome", string(outcome)).Float64("score", gameMetric.Score).Int("moves", gameMetric.TotalMoves).Msg("game over")

	return outcome, gameMetric, moveMetrics
}
