package searcher

import (
	"fmt"
	"time"

	"multiagent/experiments/metrics"
	"multiagent/game"
	"multiagent/meta"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Controlled is the index of the agent the searchers choose actions for.
const Controlled = 0

const (
	MinimaxName    = "minimax"
	AlphaBetaName  = "alphabeta"
	ExpectimaxName = "expectimax"
	GreedyName     = "greedy"
)

type Searcher interface {
	// FindNextMove returns the action for the controlled agent, or nil when
	// it has no legal action in state.
	FindNextMove(state game.State) game.Action
	// Metrics describes the most recent FindNextMove call.
	Metrics() metrics.SearchMetric
}

type Option func(c *config)

type config struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
	rand     *rand.Rand
	last     metrics.SearchMetric
}

// WithDepth sets the number of rounds searched. Zero or negative depths
// evaluate the root state directly.
func WithDepth(depth int) Option {
	return func(c *config) {
		c.depth = depth
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(c *config) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = metrics.NewCollector()
	}
}

// WithRand sets the source used to break ties in the greedy searcher.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rand = r
		}
	}
}

func newConfig(options []Option) config {
	c := config{ // Default values
		depth:    meta.DEFAULT_DEPTH,
		evaluate: game.EvaluateScore,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&c)
	}
	if c.rand == nil {
		c.rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return c
}

// New creates a searcher by name.
func New(name string, options ...Option) (Searcher, error) {
	switch name {
	case MinimaxName:
		return NewMinimax(options...), nil
	case AlphaBetaName:
		return NewAlphaBeta(options...), nil
	case ExpectimaxName:
		return NewExpectimax(options...), nil
	case GreedyName:
		return NewGreedy(options...), nil
	default:
		return nil, errors.Errorf("unknown searcher %q", name)
	}
}

func (c *config) Metrics() metrics.SearchMetric {
	return c.last
}

// run wraps a root search with the agent count check and metric collection.
func (c *config) run(name string, state game.State, search func() result) game.Action {
	checkAgents(state)

	c.metrics.Start(name, c.depth)
	root := search()
	c.last = c.metrics.Complete()

	if root.action == nil {
		log.Debug().Str("searcher", name).Msg("no legal action for the controlled agent")
	}
	return root.action
}

// leaf evaluates a cut-off node.
func (c *config) leaf(state game.State) result {
	c.metrics.AddLeaf()
	return result{value: c.evaluate(state)}
}

// result is the value of a search node and the action that achieves it.
type result struct {
	value  float64
	action game.Action
}

func checkAgents(state game.State) {
	if n := state.NumAgents(); n < 1 {
		panic(fmt.Sprintf("state must have at least one agent, got %d", n))
	}
}

// advance returns who moves after agent. A round ends after the last agent,
// which is the only point depth increases.
func advance(agent, depth, numAgents int) (nextAgent, nextDepth int) {
	if agent == numAgents-1 {
		return Controlled, depth + 1
	}
	return agent + 1, depth
}

// improves reports whether value replaces best for agent. Comparisons are
// strict so the first action reaching a value keeps it.
func improves(agent int, value, best float64) bool {
	if agent == Controlled {
		return value > best
	}
	return value < best
}
