package engine

import (
	"testing"

	"multiagent/game"
	"multiagent/searcher"
	"multiagent/searcher/agent"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestLocalEngine(t *testing.T) {
	t.Run("panicking on mismatched agents", func(t *testing.T) {
		state, err := game.Layout("open")
		require.NoError(t, err)

		require.Panics(t, func() {
			LocalEngine("open", state, []agent.Agent{agent.NewSearchAgent(searcher.NewMinimax())})
		}, "One agent cannot play a two-agent state")
	})
}

func TestEngineRun(t *testing.T) {
	t.Run("winning a corridor in one move", func(t *testing.T) {
		state, err := game.ParseLayout("%%%%%\n%P.G%\n%%%%%")
		require.NoError(t, err)
		e := LocalEngine("corridor", state, []agent.Agent{
			agent.NewSearchAgent(searcher.NewAlphaBeta(searcher.WithMetrics())),
			agent.NewRandomAgent(rand.New(rand.NewSource(1))),
		})

		outcome, gameMetric, moveMetrics := e.Run()

		require.Equal(t, Win, outcome)
		require.Equal(t, "win", gameMetric.Outcome)
		require.Equal(t, 509.0, gameMetric.Score, "Move cost, food and win reward")
		require.Equal(t, 1, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 1)
		require.Equal(t, "East", moveMetrics[0].Action)
		require.Equal(t, searcher.AlphaBetaName, moveMetrics[0].Searcher)
	})

	t.Run("finishing every game on a built-in layout", func(t *testing.T) {
		state, err := game.Layout("test")
		require.NoError(t, err)
		e := LocalEngine("test", state, []agent.Agent{
			agent.NewSearchAgent(searcher.NewExpectimax(searcher.WithDepth(2))),
			agent.NewRandomAgent(rand.New(rand.NewSource(5))),
		})
		e.MaxMoves = 200

		outcome, gameMetric, moveMetrics := e.Run()

		require.Contains(t, []Outcome{Win, Lose, Timeout}, outcome)
		require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
		require.LessOrEqual(t, gameMetric.TotalMoves, 200)
		for i, mm := range moveMetrics {
			require.Equal(t, i+1, mm.Step, "Steps should be consecutive")
			require.Equal(t, i%2, mm.Agent, "Agents should move in index order")
		}
	})

	t.Run("stopping at the move cap", func(t *testing.T) {
		state, err := game.Layout("open")
		require.NoError(t, err)
		e := LocalEngine("open", state, []agent.Agent{
			agent.NewRandomAgent(rand.New(rand.NewSource(2))),
			agent.NewRandomAgent(rand.New(rand.NewSource(3))),
		})
		e.MaxMoves = 2

		outcome, gameMetric, _ := e.Run()

		require.Equal(t, Timeout, outcome, "Two moves cannot finish the open layout")
		require.Equal(t, 2, gameMetric.TotalMoves)
	})

	t.Run("ending when the mover has no action", func(t *testing.T) {
		state, err := game.Layout("open")
		require.NoError(t, err)
		e := LocalEngine("open", state, []agent.Agent{
			agent.NewSearchAgent(searcher.NewMinimax(searcher.WithDepth(0))),
			agent.NewRandomAgent(rand.New(rand.NewSource(2))),
		})
		e.MaxMoves = 4

		outcome, gameMetric, _ := e.Run()

		require.Equal(t, Stalemate, outcome, "A depth 0 search returns no action")
		require.Zero(t, gameMetric.TotalMoves)
	})
}
