package searcher

import (
	"testing"

	"multiagent/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestMinimaxFindNextMove(t *testing.T) {
	t.Run("maximizing over minimizing children", func(t *testing.T) {
		root := branch(2,
			leaves(2, 3, 12, 8),
			leaves(2, 2, 4, 6),
			leaves(2, 14, 5, 2),
		)
		m := NewMinimax(WithDepth(1))

		require.Equal(t, 0, m.FindNextMove(root), "Should pick the action with the greatest minimum")
		require.Equal(t, 3.0, m.value(root, Controlled, 0).value, "Root value should be the best minimum")
	})

	t.Run("matching brute force enumeration on random trees", func(t *testing.T) {
		r := rand.New(rand.NewSource(7))
		for i := 0; i < 300; i++ {
			agents := 1 + r.Intn(3)
			rounds := 1 + r.Intn(2)
			root := randomTree(r, agents, agents*rounds+1)
			if len(root.children) == 0 {
				continue
			}

			expected := bruteForce(root, rounds)
			action := NewMinimax(WithDepth(rounds)).FindNextMove(root)

			best := expected[0]
			for _, v := range expected {
				best = max(best, v)
			}
			require.Equal(t, best, expected[action.(int)], "Chosen action should achieve the minimax value")
			require.Equal(t, firstIndex(expected, best), action, "Chosen action should be the first optimal one")
		}
	})

	t.Run("breaking ties by enumeration order", func(t *testing.T) {
		root := leaves(1, 5, 5, 5)

		require.Equal(t, 0, NewMinimax(WithDepth(1)).FindNextMove(root), "First of equal actions should win")
	})

	t.Run("breaking minimizer ties by enumeration order", func(t *testing.T) {
		node := leaves(2, 1, 4, 1)

		got := NewMinimax(WithDepth(1)).value(node, 1, 0)

		require.Equal(t, 0, got.action, "First of equal minima should win")
		require.Equal(t, 1.0, got.value)
	})

	t.Run("counting depth in rounds", func(t *testing.T) {
		successors := 0
		root := chain(3, 10, &successors)
		m := NewMinimax(WithDepth(2), WithMetrics())

		m.FindNextMove(root)

		require.Equal(t, 6, successors, "3 agents and depth 2 should play 6 agent-turns")
		require.Equal(t, 6, m.Metrics().Nodes, "Every agent-turn should expand one node")
		require.Equal(t, 1, m.Metrics().Leaves, "Only the cut-off should be evaluated")
		require.Equal(t, 2, m.Metrics().Depth)
		require.Equal(t, MinimaxName, m.Metrics().Searcher)
	})

	t.Run("evaluating the root with non-positive depth", func(t *testing.T) {
		for _, depth := range []int{0, -3} {
			successors := 0
			root := chain(2, 4, &successors)
			m := NewMinimax(WithDepth(depth), WithMetrics())

			require.Nil(t, m.FindNextMove(root), "Root cut-off should not return an action")
			require.Zero(t, successors, "Root cut-off should not recurse")
			require.Equal(t, 1, m.Metrics().Leaves, "Root should be evaluated once")
		}
	})

	t.Run("returning nil without legal actions", func(t *testing.T) {
		require.Nil(t, NewMinimax().FindNextMove(&mockState{agents: 2}))
	})

	t.Run("panicking without agents", func(t *testing.T) {
		require.Panics(t, func() {
			NewMinimax().FindNextMove(leaves(0, 1, 2))
		}, "Should panic when the state has no agents")
	})

	t.Run("using the evaluation function at leaves", func(t *testing.T) {
		root := leaves(1, 1, 2, 3)
		negate := func(s game.State) float64 { return -s.Score() }

		require.Equal(t, 0, NewMinimax(WithDepth(1), WithEvaluationFn(negate)).FindNextMove(root))
	})
}

func TestAdvance(t *testing.T) {
	t.Run("moving to the next agent within a round", func(t *testing.T) {
		agent, depth := advance(1, 0, 3)
		require.Equal(t, 2, agent)
		require.Equal(t, 0, depth)
	})

	t.Run("wrapping to the controlled agent after the last agent", func(t *testing.T) {
		agent, depth := advance(2, 0, 3)
		require.Equal(t, Controlled, agent)
		require.Equal(t, 1, depth)
	})

	t.Run("completing a round every turn with a single agent", func(t *testing.T) {
		agent, depth := advance(0, 4, 1)
		require.Equal(t, Controlled, agent)
		require.Equal(t, 5, depth)
	})
}

func TestNew(t *testing.T) {
	t.Run("creating searchers by name", func(t *testing.T) {
		for name, expected := range map[string]Searcher{
			MinimaxName:    &Minimax{},
			AlphaBetaName:  &AlphaBeta{},
			ExpectimaxName: &Expectimax{},
			GreedyName:     &Greedy{},
		} {
			s, err := New(name, WithDepth(3))
			require.NoError(t, err)
			require.IsType(t, expected, s)
		}
	})

	t.Run("rejecting unknown names", func(t *testing.T) {
		_, err := New("mcts")
		require.Error(t, err)
	})

	t.Run("defaulting depth and evaluation", func(t *testing.T) {
		m := NewMinimax(WithEvaluationFn(nil))
		require.Equal(t, 2, m.depth)
		require.NotNil(t, m.evaluate)
	})
}

func firstIndex(values []float64, target float64) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return -1
}
