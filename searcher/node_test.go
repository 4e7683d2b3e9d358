package searcher

import (
	"multiagent/game"

	"golang.org/x/exp/rand"
)

// mockState is a synthetic game tree. Every agent sees the same children and
// actions are their indices.
type mockState struct {
	agents     int
	score      float64
	children   []*mockState
	successors *int // Counts Successor calls across the whole tree
}

func (m *mockState) LegalActions(agent int) []game.Action {
	actions := make([]game.Action, len(m.children))
	for i := range m.children {
		actions[i] = i
	}
	return actions
}

func (m *mockState) Successor(agent int, action game.Action) game.State {
	if m.successors != nil {
		*m.successors++
	}
	return m.children[action.(int)]
}

func (m *mockState) NumAgents() int { return m.agents }
func (m *mockState) IsWin() bool    { return false }
func (m *mockState) IsLose() bool   { return false }
func (m *mockState) Score() float64 { return m.score }

// leaves builds a node whose children are leaves with the given scores.
func leaves(agents int, scores ...float64) *mockState {
	node := &mockState{agents: agents}
	for _, s := range scores {
		node.children = append(node.children, &mockState{agents: agents, score: s})
	}
	return node
}

func branch(agents int, children ...*mockState) *mockState {
	return &mockState{agents: agents, children: children}
}

// chain builds a path of length with a single action per node, sharing one
// successor counter.
func chain(agents, length int, counter *int) *mockState {
	root := &mockState{agents: agents, successors: counter}
	node := root
	for i := 0; i < length; i++ {
		child := &mockState{agents: agents, score: float64(i + 1), successors: counter}
		node.children = []*mockState{child}
		node = child
	}
	return root
}

// randomTree builds a tree of the given height. Nodes may stop early, and
// scores are small integers so ties are common.
func randomTree(r *rand.Rand, agents, height int) *mockState {
	node := &mockState{agents: agents, score: float64(r.Intn(10))}
	if height == 0 || r.Intn(8) == 0 {
		return node
	}
	n := 1 + r.Intn(3)
	for i := 0; i < n; i++ {
		node.children = append(node.children, randomTree(r, agents, height-1))
	}
	return node
}

// bruteForce computes the minimax value of every root action by full
// enumeration to the given number of rounds.
func bruteForce(root *mockState, rounds int) []float64 {
	var values []float64
	for _, child := range root.children {
		turns := rounds*root.agents - 1
		values = append(values, enumerate(child, 1%root.agents, turns))
	}
	return values
}

func enumerate(node *mockState, agent, turns int) float64 {
	if turns == 0 || len(node.children) == 0 {
		return node.score
	}
	values := make([]float64, len(node.children))
	for i, child := range node.children {
		values[i] = enumerate(child, (agent+1)%node.agents, turns-1)
	}
	extreme := values[0]
	for _, v := range values[1:] {
		if (agent == 0 && v > extreme) || (agent != 0 && v < extreme) {
			extreme = v
		}
	}
	return extreme
}
