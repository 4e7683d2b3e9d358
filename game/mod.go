package game

// Action is an opaque move identifier. The searchers only compare and return
// actions; what an action means is up to the State that produced it.
type Action interface{}

// State should be immutable - operations on State always return a new copy.
// Agent 0 is the controlled agent, agents 1..NumAgents()-1 move after it in
// increasing order.
type State interface {
	// LegalActions returns the moves available to agent. An empty result
	// means the agent cannot move, which the searchers treat as a leaf.
	LegalActions(agent int) []Action
	Successor(agent int, action Action) State
	NumAgents() int
	IsWin() bool
	IsLose() bool
	Score() float64
}

// Observable exposes the positional features used by EvaluateBetter.
type Observable interface {
	State
	AgentPosition() Position
	Food() []Position
	Capsules() []Position
	Ghosts() []Ghost
}

// Position is a (column, row) cell on the maze grid.
type Position struct {
	X int
	Y int
}

// Ghost is the public view of a non-controlled agent.
type Ghost struct {
	Position    Position
	ScaredTimer int
}

// Scared reports whether the ghost can currently be eaten.
func (g Ghost) Scared() bool {
	return g.ScaredTimer != 0
}

// Evaluate scores a state from the controlled agent's perspective, higher is
// better.
type Evaluate func(State) float64
