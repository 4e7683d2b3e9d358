package game

import (
	"fmt"

	"multiagent/meta"
	"multiagent/utils"
)

// GridState is a snapshot of the maze game. Agent 0 collects food while
// agents 1..N-1 are ghosts.
type GridState struct {
	Maze      *Maze      // Reference to the static maze
	Positions []Position // Agent positions, indexed by agent
	Starts    []Position // Spawn cells, ghosts return here when eaten
	Timers    []int      // Scared timers, indexed by agent (index 0 unused)
	food      []bool     // Indexed like the maze walls
	foodLeft  int
	capsules  []Position
	score     float64
	won       bool
	lost      bool
}

func newGridState(m *Maze, agent Position, ghosts []Position, food []bool, capsules []Position) *GridState {
	positions := append([]Position{agent}, ghosts...)
	starts := make([]Position, len(positions))
	copy(starts, positions)

	foodLeft := 0
	for _, f := range food {
		if f {
			foodLeft++
		}
	}

	return &GridState{
		Maze:      m,
		Positions: positions,
		Starts:    starts,
		Timers:    make([]int, len(positions)),
		food:      food,
		foodLeft:  foodLeft,
		capsules:  capsules,
	}
}

// Copy returns a deep copy of the mutable parts of the state.
func (gs *GridState) Copy() *GridState {
	positions := make([]Position, len(gs.Positions))
	copy(positions, gs.Positions)

	timers := make([]int, len(gs.Timers))
	copy(timers, gs.Timers)

	food := make([]bool, len(gs.food))
	copy(food, gs.food)

	capsules := make([]Position, len(gs.capsules))
	copy(capsules, gs.capsules)

	return &GridState{
		Maze:      gs.Maze,   // Maze is immutable
		Starts:    gs.Starts, // Starts are immutable
		Positions: positions,
		Timers:    timers,
		food:      food,
		foodLeft:  gs.foodLeft,
		capsules:  capsules,
		score:     gs.score,
		won:       gs.won,
		lost:      gs.lost,
	}
}

func (gs *GridState) NumAgents() int {
	return len(gs.Positions)
}

func (gs *GridState) IsWin() bool {
	return gs.won
}

func (gs *GridState) IsLose() bool {
	return gs.lost
}

func (gs *GridState) Score() float64 {
	return gs.score
}

func (gs *GridState) AgentPosition() Position {
	return gs.Positions[0]
}

func (gs *GridState) Food() []Position {
	var food []Position
	for y := 0; y < gs.Maze.Height; y++ {
		for x := 0; x < gs.Maze.Width; x++ {
			p := Position{X: x, Y: y}
			if gs.food[gs.Maze.index(p)] {
				food = append(food, p)
			}
		}
	}
	return food
}

// FoodLeft returns the number of uneaten food cells.
func (gs *GridState) FoodLeft() int {
	return gs.foodLeft
}

func (gs *GridState) Capsules() []Position {
	capsules := make([]Position, len(gs.capsules))
	copy(capsules, gs.capsules)
	return capsules
}

func (gs *GridState) Ghosts() []Ghost {
	ghosts := make([]Ghost, 0, len(gs.Positions)-1)
	for i := 1; i < len(gs.Positions); i++ {
		ghosts = append(ghosts, Ghost{Position: gs.Positions[i], ScaredTimer: gs.Timers[i]})
	}
	return ghosts
}

// LegalActions returns the directions agent may take. The controlled agent
// may always Stop; ghosts only Stop when boxed in. Finished games have no
// legal actions for anyone.
func (gs *GridState) LegalActions(agent int) []Action {
	gs.checkAgent(agent)
	if gs.won || gs.lost {
		return nil
	}

	var actions []Action
	from := gs.Positions[agent]
	for _, d := range Directions {
		if d == Stop {
			continue
		}
		if !gs.Maze.IsWall(d.Apply(from)) {
			actions = append(actions, d)
		}
	}
	if agent == 0 || len(actions) == 0 {
		actions = append(actions, Stop)
	}
	return actions
}

// Successor returns the state after agent takes action. It panics on an
// illegal action, as the search only ever plays enumerated actions.
func (gs *GridState) Successor(agent int, action Action) State {
	gs.checkAgent(agent)
	if gs.won || gs.lost {
		panic("cannot generate a successor of a finished game")
	}
	d, ok := action.(Direction)
	if !ok || !gs.isLegal(agent, d) {
		panic(fmt.Sprintf("illegal action %v for agent %d", action, agent))
	}

	next := gs.Copy()
	next.Positions[agent] = d.Apply(gs.Positions[agent])

	if agent == 0 {
		next.moveAgent()
		for ghost := 1; ghost < len(next.Positions); ghost++ {
			next.checkCollision(ghost)
		}
	} else {
		if next.Timers[agent] > 0 {
			next.Timers[agent]--
		}
		next.checkCollision(agent)
	}

	return next
}

func (gs *GridState) moveAgent() {
	gs.score -= meta.TIME_PENALTY

	p := gs.Positions[0]
	if i := gs.Maze.index(p); gs.food[i] {
		gs.food[i] = false
		gs.foodLeft--
		gs.score += meta.FOOD_REWARD
		if gs.foodLeft == 0 && !gs.lost {
			gs.score += meta.WIN_REWARD
			gs.won = true
		}
	}

	for i, c := range gs.capsules {
		if c == p {
			gs.capsules = append(gs.capsules[:i], gs.capsules[i+1:]...)
			for ghost := 1; ghost < len(gs.Timers); ghost++ {
				gs.Timers[ghost] = meta.SCARED_TIME
			}
			break
		}
	}
}

func (gs *GridState) checkCollision(ghost int) {
	if gs.won || gs.lost || gs.Positions[ghost] != gs.Positions[0] {
		return
	}
	if gs.Timers[ghost] > 0 {
		gs.score += meta.GHOST_REWARD
		gs.Positions[ghost] = gs.Starts[ghost]
		gs.Timers[ghost] = 0
		return
	}
	gs.score -= meta.LOSE_PENALTY
	gs.lost = true
}

func (gs *GridState) isLegal(agent int, d Direction) bool {
	return utils.FindIndex(gs.LegalActions(agent), Action(d)) >= 0
}

func (gs *GridState) checkAgent(agent int) {
	if agent < 0 || agent >= len(gs.Positions) {
		panic(fmt.Sprintf("agent %d out of range [0, %d)", agent, len(gs.Positions)))
	}
}
