package game

import "github.com/pkg/errors"

// EvaluateScore returns the state's score unchanged. It is the default leaf
// evaluation for the adversarial searchers.
func EvaluateScore(s State) float64 {
	return s.Score()
}

// EvaluateBetter combines the score with distances to food, capsules and
// ghosts. Chasing ghosts are preferred far away, scared ghosts close by.
func EvaluateBetter(s State) float64 {
	gs, ok := s.(Observable)
	if !ok {
		panic("unexpected state type")
	}
	pos := gs.AgentPosition()
	food := gs.Food()

	score := 2 * gs.Score()
	score -= 5*float64(len(food)) + 10*float64(len(gs.Capsules()))

	for _, item := range food {
		score -= foodPenalty(ManhattanDistance(pos, item))
	}

	for _, ghost := range gs.Ghosts() {
		d := ManhattanDistance(pos, ghost.Position)
		if ghost.Scared() {
			score -= scaredGhostPenalty(d)
		} else {
			score += chasingGhostBonus(d)
		}
	}

	return score
}

func foodPenalty(distance int) float64 {
	d := float64(distance)
	switch {
	case distance < 3:
		return d
	case distance < 7:
		return 0.5 * d
	default:
		return 0.2 * d
	}
}

func chasingGhostBonus(distance int) float64 {
	d := float64(distance)
	switch {
	case distance < 3:
		return 3 * d
	case distance < 7:
		return 2 * d
	default:
		return 0.5 * d
	}
}

func scaredGhostPenalty(distance int) float64 {
	d := float64(distance)
	if distance < 3 {
		return 20 * d
	}
	return 10 * d
}

// ManhattanDistance is the grid distance between two cells.
func ManhattanDistance(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

var evaluations = map[string]Evaluate{
	"score":  EvaluateScore,
	"better": EvaluateBetter,
}

// EvaluateFn looks up a heuristic by its configuration name.
func EvaluateFn(name string) (Evaluate, error) {
	evaluate, ok := evaluations[name]
	if !ok {
		return nil, errors.Errorf("unknown evaluation function %q", name)
	}
	return evaluate, nil
}
