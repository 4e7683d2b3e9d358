package game

// Direction is the action type of the maze game.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	Stop
)

var directionNames = [...]string{"North", "South", "East", "West", "Stop"}

// Directions lists every direction in the order moves are enumerated.
var Directions = []Direction{North, South, East, West, Stop}

func (d Direction) String() string {
	if d < North || d > Stop {
		return "Unknown"
	}
	return directionNames[d]
}

// ParseDirection returns the direction with the given name.
func ParseDirection(name string) (Direction, bool) {
	for i, n := range directionNames {
		if n == name {
			return Direction(i), true
		}
	}
	return 0, false
}

// Apply returns the cell reached by moving one step from p.
func (d Direction) Apply(p Position) Position {
	switch d {
	case North:
		return Position{X: p.X, Y: p.Y - 1}
	case South:
		return Position{X: p.X, Y: p.Y + 1}
	case East:
		return Position{X: p.X + 1, Y: p.Y}
	case West:
		return Position{X: p.X - 1, Y: p.Y}
	default:
		return p
	}
}
