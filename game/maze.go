package game

import (
	"strings"

	"github.com/pkg/errors"
)

// Maze represents the static walls of a layout. Cells outside the grid count
// as walls.
type Maze struct {
	Width  int
	Height int
	walls  []bool // Indexed by y*Width+x
}

// NewMaze creates an open maze of the given size.
func NewMaze(width, height int) *Maze {
	return &Maze{
		Width:  width,
		Height: height,
		walls:  make([]bool, width*height),
	}
}

// AddWall marks a cell as a wall.
func (m *Maze) AddWall(p Position) {
	if m.Contains(p) {
		m.walls[m.index(p)] = true
	}
}

// IsWall reports whether p is blocked.
func (m *Maze) IsWall(p Position) bool {
	if !m.Contains(p) {
		return true
	}
	return m.walls[m.index(p)]
}

// Contains reports whether p lies on the grid.
func (m *Maze) Contains(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < m.Width && p.Y < m.Height
}

func (m *Maze) index(p Position) int {
	return p.Y*m.Width + p.X
}

// ParseLayout builds the initial state of a maze from its text form:
//
//	% wall   . food   o capsule   P controlled agent   G ghost
//
// Ghosts are numbered 1.. in reading order.
func ParseLayout(text string) (*GridState, error) {
	rows := layoutRows(text)
	if len(rows) == 0 {
		return nil, errors.New("empty layout")
	}

	width := len(rows[0])
	maze := NewMaze(width, len(rows))
	food := make([]bool, width*len(rows))
	var capsules []Position
	var agent *Position
	var ghosts []Position

	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Errorf("layout row %d has width %d, expected %d", y, len(row), width)
		}
		for x, c := range row {
			p := Position{X: x, Y: y}
			switch c {
			case '%':
				maze.AddWall(p)
			case '.':
				food[maze.index(p)] = true
			case 'o':
				capsules = append(capsules, p)
			case 'P':
				if agent != nil {
					return nil, errors.Errorf("layout has more than one controlled agent (second at %+v)", p)
				}
				agent = &p
			case 'G':
				ghosts = append(ghosts, p)
			case ' ':
			default:
				return nil, errors.Errorf("unknown layout character %q at %+v", c, p)
			}
		}
	}
	if agent == nil {
		return nil, errors.New("layout has no controlled agent")
	}

	return newGridState(maze, *agent, ghosts, food, capsules), nil
}

func layoutRows(text string) []string {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, line)
	}
	return rows
}
