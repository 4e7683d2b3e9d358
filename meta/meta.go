// meta/meta.go
package meta

// DEFAULT_DEPTH defines the number of rounds searched when no depth is given.
const DEFAULT_DEPTH = 2

// MAX_MOVES caps the number of agent turns in a single game.
const MAX_MOVES = 1000

// SCARED_TIME defines how many of its own moves a ghost stays scared after a capsule.
const SCARED_TIME = 40

// Rewards of the maze game.
const (
	TIME_PENALTY = 1
	FOOD_REWARD  = 10
	GHOST_REWARD = 200
	WIN_REWARD   = 500
	LOSE_PENALTY = 500
)
