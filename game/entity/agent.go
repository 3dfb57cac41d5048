package entity

import (
	"math"
	"time"

	"alive-grid/game/types"
)

// Board is the slice of the grid manager the agent reads and mutates.
type Board interface {
	Size() types.Grid
	GetTile(x, y int) (types.TileState, bool)
	SetTile(x, y int, s types.TileState)
	ToGrid(v types.Vec2) types.Point
}

// Decision is the outcome of one agent tick.
type Decision int

const (
	Waiting  Decision = iota // not yet due
	NoTarget                 // no food on the grid
	Blocked                  // step would leave the grid
	Moved
)

func (d Decision) String() string {
	switch d {
	case Waiting:
		return "waiting"
	case NoTarget:
		return "no_target"
	case Blocked:
		return "blocked"
	case Moved:
		return "moved"
	default:
		return "unknown"
	}
}

// Agent greedily steps toward the nearest food, one axis at a time.
type Agent struct {
	board        Board
	pos          types.Point
	moveInterval time.Duration
	nextMove     time.Duration
	ateOnMove    bool
}

// NewAgent places the agent at the grid cell nearest to start. The result is
// not bounds-checked; an off-grid start simply finds no tile under it.
func NewAgent(board Board, start types.Vec2, moveInterval time.Duration) *Agent {
	return &Agent{
		board:        board,
		pos:          board.ToGrid(start),
		moveInterval: moveInterval,
	}
}

func (a *Agent) Position() types.Point {
	return a.pos
}

// Schedule sets the time of the next decision.
func (a *Agent) Schedule(at time.Duration) {
	a.nextMove = at
}

func (a *Agent) NextMoveTime() time.Duration {
	return a.nextMove
}

// AteOnLastMove reports whether the most recent Moved decision landed on food.
func (a *Agent) AteOnLastMove() bool {
	return a.ateOnMove
}

// OnFoodContact clears p if it still holds food. It reports whether a tile was eaten.
func (a *Agent) OnFoodContact(p types.Point) bool {
	if s, ok := a.board.GetTile(p.X, p.Y); !ok || s != types.Food {
		return false
	}
	a.board.SetTile(p.X, p.Y, types.Empty)
	return true
}

// Tick decides once when now has reached the next move time. The interval
// restarts from now whatever the outcome.
func (a *Agent) Tick(now time.Duration) Decision {
	if now < a.nextMove {
		return Waiting
	}
	d := a.DecideMove()
	a.nextMove = now + a.moveInterval
	return d
}

// DecideMove takes one step toward the nearest food. It is a pure function
// of the grid and the agent position.
func (a *Agent) DecideMove() Decision {
	target, ok := a.FindNearestFood()
	if !ok {
		return NoTarget
	}

	var dir types.Point
	if dx := target.X - a.pos.X; dx != 0 {
		dir.X = sign(dx)
	} else if dy := target.Y - a.pos.Y; dy != 0 {
		dir.Y = sign(dy)
	} else {
		return NoTarget
	}

	next := a.pos.Add(dir)
	size := a.board.Size()
	if !size.InBounds(next) {
		return Blocked
	}

	if size.InBounds(a.pos) {
		a.board.SetTile(a.pos.X, a.pos.Y, types.Dead)
	}
	prev, _ := a.board.GetTile(next.X, next.Y)
	a.board.SetTile(next.X, next.Y, types.Alive)
	a.pos = next
	a.ateOnMove = prev == types.Food
	return Moved
}

// FindNearestFood scans x ascending then y ascending and keeps the first food
// cell at the smallest Euclidean distance.
func (a *Agent) FindNearestFood() (types.Point, bool) {
	size := a.board.Size()
	best := math.MaxFloat64
	var nearest types.Point
	found := false

	for x := 0; x < size.Width; x++ {
		for y := 0; y < size.Height; y++ {
			if s, ok := a.board.GetTile(x, y); !ok || s != types.Food {
				continue
			}
			p := types.Point{X: x, Y: y}
			if d := a.pos.Distance(p); d < best {
				best = d
				nearest = p
				found = true
			}
		}
	}
	return nearest, found
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}
