package manager

import (
	"alive-grid/game/types"
)

// CollisionManager finds Food cells whose footprint overlaps the agent's.
// It stands in for the engine's trigger volumes when running headless.
type CollisionManager struct {
	board *GridManager
}

func NewCollisionManager(board *GridManager) *CollisionManager {
	return &CollisionManager{
		board: board,
	}
}

// Contacts returns the Food cells strictly overlapping a square footprint
// centered on center with the given half-extent (world units). Each food
// square is one cell wide. Touching edges do not count.
func (cm *CollisionManager) Contacts(center types.Vec2, halfExtent float64) []types.Point {
	if halfExtent <= 0 {
		return nil
	}
	size := cm.board.CellSize()
	cellHalf := size / 2
	reach := halfExtent + cellHalf

	// Only cells whose centers are within reach on both axes can overlap.
	lo := cm.board.ToGrid(types.Vec2{X: center.X - reach - size, Y: center.Y - reach - size})
	hi := cm.board.ToGrid(types.Vec2{X: center.X + reach, Y: center.Y + reach})

	var out []types.Point
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			p := types.Point{X: x, Y: y}
			if !cm.isInBounds(p) {
				continue
			}
			if s, _ := cm.board.GetTile(x, y); s != types.Food {
				continue
			}
			c := cm.board.ToWorld(p)
			if abs(c.X-center.X) < reach && abs(c.Y-center.Y) < reach {
				out = append(out, p)
			}
		}
	}
	return out
}

func (cm *CollisionManager) isInBounds(p types.Point) bool {
	return cm.board.Size().InBounds(p)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
