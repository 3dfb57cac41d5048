package manager

import (
	"time"

	"alive-grid/game/types"
)

// FoodManager places food on Dead cells and keeps the spawn cycle cursor.
type FoodManager struct {
	board     *GridManager
	rng       types.RandomSource
	nextSpawn time.Duration
}

func NewFoodManager(board *GridManager, rng types.RandomSource) *FoodManager {
	return &FoodManager{
		board: board,
		rng:   rng,
	}
}

func (fm *FoodManager) Schedule(at time.Duration) {
	fm.nextSpawn = at
}

func (fm *FoodManager) NextSpawnTime() time.Duration {
	return fm.nextSpawn
}

func (fm *FoodManager) Tick(now, cycle time.Duration, count int) (bool, int) {
	if now < fm.nextSpawn {
		return false, 0
	}
	placed := fm.Spawn(count)
	fm.nextSpawn = now + cycle
	return true, placed
}

// Spawn runs count placements and returns how many succeeded.
func (fm *FoodManager) Spawn(count int) int {
	placed := 0
	for i := 0; i < count; i++ {
		if fm.placeOne() {
			placed++
		}
	}
	return placed
}

// placeOne probes up to SpawnAttempts random cells and converts the first
// Dead one to Food. Food never lands on Alive or Food cells.
func (fm *FoodManager) placeOne() bool {
	size := fm.board.Size()
	for attempt := 0; attempt < types.SpawnAttempts; attempt++ {
		x := fm.rng.Intn(size.Width)
		y := fm.rng.Intn(size.Height)
		if s, ok := fm.board.GetTile(x, y); ok && s == types.Dead {
			fm.board.SetTile(x, y, types.Food)
			return true
		}
	}
	return false
}
