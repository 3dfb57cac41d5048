package manager

import (
	"fmt"
	"time"

	"alive-grid/game/types"
)

type GridConfig struct {
	Width    int
	Height   int
	CellSize float64
	Origin   types.Vec2
}

// GridManager owns the occupancy table. Every cell holds exactly one
// TileState, Empty included; x is the outer index as in the world layout.
type GridManager struct {
	grid     types.Grid
	cellSize float64
	origin   types.Vec2
	cells    []types.TileState
	rng      types.RandomSource
	sink     TileSink
	food     *FoodManager
}

// NewGridManager allocates the table and fills every cell with Dead.
// A nil sink discards events.
func NewGridManager(cfg GridConfig, rng types.RandomSource, sink TileSink) (*GridManager, error) {
	if cfg.Width <= 0 {
		return nil, &types.ConfigError{Field: "width", Value: cfg.Width, Reason: "must be positive"}
	}
	if cfg.Height <= 0 {
		return nil, &types.ConfigError{Field: "height", Value: cfg.Height, Reason: "must be positive"}
	}
	if cfg.CellSize <= 0 {
		return nil, &types.ConfigError{Field: "cell_size", Value: cfg.CellSize, Reason: "must be positive"}
	}
	if rng == nil {
		return nil, &types.ConfigError{Field: "random", Value: nil, Reason: "random source is required"}
	}

	gm := &GridManager{
		grid:     types.Grid{Width: cfg.Width, Height: cfg.Height},
		cellSize: cfg.CellSize,
		origin:   cfg.Origin,
		cells:    make([]types.TileState, cfg.Width*cfg.Height),
		rng:      rng,
		sink:     sink,
	}
	gm.food = NewFoodManager(gm, rng)
	gm.fillWithDeadTiles()
	return gm, nil
}

func (gm *GridManager) fillWithDeadTiles() {
	for x := 0; x < gm.grid.Width; x++ {
		for y := 0; y < gm.grid.Height; y++ {
			gm.SetTile(x, y, types.Dead)
		}
	}
}

// PlaceInitialAgent overwrites one uniformly random cell with Alive.
func (gm *GridManager) PlaceInitialAgent() types.Point {
	p := types.Point{
		X: gm.rng.Intn(gm.grid.Width),
		Y: gm.rng.Intn(gm.grid.Height),
	}
	gm.SetTile(p.X, p.Y, types.Alive)
	return p
}

// SpawnFood attempts count independent placements and returns how many landed.
func (gm *GridManager) SpawnFood(count int) int {
	return gm.food.Spawn(count)
}

// ScheduleSpawn sets the time of the next spawn cycle.
func (gm *GridManager) ScheduleSpawn(at time.Duration) {
	gm.food.Schedule(at)
}

func (gm *GridManager) NextSpawnTime() time.Duration {
	return gm.food.NextSpawnTime()
}

// Tick fires at most one spawn batch when now has reached the next spawn
// time, then restarts the cycle from now. Missed cycles are not made up.
func (gm *GridManager) Tick(now, cycle time.Duration, count int) (fired bool, placed int) {
	return gm.food.Tick(now, cycle, count)
}

// GetTile returns the state at (x, y); ok is false when the cell is out of
// bounds or empty.
func (gm *GridManager) GetTile(x, y int) (types.TileState, bool) {
	if !gm.grid.InBounds(types.Point{X: x, Y: y}) {
		return types.Empty, false
	}
	s := gm.cells[gm.index(x, y)]
	return s, s != types.Empty
}

// SetTile overwrites (x, y). Callers must bounds-check first.
func (gm *GridManager) SetTile(x, y int, s types.TileState) {
	if !gm.grid.InBounds(types.Point{X: x, Y: y}) {
		panic(fmt.Sprintf("manager: SetTile(%d, %d) outside %dx%d grid", x, y, gm.grid.Width, gm.grid.Height))
	}
	if !s.Valid() {
		panic(fmt.Sprintf("manager: SetTile with unknown state %d", uint8(s)))
	}
	i := gm.index(x, y)
	prev := gm.cells[i]
	if prev == s {
		return
	}
	gm.cells[i] = s
	if gm.sink != nil {
		gm.sink.TileChanged(types.TileEvent{Pos: types.Point{X: x, Y: y}, From: prev, To: s})
	}
}

func (gm *GridManager) index(x, y int) int {
	return x*gm.grid.Height + y
}

func (gm *GridManager) Size() types.Grid {
	return gm.grid
}

func (gm *GridManager) CellSize() float64 {
	return gm.cellSize
}

func (gm *GridManager) Origin() types.Vec2 {
	return gm.origin
}

// Count returns the number of cells in state s.
func (gm *GridManager) Count(s types.TileState) int {
	n := 0
	for _, c := range gm.cells {
		if c == s {
			n++
		}
	}
	return n
}

// Find lists the cells in state s, x ascending then y ascending.
func (gm *GridManager) Find(s types.TileState) []types.Point {
	var out []types.Point
	gm.Each(func(p types.Point, c types.TileState) {
		if c == s {
			out = append(out, p)
		}
	})
	return out
}

// Each visits every cell, x outer and y inner, both ascending.
func (gm *GridManager) Each(fn func(p types.Point, s types.TileState)) {
	for x := 0; x < gm.grid.Width; x++ {
		for y := 0; y < gm.grid.Height; y++ {
			fn(types.Point{X: x, Y: y}, gm.cells[gm.index(x, y)])
		}
	}
}

// ToWorld returns the world position of the center of cell p.
func (gm *GridManager) ToWorld(p types.Point) types.Vec2 {
	half := gm.cellSize / 2
	return types.Vec2{
		X: gm.origin.X + float64(p.X)*gm.cellSize + half,
		Y: gm.origin.Y + float64(p.Y)*gm.cellSize + half,
	}
}

// CellOrigin returns the lattice point of cell p, the point ToGrid maps back to p exactly.
func (gm *GridManager) CellOrigin(p types.Point) types.Vec2 {
	return types.Vec2{
		X: gm.origin.X + float64(p.X)*gm.cellSize,
		Y: gm.origin.Y + float64(p.Y)*gm.cellSize,
	}
}

// ToGrid maps a world position to the nearest lattice index, rounding half
// away from zero. A cell center sits exactly on a half and maps to the next
// index up.
func (gm *GridManager) ToGrid(v types.Vec2) types.Point {
	rel := v.Sub(gm.origin)
	return types.Point{
		X: types.Round(rel.X / gm.cellSize),
		Y: types.Round(rel.Y / gm.cellSize),
	}
}

// SnapToGrid returns the lattice point nearest to v.
func (gm *GridManager) SnapToGrid(v types.Vec2) types.Vec2 {
	return gm.CellOrigin(gm.ToGrid(v))
}

// Bounds returns the world-space corners of the whole grid.
func (gm *GridManager) Bounds() (min, max types.Vec2) {
	min = gm.origin
	max = types.Vec2{
		X: gm.origin.X + float64(gm.grid.Width)*gm.cellSize,
		Y: gm.origin.Y + float64(gm.grid.Height)*gm.cellSize,
	}
	return min, max
}
